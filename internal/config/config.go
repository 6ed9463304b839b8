package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	MongoDB  MongoDBConfig
	Sheets   SheetsConfig
	Register RegisterConfig
	Renderer RendererConfig
	Agency   AgencyConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level    string
	Encoding string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the mandate register can be synchronised.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// RegisterConfig holds the mandate register sync settings.
type RegisterConfig struct {
	SheetRange   string
	CronSchedule string
	Timezone     string
}

// RendererConfig points at the external template renderer.
type RendererConfig struct {
	BaseURL      string
	Token        string
	TemplatesDir string
}

// Enabled reports whether binary rendering is available.
func (c RendererConfig) Enabled() bool {
	return c.BaseURL != ""
}

// AgencyConfig holds agency-wide constants printed on documents.
type AgencyConfig struct {
	EmailDomain string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level:    getenvWithDefault("LOG_LEVEL", "info"),
			Encoding: getenvWithDefault("LOG_ENCODING", "json"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "agence"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REGISTER_ID"),
		},
		Register: RegisterConfig{
			SheetRange:   getenvWithDefault("REGISTER_SHEET_RANGE", "Registre!A:J"),
			CronSchedule: getenvWithDefault("REGISTER_CRON_SCHEDULE", "0 2 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Europe/Paris"),
		},
		Renderer: RendererConfig{
			BaseURL:      os.Getenv("RENDERER_BASE_URL"),
			Token:        os.Getenv("RENDERER_TOKEN"),
			TemplatesDir: getenvWithDefault("TEMPLATES_DIR", "templates"),
		},
		Agency: AgencyConfig{
			EmailDomain: getenvWithDefault("AGENCY_EMAIL_DOMAIN", "agence-immo.fr"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}

	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty")
	}

	if c.Register.CronSchedule == "" {
		return errors.New("REGISTER_CRON_SCHEDULE must be provided")
	}

	if _, err := time.LoadLocation(c.Register.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}

	if c.Agency.EmailDomain == "" {
		return errors.New("AGENCY_EMAIL_DOMAIN must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
