package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "LOG_LEVEL", "LOG_ENCODING", "MONGODB_URI", "MONGODB_DB_NAME",
		"GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_REGISTER_ID", "REGISTER_SHEET_RANGE",
		"REGISTER_CRON_SCHEDULE", "TIMEZONE", "RENDERER_BASE_URL", "RENDERER_TOKEN",
		"TEMPLATES_DIR", "AGENCY_EMAIL_DOMAIN",
	} {
		// Setenv restores the previous value on cleanup; unset so godotenv may fill it.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" || cfg.MongoDB.DBName != "agence" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Register.Timezone != "Europe/Paris" || cfg.Register.CronSchedule != "0 2 * * *" {
		t.Fatalf("unexpected register defaults %+v", cfg.Register)
	}
	if cfg.Sheets.Enabled() || cfg.Renderer.Enabled() {
		t.Fatal("optional integrations should be disabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := strings.Join([]string{
		"MONGODB_URI=mongodb://db:27017",
		"APP_PORT=9090",
		"RENDERER_BASE_URL=http://renderer:3000",
		"GOOGLE_SHEETS_CREDENTIALS_PATH=/secrets/sa.json",
		"GOOGLE_SHEET_REGISTER_ID=sheet-id",
	}, "\n")
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" || !cfg.Renderer.Enabled() || !cfg.Sheets.Enabled() {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			MongoDB:  MongoDBConfig{URI: "mongodb://localhost", DBName: "agence"},
			Register: RegisterConfig{CronSchedule: "0 2 * * *", Timezone: "Europe/Paris"},
			Agency:   AgencyConfig{EmailDomain: "agence.test"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing uri", func(c *Config) { c.MongoDB.URI = "" }, "MONGODB_URI"},
		{"missing schedule", func(c *Config) { c.Register.CronSchedule = "" }, "REGISTER_CRON_SCHEDULE"},
		{"bad timezone", func(c *Config) { c.Register.Timezone = "Mars/Olympus" }, "TIMEZONE"},
		{"missing domain", func(c *Config) { c.Agency.EmailDomain = "" }, "AGENCY_EMAIL_DOMAIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}
