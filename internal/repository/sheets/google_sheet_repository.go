package sheets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/agence/internal/config"
)

// Repository is a row store over one spreadsheet tab.
type Repository interface {
	// AppendRows adds rows after the last non-empty row of sheetRange.
	AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error
	// KeyColumn returns the trimmed text of the first column of sheetRange, header included.
	KeyColumn(ctx context.Context, sheetRange string) ([]string, error)
}

// GoogleSheetRepository implements Repository with the Google Sheets API.
type GoogleSheetRepository struct {
	values        *sheetsapi.SpreadsheetsValuesService
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository authenticates with a service-account file and targets the
// register spreadsheet.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		values:        service.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRows writes every row in one batch. Values are stored as typed, without formula
// or date interpretation, so mandate numbers such as "2024-001" stay text.
func (r *GoogleSheetRepository) AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheet range must not be empty")
	}
	if len(rows) == 0 {
		return nil
	}

	_, err := r.values.Append(r.spreadsheetID, sheetRange, &sheetsapi.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %d rows into %s: %w", len(rows), sheetRange, err)
	}

	r.logger.Debug("register rows appended", zap.String("range", sheetRange), zap.Int("rows", len(rows)))
	return nil
}

// KeyColumn reads sheetRange column-major and keeps only its first column.
func (r *GoogleSheetRepository) KeyColumn(ctx context.Context, sheetRange string) ([]string, error) {
	if sheetRange == "" {
		return nil, fmt.Errorf("sheet range must not be empty")
	}

	resp, err := r.values.Get(r.spreadsheetID, sheetRange).
		MajorDimension("COLUMNS").
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheetRange, err)
	}

	return firstColumn(resp.Values), nil
}

func firstColumn(columns [][]interface{}) []string {
	if len(columns) == 0 {
		return nil
	}
	out := make([]string, 0, len(columns[0]))
	for _, cell := range columns[0] {
		out = append(out, strings.TrimSpace(fmt.Sprint(cell)))
	}
	return out
}
