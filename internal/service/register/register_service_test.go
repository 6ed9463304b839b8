package register

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mamadbah2/agence/internal/domain/models"
)

type fakeSheet struct {
	rows     [][]interface{}
	appended [][]interface{}
	appends  int
	readErr  error
}

func (f *fakeSheet) AppendRows(_ context.Context, _ string, rows [][]interface{}) error {
	f.appends++
	f.appended = append(f.appended, rows...)
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeSheet) KeyColumn(_ context.Context, _ string) ([]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([]string, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, fmt.Sprint(row[0]))
	}
	return out, nil
}

type fakeLister []models.Mandate

func (f fakeLister) List(context.Context) ([]models.Mandate, error) {
	return f, nil
}

func TestSyncEmptySheet(t *testing.T) {
	sheet := &fakeSheet{}
	mandates := fakeLister{
		{ID: "1", Number: "M-1", Date: "2024-03-01", Type: models.MandateSimple, NetPrice: 250000, Fees: models.Fees{TTC: 12000}},
		{ID: "2", Number: ""},
		{ID: "3", Number: "M-2", FeePayer: models.FeesPaidByBuyer},
	}
	svc := NewService(sheet, mandates, "Registre!A:J", nil)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Appended != 2 || result.Skipped != 1 || result.Registered != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if sheet.appends != 1 {
		t.Fatalf("expected a single batched append, got %d", sheet.appends)
	}
	if len(sheet.appended) != 3 || sheet.appended[0][0] != "Numéro" {
		t.Fatalf("expected header plus two rows, got %v", sheet.appended)
	}
	if sheet.appended[2][7] != "Acquéreur" {
		t.Fatalf("unexpected fee payer column %v", sheet.appended[2][7])
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	sheet := &fakeSheet{}
	svc := NewService(sheet, fakeLister{{Number: "M-1"}, {Number: "M-2"}}, "Registre!A:J", nil)

	if _, err := svc.Sync(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Appended != 0 || sheet.appends != 1 {
		t.Fatalf("second sync should append nothing, got %+v after %d appends", result, sheet.appends)
	}
}

func TestSyncReadFailure(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := NewService(&fakeSheet{readErr: boom}, fakeLister{}, "Registre!A:J", nil)

	if _, err := svc.Sync(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestRow(t *testing.T) {
	row := Row(models.Mandate{
		Number:     "M-9",
		Date:       "2024-03-01",
		Type:       models.MandateExclusive,
		NetPrice:   199999.6,
		Amendments: []models.PriceAmendment{{}, {}},
	})

	if len(row) != len(Header) {
		t.Fatalf("row has %d columns, header %d", len(row), len(Header))
	}
	if row[1] != "01/03/2024" || row[2] != "Mandat exclusif" || row[5] != int64(200000) || row[9] != 2 {
		t.Fatalf("unexpected row %v", row)
	}
	if row[7] != "Vendeur" {
		t.Fatalf("fees default to the seller, got %v", row[7])
	}
}
