package mongodb

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mamadbah2/agence/internal/domain/models"
)

func TestRecordRoundTrip(t *testing.T) {
	m := models.Mandate{
		ID:           "a1",
		Number:       "M-1",
		NetPrice:     250000,
		Fees:         models.Fees{TTC: 12000, HT: 10000},
		InCoproperty: true,
		Lots: []models.Lot{{
			Number:    "12",
			Tantiemes: []models.Tantieme{{Numerator: "500", Denominator: "10000", Type: models.TantiemeGeneral}},
		}},
		CadastralSections: []models.CadastralSection{{Section: "AB", Number: "101", Surface: "1200"}},
		Sellers:           []models.Party{{LastName: "Martin", MaritalStatus: models.MaritalSingle}},
	}

	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	rec, err := toRecord(m, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.LotsJSON, `"numerator":"500"`) {
		t.Fatalf("lots should be stored as JSON text, got %q", rec.LotsJSON)
	}
	if rec.NetPrice != 250000 || rec.FeesTTC != 12000 {
		t.Fatalf("unexpected money columns %+v", rec)
	}
	if !rec.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected update time %v", rec.UpdatedAt)
	}

	back, err := fromRecord(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(back, m) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, m)
	}
}

func TestDecodeJSONColumn(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"null", "null", 0, false},
		{"two sections", `[{"section":"A"},{"section":"B"}]`, 2, false},
		{"corrupt", `[{"section":`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sections []models.CadastralSection
			err := decodeJSONColumn(tt.raw, &sections)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(sections) != tt.want {
				t.Fatalf("got %d sections, want %d", len(sections), tt.want)
			}
		})
	}
}
