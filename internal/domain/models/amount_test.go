package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Amount
	}{
		{"number", `250000`, 250000},
		{"decimal", `1234.5`, 1234.5},
		{"string with separators", `"250 000 €"`, 250000},
		{"string decimal", `"12500.50"`, 12500.5},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"à définir"`, 0},
		{"oversized string", `"100000000000000000000000 €"`, 0},
		{"oversized number", `1e23`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Value Amount `json:"value"`
			}
			if err := json.Unmarshal([]byte(`{"value":`+tt.raw+`}`), &payload); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload.Value != tt.want {
				t.Fatalf("got %v, want %v", payload.Value, tt.want)
			}
		})
	}
}

func TestAmountInt(t *testing.T) {
	if got := Amount(1234.5).Int(); got != 1235 {
		t.Fatalf("expected rounding to 1235, got %d", got)
	}
	if got := Amount(1e23).Int(); got != 0 {
		t.Fatalf("expected out-of-range amount to round to 0, got %d", got)
	}
	if got := Amount(-1e23).Int(); got != 0 {
		t.Fatalf("expected out-of-range amount to round to 0, got %d", got)
	}
	if !Amount(0).IsZero() {
		t.Fatal("expected zero amount")
	}
}
