package legaltext

import "testing"

func TestDates(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		short string
		long  string
	}{
		{"iso first of month", "2024-03-01", "01/03/2024", "1er mars 2024"},
		{"french", "15/08/2023", "15/08/2023", "15 août 2023"},
		{"french without leading zeros", "5/3/2024", "05/03/2024", "5 mars 2024"},
		{"rfc3339", "2024-12-31T10:00:00Z", "31/12/2024", "31 décembre 2024"},
		{"empty", "", "", ""},
		{"garbage", "soon", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.raw); got != tt.short {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.raw, got, tt.short)
			}
			if got := LongDate(tt.raw); got != tt.long {
				t.Errorf("LongDate(%q) = %q, want %q", tt.raw, got, tt.long)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	if got := AddDays("2024-02-25", 10); got != "06/03/2024" {
		t.Fatalf("expected 06/03/2024, got %q", got)
	}
	if got := AddDays("", 10); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestEuros(t *testing.T) {
	if got := Euros(249999.6); got != "250"+NarrowSpace+"000" {
		t.Fatalf("unexpected euros %q", got)
	}
	if got := EurosInWords(12500); got != "douze mille cinq cents" {
		t.Fatalf("unexpected words %q", got)
	}
	if got := Euros(1e23); got != "0" {
		t.Fatalf("expected out-of-range amount to render 0, got %q", got)
	}
	if got := EurosInWords(-1e23); got != "zéro" {
		t.Fatalf("expected out-of-range amount to render zéro, got %q", got)
	}
	if got := ParseInt("100000000000000000000000"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
