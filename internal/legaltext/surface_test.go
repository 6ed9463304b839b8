package legaltext

import (
	"strings"
	"testing"

	"github.com/mamadbah2/agence/internal/domain/models"
)

func TestFormatSurface(t *testing.T) {
	tests := []struct {
		centiares int64
		want      string
	}{
		{0, "00ha 00a 00ca"},
		{12345, "01ha 23a 45ca"},
		{99, "00ha 00a 99ca"},
		{100, "00ha 01a 00ca"},
		{1234567, "123ha 45a 67ca"},
		{-10, "00ha 00a 00ca"},
	}

	for _, tt := range tests {
		if got := FormatSurface(tt.centiares); got != tt.want {
			t.Errorf("FormatSurface(%d) = %q, want %q", tt.centiares, got, tt.want)
		}
	}
}

func TestCadastralList(t *testing.T) {
	sections := []models.CadastralSection{
		{Section: "AB", Number: "12", PlaceName: "Les Prés", Surface: "1 200"},
		{Section: "AB", Number: "13", Surface: "345"},
	}

	if got := TotalSurface(sections); got != 1545 {
		t.Fatalf("expected total 1545, got %d", got)
	}

	list := FormatCadastralList(sections)
	lines := strings.Split(list, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), list)
	}
	if lines[0] != "Section AB, n° 12, lieudit « Les Prés », pour une contenance de 00ha 12a 00ca" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[2] != "Contenance totale : 00ha 15a 45ca" {
		t.Errorf("unexpected total line %q", lines[2])
	}

	if FormatCadastralList(nil) != "" {
		t.Error("expected empty list for no sections")
	}
}
