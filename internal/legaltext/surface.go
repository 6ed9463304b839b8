package legaltext

import (
	"fmt"
	"strings"

	"github.com/mamadbah2/agence/internal/domain/models"
)

// FormatSurface renders a surface in centiares using cadastral notation: 12345 → "01ha 23a 45ca".
func FormatSurface(centiares int64) string {
	if centiares < 0 {
		centiares = 0
	}
	ha := centiares / 10000
	a := (centiares % 10000) / 100
	ca := centiares % 100
	return fmt.Sprintf("%02dha %02da %02dca", ha, a, ca)
}

// TotalSurface sums the parsed surfaces of every section, in centiares.
func TotalSurface(sections []models.CadastralSection) int64 {
	var total int64
	for _, s := range sections {
		total += ParseInt(s.Surface)
	}
	return total
}

// FormatCadastralSection renders one parcel as a single line.
func FormatCadastralSection(s models.CadastralSection) string {
	parts := []string{}
	if s.Section != "" {
		parts = append(parts, "Section "+s.Section)
	}
	if s.Number != "" {
		parts = append(parts, "n° "+s.Number)
	}
	if s.PlaceName != "" {
		parts = append(parts, "lieudit « "+s.PlaceName+" »")
	}
	parts = append(parts, "pour une contenance de "+FormatSurface(ParseInt(s.Surface)))
	return strings.Join(parts, ", ")
}

// FormatCadastralList renders every section on its own line followed by the total.
func FormatCadastralList(sections []models.CadastralSection) string {
	if len(sections) == 0 {
		return ""
	}
	lines := make([]string, 0, len(sections)+1)
	for _, s := range sections {
		lines = append(lines, FormatCadastralSection(s))
	}
	lines = append(lines, "Contenance totale : "+FormatSurface(TotalSurface(sections)))
	return strings.Join(lines, "\n")
}
