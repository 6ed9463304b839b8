package legaltext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mamadbah2/agence/internal/domain/models"
)

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// DenominatorWords names a tantième denominator.
func DenominatorWords(denominator int64) string {
	switch denominator {
	case 1000:
		return "millièmes"
	case 10000:
		return "dix millièmes"
	case 100000:
		return "cent millièmes"
	default:
		return "millièmes"
	}
}

// CommonPartsClause names the common parts a tantième applies to.
func CommonPartsClause(kind models.TantiemeType, customLabel string) string {
	switch kind {
	case models.TantiemeSoilAndGeneral:
		return "de la propriété du sol et des parties communes générales"
	case models.TantiemeCustom:
		return customLabel
	default:
		return "des parties communes générales"
	}
}

// FormatTantieme renders a fractional ownership share:
//
//	Et les cinq cents / dix millièmes (500/10000 èmes) des parties communes générales
//
// It returns "" when either side parses to zero.
func FormatTantieme(numerator, denominator string, kind models.TantiemeType, customLabel string) string {
	num := ParseInt(numerator)
	den := ParseInt(denominator)
	if num == 0 || den == 0 {
		return ""
	}

	return strings.TrimSpace(fmt.Sprintf("Et les %s / %s (%d/%d èmes) %s",
		Words(num), DenominatorWords(den), num, den, CommonPartsClause(kind, customLabel)))
}

// FormatLotTantiemes renders every non-empty tantième of a lot, one per line.
func FormatLotTantiemes(tantiemes []models.Tantieme) string {
	lines := make([]string, 0, len(tantiemes))
	for _, t := range tantiemes {
		if line := FormatTantieme(t.Numerator, t.Denominator, t.Type, t.CustomLabel); line != "" {
			lines = append(lines, line+".")
		}
	}
	return strings.Join(lines, "\n")
}
