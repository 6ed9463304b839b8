package legaltext

import (
	"math"
	"strings"
	"time"

	"github.com/mamadbah2/agence/internal/domain/models"
)

const (
	isoLayout    = "2006-01-02"
	frenchLayout = "02/01/2006"
	shortLayout  = "2/1/2006"
)

var months = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// ParseDate accepts YYYY-MM-DD, DD/MM/YYYY (with or without leading zeros) and RFC 3339
// timestamps.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(frenchLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(shortLayout, raw); err == nil {
		return t, true
	}
	if len(raw) > len(isoLayout) {
		raw = raw[:len(isoLayout)]
	}
	if t, err := time.Parse(isoLayout, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate normalises a date to DD/MM/YYYY. Unparsable dates yield "".
func FormatDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return ""
	}
	return t.Format(frenchLayout)
}

// LongDate renders a date as "1er mars 2024" / "15 mars 2024". Unparsable dates yield "".
func LongDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return ""
	}
	day := itoa(int64(t.Day()))
	if t.Day() == 1 {
		day = "1er"
	}
	return day + " " + months[t.Month()-1] + " " + itoa(int64(t.Year()))
}

// AddDays shifts a date by n days and returns it as DD/MM/YYYY, or "" when unparsable.
func AddDays(raw string, n int) string {
	t, ok := ParseDate(raw)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, n).Format(frenchLayout)
}

// ParseAmount parses hand-typed numeric text, ignoring separators and currency symbols.
func ParseAmount(raw string) float64 {
	return models.ParseAmount(raw)
}

// ParseInt parses hand-typed numeric text and truncates it to an integer.
func ParseInt(raw string) int64 {
	return models.RoundInt(math.Trunc(ParseAmount(raw)))
}

// Euros renders an amount as grouped digits, rounded to the euro.
func Euros(v float64) string {
	return FormatInteger(models.RoundInt(v))
}

// EurosInWords renders an amount in words, rounded to the euro.
func EurosInWords(v float64) string {
	return Words(models.RoundInt(v))
}
