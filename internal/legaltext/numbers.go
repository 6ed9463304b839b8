// Package legaltext renders domain values into the French legal prose used by the
// agency documents. Every function is pure and total: malformed input degrades to an
// empty string or a zero value, never to an error.
package legaltext

import (
	"strconv"
	"strings"
)

var units = [...]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf",
}

var tens = [...]string{
	"", "", "vingt", "trente", "quarante", "cinquante", "soixante", "soixante", "quatre-vingt", "quatre-vingt",
}

// NarrowSpace separates digit groups in formatted integers.
const NarrowSpace = "\u202f"

// Words converts a non-negative integer into French cardinal prose.
// Negative input is rendered as "moins" followed by the magnitude.
func Words(n int64) string {
	if n == 0 {
		return units[0]
	}
	words := strings.TrimSpace(scale(absolute(n)))
	if n < 0 {
		return "moins " + words
	}
	return words
}

// absolute returns |n| without overflowing on math.MinInt64.
func absolute(n int64) uint64 {
	if n < 0 {
		return uint64(^n) + 1
	}
	return uint64(n)
}

type magnitude struct {
	value    uint64
	singular string
	plural   string
}

var magnitudes = []magnitude{
	{1_000_000_000, "un milliard", "milliards"},
	{1_000_000, "un million", "millions"},
}

func scale(n uint64) string {
	parts := make([]string, 0, 4)

	for _, m := range magnitudes {
		if n < m.value {
			continue
		}
		count := n / m.value
		n %= m.value
		if count == 1 {
			parts = append(parts, m.singular)
		} else {
			parts = append(parts, scale(count)+" "+m.plural)
		}
	}

	if n >= 1000 {
		count := n / 1000
		n %= 1000
		switch {
		case count == 1:
			parts = append(parts, "mille")
		default:
			// "mille" is invariable and never pluralises the multiplier before it.
			parts = append(parts, belowThousand(count, false)+" mille")
		}
	}

	if n > 0 {
		parts = append(parts, belowThousand(n, true))
	}

	return strings.Join(parts, " ")
}

// belowThousand renders 1..999. final reports whether nothing follows the number, which
// is the only position where "cents" and "quatre-vingts" take their plural s.
func belowThousand(n uint64, final bool) string {
	hundreds := n / 100
	rest := n % 100

	var b strings.Builder
	switch {
	case hundreds == 1:
		b.WriteString("cent")
	case hundreds > 1:
		b.WriteString(units[hundreds])
		b.WriteString(" cent")
		if rest == 0 && final {
			b.WriteString("s")
		}
	}

	if rest > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(belowHundred(rest, final))
	}
	return b.String()
}

func belowHundred(n uint64, final bool) string {
	if n < 20 {
		return units[n]
	}

	ten := n / 10
	unit := n % 10

	switch ten {
	case 7:
		if unit == 1 {
			return "soixante et onze"
		}
		return "soixante-" + units[10+unit]
	case 9:
		return "quatre-vingt-" + units[10+unit]
	case 8:
		if unit == 0 {
			if final {
				return "quatre-vingts"
			}
			return "quatre-vingt"
		}
		return "quatre-vingt-" + units[unit]
	}

	switch unit {
	case 0:
		return tens[ten]
	case 1:
		return tens[ten] + " et un"
	default:
		return tens[ten] + "-" + units[unit]
	}
}

// WordsFromText parses a hand-typed number and converts its integer part to words.
// Text that parses to zero yields "zéro".
func WordsFromText(raw string) string {
	return Words(ParseInt(raw))
}

// FormatInteger groups digits by three from the right with a narrow no-break space,
// as printed in French legal documents: 1234567 → "1 234 567".
func FormatInteger(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
	}
	digits := strconv.FormatUint(absolute(n), 10)

	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteString(NarrowSpace)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
