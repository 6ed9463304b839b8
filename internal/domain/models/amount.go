package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MaxAmount bounds every hand-typed value. Larger magnitudes decode as 0.
const MaxAmount = 1e15

// Amount is a monetary or numeric field that tolerates values typed by hand in the forms:
// JSON numbers, or strings carrying thousands separators and currency symbols.
type Amount float64

// UnmarshalJSON accepts numbers, numeric strings and null. Unparsable strings decode as 0.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*a = Amount(ParseAmount(raw))
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(bounded(v))
	return nil
}

// Float returns the raw value.
func (a Amount) Float() float64 {
	return float64(a)
}

// Int returns the value rounded to the nearest integer.
func (a Amount) Int() int64 {
	return RoundInt(float64(a))
}

// RoundInt rounds v to the nearest integer. Values outside ±MaxAmount yield 0.
func RoundInt(v float64) int64 {
	return int64(math.Round(bounded(v)))
}

func bounded(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxAmount {
		return 0
	}
	return v
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// ParseAmount strips every character that is neither a digit, a minus sign nor a dot, then
// parses the remainder. Anything unparsable or beyond MaxAmount yields 0.
func ParseAmount(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return bounded(v)
}
