package fetcher

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The upstream datasets are untyped: position fields arrive as strings that
// may be empty, absent or malformed depending on report vintage. Every
// numeric read routes through these helpers, which never fail and default
// to zero.

// SafeFloat coerces a raw field value to float64, returning 0 on any
// failure including a missing (nil) value.
func SafeFloat(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// SafeInt coerces a raw field value to int64 through a float parse, so that
// "12345.0" reads as 12345 the way the datasets occasionally format counts.
func SafeInt(v any) int64 {
	return int64(SafeFloat(v))
}

// SafeString returns the value as a string, or "" when absent or not a
// string.
func SafeString(v any) string {
	s, _ := v.(string)
	return s
}

// PctOfTotal returns part/total as a percentage rounded to 1 decimal, and 0
// when total is 0.
func PctOfTotal(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	pct := decimal.NewFromInt(part).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	f, _ := pct.Float64()
	return f
}
