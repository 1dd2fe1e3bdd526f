package parser

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a raw cell value as a float without any locale handling.
// Strings must hold a plain decimal number; NaN and infinities are rejected.
func ParseNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case *float64:
		if n == nil {
			return 0, false
		}
		f = *n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseValue converts a cleaned cell to a typed value.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, ok := ParseNumber(s); ok {
		return f
	}
	return s
}

// TypedValue converts a pasted value into the form stored on a row.
func TypedValue(s string) any {
	switch v := parseValue(s).(type) {
	case int64:
		return float64(v)
	default:
		return v
	}
}
