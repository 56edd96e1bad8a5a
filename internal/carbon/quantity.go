package carbon

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// sanitize resolves a raw quantity at the engine boundary. NaN, ±Inf and
// negative values become zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// leadingNumber matches the decimal number a form field starts with.
//
//nolint:gochecknoglobals // Compiled once.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseQuantity parses form text into a quantity. Like a form's float parse it
// reads the leading number and ignores trailing text, so "12abc" is 12. Text
// without a leading number yields zero, as do negative results.
func ParseQuantity(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

// Quantity resolves a loosely typed value (decoded JSON, flag text) into a
// quantity. Anything that is not a finite non-negative number resolves to zero.
func Quantity(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return sanitize(n)
	case float32:
		return sanitize(float64(n))
	case int:
		return sanitize(float64(n))
	case int64:
		return sanitize(float64(n))
	case int32:
		return sanitize(float64(n))
	case uint:
		return sanitize(float64(n))
	case uint64:
		return sanitize(float64(n))
	case uint32:
		return sanitize(float64(n))
	case string:
		return ParseQuantity(n)
	case interface{ Float64() (float64, error) }:
		// json.Number from either encoding/json or goccy/go-json.
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return sanitize(f)
	default:
		return 0
	}
}

// ActivityInputsFromAny builds ActivityInputs from a loosely typed mapping.
// Keys outside the factor table are kept but never contribute to estimates.
func ActivityInputsFromAny(raw map[string]any) ActivityInputs {
	inputs := NewActivityInputs()
	for k, v := range raw {
		inputs[k] = Quantity(v)
	}
	return inputs
}

// OffsetInputsFromAny builds OffsetInputs from a loosely typed mapping.
func OffsetInputsFromAny(raw map[string]any) OffsetInputs {
	offsets := NewOffsetInputs()
	for k, v := range raw {
		offsets[k] = Quantity(v)
	}
	return offsets
}
