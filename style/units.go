package style

import (
	"strconv"
	"strings"

	"restyle/theme"
)

// ResolveLengthUnit turns a magnitude+unit length string into its final
// value. Numbers and falsy values pass through untouched; percentages stay
// as strings for the renderer to resolve against the parent; everything
// else becomes an absolute number.
func ResolveLengthUnit(v any, th *theme.Theme, vp Viewport) (any, error) {
	if !truthy(v) {
		return v, nil
	}
	if _, ok := toFloat(v); ok {
		return v, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &ContractViolationError{Value: v}
	}

	trimmed := strings.TrimSpace(s)
	mag, unit, ok := parseLength(trimmed)
	if !ok {
		return nil, &UnknownUnitError{Unit: trimmed, Value: s}
	}
	// unit is irrelevant at zero
	if mag == 0 {
		return float64(0), nil
	}
	if unit == "" {
		return nil, &MalformedLengthError{Value: s}
	}

	switch unit {
	case "rem":
		return mag * th.Root(), nil
	case "px":
		return mag, nil
	case "%":
		// percentage resolution is deferred to the renderer
		return v, nil
	case "vw":
		return mag * vp.Width / 100, nil
	case "vh":
		return mag * vp.Height / 100, nil
	default:
		return nil, &UnknownUnitError{Unit: unit, Value: s}
	}
}

// parseLength splits a length string into magnitude and unit by stripping
// the numeric prefix. ok is false when there is no numeric prefix at all.
func parseLength(s string) (float64, string, bool) {
	numEnd := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, "", false
	}
	mag, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, "", false
	}
	return mag, strings.ToLower(strings.TrimSpace(s[numEnd:])), true
}

// formatNumber renders a float the way style values expect: no exponent,
// no trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toFloat coerces the numeric types a style object may carry.
func toFloat(v any) (float64, bool) {
	switch vv := v.(type) {
	case float64:
		return vv, true
	case float32:
		return float64(vv), true
	case int:
		return float64(vv), true
	case int64:
		return float64(vv), true
	case uint:
		return float64(vv), true
	default:
		return 0, false
	}
}
