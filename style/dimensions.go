package style

// FormatValue recomputes a declared width or height to account for the
// margins on the same axis. Margins are treated as viewport-percentage
// quantities regardless of their own declared unit; that is a contract of
// the engine and callers must author margins on these axes accordingly.
//
// The second return value is false when the dimension is absent, falsy or
// not parseable as a length, in which case the caller leaves it alone.
func FormatValue(obj *Object, vp Viewport, key string) (string, bool) {
	v, ok := obj.Get(key)
	if !ok || !truthy(v) {
		return "", false
	}

	var (
		mag  float64
		unit string
	)
	if f, isNum := toFloat(v); isNum {
		mag, unit = f, "px"
	} else if s, isStr := v.(string); isStr {
		var parsed bool
		mag, unit, parsed = parseLength(s)
		if !parsed {
			return "", false
		}
		if unit == "" {
			unit = "px"
		}
	} else {
		return "", false
	}

	var sum, dim float64
	switch key {
	case propWidth:
		sum = marginNumber(obj, propMarginLeft) + marginNumber(obj, propMarginRight)
		dim = vp.Width
	case propHeight:
		sum = marginNumber(obj, propMarginTop) + marginNumber(obj, propMarginBottom)
		dim = vp.Height
	default:
		return "", false
	}

	// margins already dominate or equal the dimension - leave it alone
	if mag <= sum || dim == 0 {
		return formatNumber(mag) + unit, true
	}
	return formatNumber(mag-100*sum/dim) + unit, true
}

// marginNumber extracts the numeric part of a margin. A missing or
// unparseable margin counts as zero so the arithmetic stays finite.
func marginNumber(obj *Object, key string) float64 {
	v, ok := obj.Get(key)
	if !ok {
		return 0
	}
	if f, isNum := toFloat(v); isNum {
		return f
	}
	if s, isStr := v.(string); isStr {
		if mag, _, parsed := parseLength(s); parsed {
			return mag
		}
	}
	return 0
}
