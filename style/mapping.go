package style

// Property names the resolver dispatches on. The classification decides
// which placeholder registry variant and which conversion path a value
// goes through.

const (
	// PropElevation triggers theme shadow expansion.
	PropElevation = "elevation"
	// PropCursor only has meaning on the web target.
	PropCursor = "cursor"

	propWidth        = "width"
	propHeight       = "height"
	propMarginLeft   = "marginLeft"
	propMarginRight  = "marginRight"
	propMarginTop    = "marginTop"
	propMarginBottom = "marginBottom"
)

// colorProperties is the set of properties whose values are colors and may
// carry hex-code placeholders.
var colorProperties = map[string]bool{
	"color":               true,
	"backgroundColor":     true,
	"borderColor":         true,
	"borderTopColor":      true,
	"borderRightColor":    true,
	"borderBottomColor":   true,
	"borderLeftColor":     true,
	"shadowColor":         true,
	"textDecorationColor": true,
	"tintColor":           true,
	"overlayColor":        true,
}

// lengthProperties is the set of properties whose values are lengths and go
// through placeholder lookup, calc delegation and unit conversion.
var lengthProperties = map[string]bool{
	"width":             true,
	"height":            true,
	"minWidth":          true,
	"minHeight":         true,
	"maxWidth":          true,
	"maxHeight":         true,
	"top":               true,
	"right":             true,
	"bottom":            true,
	"left":              true,
	"margin":            true,
	"marginTop":         true,
	"marginRight":       true,
	"marginBottom":      true,
	"marginLeft":        true,
	"padding":           true,
	"paddingTop":        true,
	"paddingRight":      true,
	"paddingBottom":     true,
	"paddingLeft":       true,
	"fontSize":          true,
	"lineHeight":        true,
	"letterSpacing":     true,
	"borderWidth":       true,
	"borderTopWidth":    true,
	"borderRightWidth":  true,
	"borderBottomWidth": true,
	"borderLeftWidth":   true,
	"borderRadius":      true,
	"shadowRadius":      true,
	"textIndent":        true,
}

// IsColorProperty reports whether the named property is color-valued.
func IsColorProperty(name string) bool {
	return colorProperties[name]
}

// IsLengthProperty reports whether the named property is length-valued.
func IsLengthProperty(name string) bool {
	return lengthProperties[name]
}
