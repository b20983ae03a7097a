package style

// extraProperties are recognized pass-through properties: the resolver
// leaves them alone but the compile boundary should not drop them.
var extraProperties = map[string]bool{
	PropElevation:        true,
	PropCursor:           true,
	"opacity":            true,
	"flex":               true,
	"flexDirection":      true,
	"alignItems":         true,
	"justifyContent":     true,
	"position":           true,
	"overflow":           true,
	"display":            true,
	"zIndex":             true,
	"fontWeight":         true,
	"fontStyle":          true,
	"fontFamily":         true,
	"textAlign":          true,
	"textDecorationLine": true,
	"shadowOpacity":      true,
	"shadowOffsetHeight": true,
	"shadowOffsetWidth":  true,
}

// IsKnownProperty reports whether the engine recognizes the property at
// all. The compile boundary drops unknown names.
func IsKnownProperty(name string) bool {
	return colorProperties[name] || lengthProperties[name] || extraProperties[name]
}
