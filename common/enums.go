// Shared enums live in their own package so that both the engine and the
// command line configuration can use them without pulling in each other.
package common

//go:generate go tool go-enum --marshal

// Rendering target a style object is being resolved for.
// ENUM(native, android, ios, web)
type Platform int

// IsWeb reports whether cursor styling and other web-only properties apply.
func (p Platform) IsWeb() bool {
	return p == PlatformWeb
}

// Serialization format for resolved style output.
// ENUM(yaml, json)
type OutputFmt int
