// Package style post-processes compiled style objects so a rendering
// backend can consume them directly.
//
// A style object arrives as an ordered mapping of property names to raw
// values. During compilation theme variable references were replaced with
// parser-safe placeholders allocated by a Registry; at use time a Resolver
// walks the object and makes every value concrete:
//
//   - elevation levels expand into theme-defined shadow properties
//   - web-only properties are stripped on other targets
//   - color placeholders are swapped back to theme color values
//   - length placeholders are swapped back, calc()/min()/max() values are
//     delegated to an expression evaluator, and every length goes through
//     the unit converter (rem, px, %, vw, vh)
//   - when all four margins are present, width and height are recomputed
//     to account for them
//
// # Placeholders
//
// Color variables encode as incrementing hex codes (#000001, #000002, ...)
// so a strict color parser accepts them. Generic variables encode as an
// opaque digit run with a px marker; the compiled value is numeric and the
// resolver reconstructs the marker for the reverse lookup.
//
// # Usage
//
//	reg := style.NewRegistry(logger)
//	ph := reg.ResolveColorPlaceholder("$primary") // embed into style source
//
//	res := style.NewResolver(logger, reg, style.WithPlatform(common.PlatformWeb))
//	obj, err := res.Resolve(obj, th, style.Viewport{Width: 1280, Height: 720})
//
// Resolution mutates the object in place and fails fast: any error means
// the object is entirely unresolved and must not be rendered.
package style
