package theme

import "math"

// DefaultElevation turns an abstract depth level into shadow properties.
// The curve follows the usual material shadow shape: opacity and radius
// grow with the level, the offset keeps the light source above the card.
// Level zero and below produce no shadow at all.
func DefaultElevation(level float64) map[string]any {
	if level <= 0 {
		return nil
	}
	return map[string]any{
		"shadowColor":        "#000000",
		"shadowOpacity":      math.Min(0.12+0.03*level, 0.6),
		"shadowRadius":       0.8 * level,
		"shadowOffsetHeight": math.Ceil(level / 2),
		"elevation":          level,
	}
}
