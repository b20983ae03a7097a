// Package theme models the values a style resolution pass draws from: the
// root metric used for relative units, named size and color mappings and an
// elevation function producing shadow styles.
package theme

import (
	"fmt"
	"os"
	"sort"

	yaml "gopkg.in/yaml.v3"
)

// DefaultRootMetric is used when a theme does not define a root metric.
const DefaultRootMetric = 8

// ElevationFunc maps an abstract shadow depth level to concrete shadow
// style properties.
type ElevationFunc func(level float64) map[string]any

// Theme is a read-only snapshot of application styling values. Size and
// color mappings may be nested; lookups go through a table flattened once
// at construction so repeated resolutions do not rescan the structure.
type Theme struct {
	RootMetric float64
	Sizes      map[string]any
	Colors     map[string]any
	Elevation  ElevationFunc

	flat map[string]any
}

// New builds a theme and flattens its mappings. Sizes are flattened before
// colors, so for a duplicated variable name the size value wins.
func New(rootMetric float64, sizes, colors map[string]any) *Theme {
	t := &Theme{
		RootMetric: rootMetric,
		Sizes:      sizes,
		Colors:     colors,
		Elevation:  DefaultElevation,
		flat:       make(map[string]any),
	}
	flatten(sizes, t.flat)
	flatten(colors, t.flat)
	return t
}

// Lookup returns the value bound to a variable name (without the leading
// sigil) in the flattened size/color table.
func (t *Theme) Lookup(name string) (any, bool) {
	if t == nil || t.flat == nil {
		return nil, false
	}
	v, ok := t.flat[name]
	return v, ok
}

// Root returns the root metric, substituting the default when the theme
// does not set one.
func (t *Theme) Root() float64 {
	if t == nil || t.RootMetric == 0 {
		return DefaultRootMetric
	}
	return t.RootMetric
}

// flatten walks a possibly nested mapping depth-first and records every
// scalar under its own key. The first binding of a name wins. YAML mappings
// carry no usable order, so keys are visited lexicographically on each
// level to keep the table deterministic.
func flatten(src map[string]any, dst map[string]any) {
	if len(src) == 0 {
		return
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// scalars first, then sub-mappings
	var nested []string
	for _, k := range keys {
		switch v := src[k].(type) {
		case map[string]any:
			nested = append(nested, k)
		default:
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	for _, k := range nested {
		flatten(src[k].(map[string]any), dst)
	}
}

type themeFile struct {
	Rem    float64        `yaml:"rem"`
	Sizes  map[string]any `yaml:"sizes"`
	Colors map[string]any `yaml:"colors"`
}

// Load reads a theme description from a YAML file. Unknown fields are
// rejected to catch configuration typos early.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read theme file: %w", err)
	}
	return Parse(data)
}

// Parse builds a theme from YAML data.
func Parse(data []byte) (*Theme, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("unable to decode theme data: %w", err)
	}
	return New(tf.Rem, normalize(tf.Sizes), normalize(tf.Colors)), nil
}

// normalize rewrites yaml's map[any]any leftovers and numeric scalars into
// the shapes the engine works with.
func normalize(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		switch vv := v.(type) {
		case map[string]any:
			out[k] = normalize(vv)
		case int:
			out[k] = float64(vv)
		default:
			out[k] = v
		}
	}
	return out
}
