package style

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"restyle/calc"
	"restyle/common"
	"restyle/theme"
)

// Evaluator computes a calc/min/max expression for a property, returning
// NaN when evaluation fails.
type Evaluator func(prop, raw string, u calc.Units) float64

// Resolver walks a compiled style object and replaces theme references,
// relative units and margin-dependent dimensions with concrete values.
type Resolver struct {
	log      *zap.Logger
	reg      *Registry
	platform common.Platform
	eval     Evaluator
}

// ResolverOption customizes a resolver.
type ResolverOption func(*Resolver)

// WithPlatform sets the rendering target; it decides whether web-only
// properties survive resolution.
func WithPlatform(p common.Platform) ResolverOption {
	return func(r *Resolver) { r.platform = p }
}

// WithEvaluator overrides the calc/min/max expression evaluator.
func WithEvaluator(e Evaluator) ResolverOption {
	return func(r *Resolver) { r.eval = e }
}

// NewResolver creates a resolver bound to a placeholder registry.
func NewResolver(log *zap.Logger, reg *Registry, opts ...ResolverOption) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{
		log:      log.Named("style-resolver"),
		reg:      reg,
		platform: common.PlatformNative,
		eval:     calc.Evaluate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve mutates obj in place and returns it for chaining. The pass is
// fail-fast: on error the object must be treated as entirely unresolved.
func (r *Resolver) Resolve(obj *Object, th *theme.Theme, vp Viewport) (*Object, error) {
	units := calc.Units{
		Rem:            th.Root(),
		ViewportWidth:  vp.Width,
		ViewportHeight: vp.Height,
	}

	// Properties merged in during the pass (elevation shadows) carry
	// concrete values and are not revisited.
	for _, prop := range obj.Keys() {
		v, ok := obj.Get(prop)
		if !ok {
			continue
		}
		switch {
		case prop == PropElevation && th != nil && th.Elevation != nil:
			if level, isNum := toFloat(v); isNum {
				for k, sv := range th.Elevation(level) {
					obj.Set(k, sv)
				}
			}

		case prop == PropCursor && !r.platform.IsWeb():
			// cursor styling has no meaning off the web target
			obj.Delete(prop)

		case IsColorProperty(prop):
			if err := r.resolveColor(obj, prop, v, th); err != nil {
				return nil, err
			}

		case IsLengthProperty(prop):
			if err := r.resolveLength(obj, prop, v, th, vp, units); err != nil {
				return nil, err
			}
		}
	}

	// Width/height recomputation triggers only when every margin is
	// present and truthy. Explicit conjunction, property by property.
	haveMargins := truthyProp(obj, propMarginLeft) &&
		truthyProp(obj, propMarginRight) &&
		truthyProp(obj, propMarginTop) &&
		truthyProp(obj, propMarginBottom)
	if haveMargins {
		for _, key := range []string{propWidth, propHeight} {
			formatted, changed := FormatValue(obj, vp, key)
			if !changed {
				continue
			}
			resolved, err := ResolveLengthUnit(formatted, th, vp)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", key, err)
			}
			obj.Set(key, resolved)
		}
	}

	return obj, nil
}

// resolveColor substitutes a registered color placeholder with its theme
// value. Unregistered literals stay untouched.
func (r *Resolver) resolveColor(obj *Object, prop string, v any, th *theme.Theme) error {
	s, isStr := v.(string)
	if !isStr {
		return nil
	}
	name, registered := r.reg.Lookup(s)
	if !registered {
		return nil
	}
	val, defined := th.Lookup(name)
	if !defined {
		return &UndefinedVariableError{Name: name}
	}
	obj.Set(prop, val)
	return nil
}

// resolveLength runs the three-step length pipeline: placeholder
// substitution, calc delegation, unit conversion.
func (r *Resolver) resolveLength(obj *Object, prop string, v any, th *theme.Theme, vp Viewport, units calc.Units) error {
	// (a) placeholder lookup against the value suffixed with the length
	// marker; compiled length placeholders are numeric so the textual
	// form round-trips exactly
	if key := lengthLookupKey(v); key != "" {
		if name, registered := r.reg.Lookup(key); registered {
			val, defined := th.Lookup(name)
			if !defined {
				return &UndefinedVariableError{Name: name}
			}
			v = val
		}
	}

	// (b) calc/min/max expressions go to the external evaluator; a failed
	// evaluation keeps the original value
	if s, isStr := v.(string); isStr && calc.IsExpression(s) {
		if n := r.eval(prop, s, units); !math.IsNaN(n) {
			v = n
		} else {
			r.log.Debug("expression evaluation failed",
				zap.String("property", prop),
				zap.String("value", s))
		}
	}

	// (c) unit conversion
	resolved, err := ResolveLengthUnit(v, th, vp)
	if err != nil {
		return fmt.Errorf("property %s: %w", prop, err)
	}
	obj.Set(prop, resolved)
	return nil
}

// lengthLookupKey renders the reverse-registry key for a length value.
func lengthLookupKey(v any) string {
	switch vv := v.(type) {
	case float64:
		return formatNumber(vv) + lengthMarker
	case int:
		return formatNumber(float64(vv)) + lengthMarker
	case string:
		return vv + lengthMarker
	default:
		return ""
	}
}

func truthyProp(obj *Object, key string) bool {
	v, ok := obj.Get(key)
	return ok && truthy(v)
}
