package style

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	// VariableSigil prefixes theme variable names in style source.
	VariableSigil = "$"
	// lengthMarker suffixes generic placeholders so they read as a valid
	// length for a strict value parser, and keys the reverse lookup for
	// length properties.
	lengthMarker = "px"
)

// Registry binds theme variable names to parser-safe placeholder tokens.
// A name keeps the same placeholder for the registry's lifetime and no two
// names ever share one. The registry is owned by the theming layer and
// passed explicitly into every resolution; Reset exists for test isolation.
//
// Two encoding variants write into the same registry: an opaque numeric
// token for generic (length) variables and an incrementing hex color code
// for color variables. A given variable name must always go through the
// same variant; the registry does not police that discipline.
type Registry struct {
	mu      sync.Mutex
	log     *zap.Logger
	tokens  TokenGenerator
	forward map[string]string // variable name (with sigil) -> placeholder
	reverse map[string]string // placeholder -> variable name without sigil

	colorSeq  uint32 // monotonically advancing hex code allocator
	lengthSeq uint32 // sequence suffix guaranteeing token uniqueness
}

// RegistryOption customizes a registry.
type RegistryOption func(*Registry)

// WithTokenGenerator overrides the opaque token source.
func WithTokenGenerator(g TokenGenerator) RegistryOption {
	return func(r *Registry) { r.tokens = g }
}

// NewRegistry creates an empty placeholder registry.
func NewRegistry(log *zap.Logger, opts ...RegistryOption) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:     log.Named("var-registry"),
		tokens:  NewTokenGenerator(),
		forward: make(map[string]string),
		reverse: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveColorPlaceholder returns the placeholder for a color-valued theme
// variable, allocating the next hex code on first sight. With a fallback
// argument the result is a two-token string pairing the placeholder with
// itself, mirroring variable-with-fallback syntax.
func (r *Registry) ResolveColorPlaceholder(name string, fallback ...string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ph, ok := r.forward[name]
	if !ok {
		r.colorSeq++
		ph = fmt.Sprintf("#%06x", r.colorSeq)
		r.register(name, ph)
	}
	if len(fallback) > 0 {
		return ph + " " + ph
	}
	return ph
}

// ResolveLengthPlaceholder returns the placeholder for a generic (length)
// theme variable. The placeholder is an opaque digit run with a length
// marker appended; the digit run is short enough that the compiled numeric
// value converts back to the exact same placeholder string.
func (r *Registry) ResolveLengthPlaceholder(name string, fallback ...string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ph, ok := r.forward[name]
	if !ok {
		ph = r.nextLengthPlaceholder()
		r.register(name, ph)
	}
	if len(fallback) > 0 {
		return ph + " " + ph
	}
	return ph
}

// nextLengthPlaceholder allocates a fresh token. The sequence suffix
// advances on every attempt, so even a token generator that repeats itself
// cannot produce a placeholder already in use.
func (r *Registry) nextLengthPlaceholder() string {
	for {
		r.lengthSeq++
		ph := fmt.Sprintf("%s%04d%s", r.tokens.Next(), r.lengthSeq, lengthMarker)
		if _, taken := r.reverse[ph]; !taken {
			return ph
		}
	}
}

// register records both directions of a binding. Reverse lookup keys drop
// the variable sigil, matching how names appear in theme mappings.
func (r *Registry) register(name, placeholder string) {
	r.forward[name] = placeholder
	r.reverse[placeholder] = strings.TrimPrefix(name, VariableSigil)
	r.log.Debug("allocated placeholder",
		zap.String("variable", name),
		zap.String("placeholder", placeholder))
}

// Lookup maps a placeholder back to its variable name (without sigil).
func (r *Registry) Lookup(placeholder string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.reverse[placeholder]
	return name, ok
}

// Len returns the number of registered variables.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forward)
}

// Reset drops all bindings and restarts allocation. Only meant for tests
// and theme hot swaps where compiled placeholders are discarded too.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forward = make(map[string]string)
	r.reverse = make(map[string]string)
	r.colorSeq = 0
	r.lengthSeq = 0
}
