package style

import (
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
)

// fixedTokens always returns the same token - injectivity must not depend
// on the generator behaving well.
type fixedTokens struct{}

func (fixedTokens) Next() string { return "1234" }

func TestRegistryIdempotence(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	tests := []struct {
		name    string
		resolve func(string) string
	}{
		{"color variant", func(n string) string { return reg.ResolveColorPlaceholder(n) }},
		{"length variant", func(n string) string { return reg.ResolveLengthPlaceholder(n) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			varName := "$" + strings.ReplaceAll(tt.name, " ", "-")
			first := tt.resolve(varName)
			second := tt.resolve(varName)
			if first != second {
				t.Errorf("expected identical placeholder on repeat, got %q and %q", first, second)
			}
		})
	}
}

func TestRegistryInjectivity(t *testing.T) {
	reg := NewRegistry(zap.NewNop(), WithTokenGenerator(fixedTokens{}))

	seen := make(map[string]string)
	names := []string{"$primary", "$secondary", "$accent", "$gutter", "$pad", "$radius"}
	for i, name := range names {
		var ph string
		if i%2 == 0 {
			ph = reg.ResolveColorPlaceholder(name)
		} else {
			ph = reg.ResolveLengthPlaceholder(name)
		}
		if prev, ok := seen[ph]; ok {
			t.Fatalf("placeholder %q allocated for both %q and %q", ph, prev, name)
		}
		seen[ph] = name
	}
	if reg.Len() != len(names) {
		t.Errorf("expected %d registered variables, got %d", len(names), reg.Len())
	}
}

func TestRegistryColorSequence(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	if ph := reg.ResolveColorPlaceholder("$first"); ph != "#000001" {
		t.Errorf("expected #000001, got %q", ph)
	}
	if ph := reg.ResolveColorPlaceholder("$second"); ph != "#000002" {
		t.Errorf("expected #000002, got %q", ph)
	}
}

func TestRegistryReverseLookupDropsSigil(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	ph := reg.ResolveColorPlaceholder("$primary")
	name, ok := reg.Lookup(ph)
	if !ok {
		t.Fatal("expected placeholder to be registered")
	}
	if name != "primary" {
		t.Errorf("expected reverse key without sigil, got %q", name)
	}
}

func TestRegistryLengthPlaceholderShape(t *testing.T) {
	reg := NewRegistry(zap.NewNop(), WithTokenGenerator(fixedTokens{}))

	ph := reg.ResolveLengthPlaceholder("$gutter")
	if !strings.HasSuffix(ph, "px") {
		t.Fatalf("expected length marker suffix, got %q", ph)
	}
	digits := strings.TrimSuffix(ph, "px")
	for _, r := range digits {
		if r < '0' || r > '9' {
			t.Fatalf("expected digits only before marker, got %q", ph)
		}
	}
	if len(digits) > 14 {
		t.Errorf("placeholder %q too long to round-trip float64 exactly", ph)
	}
}

func TestRegistryFallbackPairsPlaceholderWithItself(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	plain := reg.ResolveColorPlaceholder("$accent")
	paired := reg.ResolveColorPlaceholder("$accent", "red")
	if paired != plain+" "+plain {
		t.Errorf("expected two-token pairing, got %q", paired)
	}
}

func TestRegistryReset(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	ph := reg.ResolveColorPlaceholder("$primary")
	reg.Reset()
	if _, ok := reg.Lookup(ph); ok {
		t.Error("expected lookup to fail after reset")
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry after reset, got %d entries", reg.Len())
	}
	if again := reg.ResolveColorPlaceholder("$other"); again != "#000001" {
		t.Errorf("expected allocation to restart, got %q", again)
	}
}

func TestRegistryConcurrentFirstResolution(t *testing.T) {
	reg := NewRegistry(zap.NewNop())

	const workers = 16
	results := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = reg.ResolveLengthPlaceholder("$shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("concurrent resolutions disagree: %q vs %q", results[0], results[i])
		}
	}
	if reg.Len() != 1 {
		t.Errorf("expected a single registered variable, got %d", reg.Len())
	}
}
