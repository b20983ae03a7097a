package style

import (
	"errors"
	"testing"

	"restyle/theme"
)

func TestResolveLengthUnit(t *testing.T) {
	th := theme.New(10, nil, nil)
	vp := Viewport{Width: 200, Height: 400}

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{"rem scales by root metric", "2rem", float64(20)},
		{"vw is viewport fraction", "50vw", float64(100)},
		{"vh is viewport fraction", "25vh", float64(100)},
		{"px is plain number", "12px", float64(12)},
		{"zero with unit", "0px", float64(0)},
		{"zero without unit", "0", float64(0)},
		{"percent stays unresolved", "50%", "50%"},
		{"number passes through", float64(42), float64(42)},
		{"int passes through", 7, 7},
		{"nil passes through", nil, nil},
		{"empty string passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLengthUnit(tt.input, th, vp)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestResolveLengthUnitDefaultsRootMetric(t *testing.T) {
	// root metric of zero falls back to 8
	got, err := ResolveLengthUnit("2rem", theme.New(0, nil, nil), Viewport{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != float64(16) {
		t.Errorf("expected 16, got %v", got)
	}
}

func TestResolveLengthUnitFailures(t *testing.T) {
	th := theme.New(8, nil, nil)

	t.Run("unknown unit", func(t *testing.T) {
		_, err := ResolveLengthUnit("10xy", th, Viewport{})
		var ue *UnknownUnitError
		if !errors.As(err, &ue) {
			t.Fatalf("expected UnknownUnitError, got %v", err)
		}
		if ue.Unit != "xy" || ue.Value != "10xy" {
			t.Errorf("error should name unit and value, got %+v", ue)
		}
	})

	t.Run("missing unit", func(t *testing.T) {
		_, err := ResolveLengthUnit("10", th, Viewport{})
		var me *MalformedLengthError
		if !errors.As(err, &me) {
			t.Fatalf("expected MalformedLengthError, got %v", err)
		}
	})

	t.Run("no numeric prefix", func(t *testing.T) {
		_, err := ResolveLengthUnit("auto", th, Viewport{})
		var ue *UnknownUnitError
		if !errors.As(err, &ue) {
			t.Fatalf("expected UnknownUnitError, got %v", err)
		}
	})

	t.Run("contract violation", func(t *testing.T) {
		_, err := ResolveLengthUnit(true, th, Viewport{})
		var ce *ContractViolationError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ContractViolationError, got %v", err)
		}
	})
}
