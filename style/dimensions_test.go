package style

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		props    map[string]any
		vp       Viewport
		key      string
		expected string
		changed  bool
	}{
		{
			name:     "margins dominate - unadjusted",
			props:    map[string]any{"width": "10px", "marginLeft": float64(6), "marginRight": float64(6)},
			vp:       Viewport{Width: 100},
			key:      "width",
			expected: "10px",
			changed:  true,
		},
		{
			name:     "margin adjustment",
			props:    map[string]any{"width": "50px", "marginLeft": float64(10), "marginRight": float64(10)},
			vp:       Viewport{Width: 100},
			key:      "width",
			expected: "30px",
			changed:  true,
		},
		{
			name:     "height uses vertical margins",
			props:    map[string]any{"height": "50px", "marginTop": float64(10), "marginBottom": float64(10)},
			vp:       Viewport{Height: 100},
			key:      "height",
			expected: "30px",
			changed:  true,
		},
		{
			name:     "missing margin counts as zero",
			props:    map[string]any{"width": "50px", "marginLeft": float64(10)},
			vp:       Viewport{Width: 100},
			key:      "width",
			expected: "40px",
			changed:  true,
		},
		{
			name:     "numeric dimension defaults to px",
			props:    map[string]any{"width": float64(50), "marginLeft": float64(10), "marginRight": float64(10)},
			vp:       Viewport{Width: 100},
			key:      "width",
			expected: "30px",
			changed:  true,
		},
		{
			name:     "percent dimension keeps its unit",
			props:    map[string]any{"width": "50%", "marginLeft": float64(10), "marginRight": float64(10)},
			vp:       Viewport{Width: 100},
			key:      "width",
			expected: "30%",
			changed:  true,
		},
		{
			name:     "string margins contribute magnitude",
			props:    map[string]any{"width": "50px", "marginLeft": "10%", "marginRight": "10%"},
			vp:       Viewport{Width: 100},
			key:      "width",
			expected: "30px",
			changed:  true,
		},
		{
			name:    "absent dimension unchanged",
			props:   map[string]any{"marginLeft": float64(10)},
			vp:      Viewport{Width: 100},
			key:     "width",
			changed: false,
		},
		{
			name:    "falsy dimension unchanged",
			props:   map[string]any{"width": float64(0)},
			vp:      Viewport{Width: 100},
			key:     "width",
			changed: false,
		},
		{
			name:    "keyword dimension unchanged",
			props:   map[string]any{"width": "auto", "marginLeft": float64(10)},
			vp:      Viewport{Width: 100},
			key:     "width",
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := NewObject()
			for k, v := range tt.props {
				obj.Set(k, v)
			}
			got, changed := FormatValue(obj, tt.vp, tt.key)
			if changed != tt.changed {
				t.Fatalf("expected changed=%v, got %v", tt.changed, changed)
			}
			if changed && got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestObjectOrderAndDelete(t *testing.T) {
	obj := NewObject()
	obj.Set("width", 1)
	obj.Set("height", 2)
	obj.Set("color", "red")
	obj.Set("width", 3) // update keeps position

	want := []string{"width", "height", "color"}
	got := obj.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	obj.Delete("height")
	if _, ok := obj.Get("height"); ok {
		t.Error("expected height to be deleted")
	}
	if obj.Len() != 2 {
		t.Errorf("expected 2 keys after delete, got %d", obj.Len())
	}
}
