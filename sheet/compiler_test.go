package sheet

import (
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"restyle/style"
	"restyle/theme"
)

func TestCompileBlocks(t *testing.T) {
	reg := style.NewRegistry(zap.NewNop())
	c := NewCompiler(zap.NewNop(), reg)

	src := []byte(`
.card {
	background-color: $primary;
	padding-top: 2rem;
	margin-left: 10px;
	line-height: 1.2;
	elevation: 2;
	color: red;
	bogus-prop: 1;
}
.title {
	font-size: $heading;
}
`)
	sheet := c.Compile(src)

	if len(sheet.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(sheet.Blocks))
	}

	card, ok := sheet.Block("card")
	if !ok {
		t.Fatal("missing 'card' block")
	}

	// variable reference is replaced with the registered color placeholder
	ph := reg.ResolveColorPlaceholder("$primary")
	if v, _ := card.Object.Get("backgroundColor"); v != ph {
		t.Errorf("expected placeholder %q, got %v", ph, v)
	}

	// px and unitless values compile to numbers, other units stay textual
	if v, _ := card.Object.Get("marginLeft"); v != float64(10) {
		t.Errorf("expected 10, got %v", v)
	}
	if v, _ := card.Object.Get("lineHeight"); v != float64(1.2) {
		t.Errorf("expected 1.2, got %v", v)
	}
	if v, _ := card.Object.Get("paddingTop"); v != "2rem" {
		t.Errorf("expected '2rem', got %v", v)
	}
	if v, _ := card.Object.Get("elevation"); v != float64(2) {
		t.Errorf("expected 2, got %v", v)
	}
	if v, _ := card.Object.Get("color"); v != "red" {
		t.Errorf("expected literal keyword, got %v", v)
	}

	// unrecognized properties are dropped
	if _, ok := card.Object.Get("bogusProp"); ok {
		t.Error("expected unknown property to be dropped")
	}

	// length variables compile to the numeric form of their placeholder
	title, _ := sheet.Block("title")
	v, _ := title.Object.Get("fontSize")
	n, isNum := v.(float64)
	if !isNum {
		t.Fatalf("expected numeric length placeholder, got %T", v)
	}
	key := strconv.FormatFloat(n, 'f', -1, 64) + "px"
	if name, registered := reg.Lookup(key); !registered || name != "heading" {
		t.Errorf("placeholder does not reverse to variable, got %q (%v)", name, registered)
	}
}

func TestCompileWarnsOnVariableForPassthroughProperty(t *testing.T) {
	reg := style.NewRegistry(zap.NewNop())
	c := NewCompiler(zap.NewNop(), reg)

	sheet := c.Compile([]byte(`.a { opacity: $fade; }`))
	if len(sheet.Warnings) == 0 {
		t.Fatal("expected a warning")
	}
	if !strings.Contains(sheet.Warnings[0], "opacity") {
		t.Errorf("warning should name the property: %q", sheet.Warnings[0])
	}
}

func TestCompileSkipsAtRules(t *testing.T) {
	reg := style.NewRegistry(zap.NewNop())
	c := NewCompiler(zap.NewNop(), reg)

	sheet := c.Compile([]byte(`
@media screen { .a { color: red; } }
.b { color: blue; }
`))
	if _, ok := sheet.Block("a"); ok {
		t.Error("expected @media content to be skipped")
	}
	if _, ok := sheet.Block("b"); !ok {
		t.Error("expected following block to survive")
	}
	if len(sheet.Warnings) == 0 {
		t.Error("expected an @-rule warning")
	}
}

func TestCompileResolveRoundTrip(t *testing.T) {
	reg := style.NewRegistry(zap.NewNop())
	c := NewCompiler(zap.NewNop(), reg)

	src := []byte(`
.card {
	background-color: $primary;
	width: $gutter;
	height: 4rem;
	cursor: pointer;
}
`)
	compiled := c.Compile(src)
	card, ok := compiled.Block("card")
	if !ok {
		t.Fatal("missing 'card' block")
	}

	th := theme.New(10,
		map[string]any{"gutter": "2rem"},
		map[string]any{"primary": "#0a84ff"})

	res := style.NewResolver(zap.NewNop(), reg)
	if _, err := res.Resolve(card.Object, th, style.Viewport{Width: 320, Height: 480}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := card.Object.Get("backgroundColor"); v != "#0a84ff" {
		t.Errorf("expected theme color, got %v", v)
	}
	if v, _ := card.Object.Get("width"); v != float64(20) {
		t.Errorf("expected 20, got %v", v)
	}
	if v, _ := card.Object.Get("height"); v != float64(40) {
		t.Errorf("expected 40, got %v", v)
	}
	if _, ok := card.Object.Get("cursor"); ok {
		t.Error("expected cursor to be stripped on the native target")
	}
}
