// Package calc evaluates calc()/min()/max() style expressions into plain
// numbers. Relative units inside an expression are rewritten to absolute
// pixel values first, then the arithmetic is handed to expr-lang. Any
// failure yields NaN so the caller can decide to keep the original value.
package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Units carries the reference values needed to rewrite relative length
// units inside an expression.
type Units struct {
	Rem            float64
	ViewportWidth  float64
	ViewportHeight float64
}

// IsExpression reports whether a raw value should be delegated to Evaluate.
func IsExpression(s string) bool {
	return strings.HasPrefix(s, "calc(") ||
		strings.HasPrefix(s, "min(") ||
		strings.HasPrefix(s, "max(")
}

// Evaluate computes a calc/min/max expression for the named property.
// Returns NaN when the expression cannot be evaluated; percentages cannot
// be resolved without the parent box and always fail.
func Evaluate(_ string, raw string, u Units) float64 {
	src, ok := rewrite(raw, u)
	if !ok {
		return math.NaN()
	}
	program, err := expr.Compile(src)
	if err != nil {
		return math.NaN()
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return math.NaN()
	}
	switch n := out.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return math.NaN()
	}
}

// rewrite tokenizes the CSS expression and renders an equivalent
// arithmetic source for expr-lang: calc() becomes plain parentheses, min()
// and max() map onto the expr builtins of the same name, dimensions become
// numbers.
func rewrite(raw string, u Units) (string, bool) {
	l := css.NewLexer(parse.NewInput(strings.NewReader(raw)))
	var b strings.Builder
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			// io.EOF ends the expression, anything else rejects it
			if l.Err() != nil && l.Err().Error() != "EOF" {
				return "", false
			}
			return b.String(), b.Len() > 0
		case css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(data), "("))
			switch name {
			case "calc":
				b.WriteByte('(')
			case "min", "max":
				b.WriteString(name)
				b.WriteByte('(')
			default:
				return "", false
			}
		case css.LeftParenthesisToken, css.RightParenthesisToken, css.CommaToken:
			b.Write(data)
		case css.NumberToken:
			b.Write(data)
		case css.DimensionToken:
			n, ok := dimensionToNumber(string(data), u)
			if !ok {
				return "", false
			}
			b.WriteString(strconv.FormatFloat(n, 'f', -1, 64))
		case css.PercentageToken:
			return "", false
		case css.DelimToken:
			switch string(data) {
			case "+", "-", "*", "/":
				b.WriteByte(' ')
				b.Write(data)
				b.WriteByte(' ')
			default:
				return "", false
			}
		case css.WhitespaceToken:
			b.WriteByte(' ')
		default:
			return "", false
		}
	}
}

// dimensionToNumber resolves a single dimension token against the unit
// reference values.
func dimensionToNumber(s string, u Units) (float64, bool) {
	numEnd := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, false
	}
	mag, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(s[numEnd:]) {
	case "px":
		return mag, true
	case "rem":
		return mag * u.Rem, true
	case "vw":
		return mag * u.ViewportWidth / 100, true
	case "vh":
		return mag * u.ViewportHeight / 100, true
	default:
		return 0, false
	}
}
