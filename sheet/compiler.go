// Package sheet compiles a CSS-like stylesheet source into raw style
// objects. This is the compile-time half of the theme variable data flow:
// $variable references are replaced here with parser-safe placeholders so
// the resolver can swap them back against a live theme later.
package sheet

import (
	"bytes"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"restyle/style"
)

// Compiler parses stylesheet sources and encodes variable references
// through a shared placeholder registry.
type Compiler struct {
	log *zap.Logger
	reg *style.Registry
}

// NewCompiler creates a stylesheet compiler.
func NewCompiler(log *zap.Logger, reg *style.Registry) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("sheet-compiler"), reg: reg}
}

// Compile parses source text into named style objects. Selectors are used
// verbatim as block names (a leading dot is stripped); unsupported
// constructs are skipped with a warning instead of failing the compile.
func (c *Compiler) Compile(data []byte) *Sheet {
	sheet := &Sheet{
		Blocks:   make([]Block, 0),
		Warnings: make([]string, 0),
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, gdata := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				c.log.Debug("stylesheet parse error", zap.Error(parser.Err()))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			c.skipAtRuleBlock(parser)
			sheet.Warnings = append(sheet.Warnings, "skipping @-rule: "+string(gdata))

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "skipping @-rule: "+string(gdata))

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			name := blockName(gdata, parser.Values())
			obj := c.compileDeclarations(parser, sheet)
			if name == "" || obj.Len() == 0 {
				continue
			}
			sheet.Blocks = append(sheet.Blocks, Block{Name: name, Object: obj})
		}
	}
}

// blockName renders the selector tokens into a block name.
func blockName(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimPrefix(strings.TrimSpace(sb.String()), ".")
}

// compileDeclarations reads declarations until the end of the ruleset.
func (c *Compiler) compileDeclarations(parser *css.Parser, sheet *Sheet) *style.Object {
	obj := style.NewObject()

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return obj

		case css.DeclarationGrammar:
			prop := camelCase(string(data))
			if !style.IsKnownProperty(prop) {
				c.log.Debug("unknown style property", zap.String("property", prop))
				continue
			}
			c.compileValue(obj, prop, parser.Values(), sheet)
		}
	}
}

// compileValue turns declaration tokens into a raw style value. Theme
// variable references are encoded into placeholders: color properties get
// the hex-code variant, length properties the opaque numeric variant whose
// compiled form is a plain number.
func (c *Compiler) compileValue(obj *style.Object, prop string, tokens []css.Token, sheet *Sheet) {
	raw := rawValue(tokens)
	if raw == "" {
		return
	}

	if strings.HasPrefix(raw, style.VariableSigil) {
		name, fallback, hasFallback := strings.Cut(raw, ",")
		name = strings.TrimSpace(name)
		fallback = strings.TrimSpace(fallback)

		switch {
		case style.IsColorProperty(prop):
			if hasFallback {
				obj.Set(prop, c.reg.ResolveColorPlaceholder(name, fallback))
			} else {
				obj.Set(prop, c.reg.ResolveColorPlaceholder(name))
			}
		case style.IsLengthProperty(prop):
			var ph string
			if hasFallback {
				ph = c.reg.ResolveLengthPlaceholder(name, fallback)
			} else {
				ph = c.reg.ResolveLengthPlaceholder(name)
			}
			// the value parser reduces a px dimension to its number; a
			// fallback pairing cannot be reduced and stays textual
			if n, ok := placeholderNumber(ph); ok {
				obj.Set(prop, n)
			} else {
				obj.Set(prop, ph)
			}
		default:
			sheet.Warnings = append(sheet.Warnings,
				"variable reference on non-themable property "+prop+": "+raw)
		}
		return
	}

	obj.Set(prop, literalValue(tokens, raw))
}

// literalValue reduces plain (non-variable) declaration tokens: px and
// unitless dimensions become numbers, everything else keeps its textual
// form for the resolver.
func literalValue(tokens []css.Token, raw string) any {
	if t, ok := singleToken(tokens); ok {
		switch t.TokenType {
		case css.NumberToken:
			if n, err := strconv.ParseFloat(string(t.Data), 64); err == nil {
				return n
			}
		case css.DimensionToken:
			s := string(t.Data)
			if strings.HasSuffix(strings.ToLower(s), "px") {
				if n, err := strconv.ParseFloat(s[:len(s)-2], 64); err == nil {
					return n
				}
			}
		}
	}
	return raw
}

// placeholderNumber converts an allocated length placeholder to the
// numeric value the strict parser would compile it to.
func placeholderNumber(ph string) (float64, bool) {
	s, ok := strings.CutSuffix(ph, "px")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func singleToken(tokens []css.Token) (css.Token, bool) {
	var tok css.Token
	count := 0
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			continue
		}
		tok = t
		count++
	}
	return tok, count == 1
}

// rawValue joins declaration tokens into their textual form, collapsing
// whitespace runs into single spaces.
func rawValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// camelCase maps kebab-case source property names onto the engine's
// camelCase names; names already in camelCase pass through.
func camelCase(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	parts := strings.Split(name, "-")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (c *Compiler) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
