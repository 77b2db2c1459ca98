package interp

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/docstub/pkg/grammar"
	"github.com/walteh/docstub/pkg/scanner"
	"gitlab.com/tozd/go/errors"
)

// maxInterpretDepth caps the recursive continuation. Each pass strictly
// shrinks the remaining text, so the cap only matters for degenerate input.
const maxInterpretDepth = 16

var (
	numberLiteralRe = regexp.MustCompile(`^[-+]?\d+(?:\.\d+)?$`)
	newExprRe       = regexp.MustCompile(`^new\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
)

// JavaScript interprets JavaScript declarations: function and class
// declarations, prototype-style method definitions, variable and
// function-expression assignments, and modifier-prefixed members.
type JavaScript struct {
	table    *grammar.Table
	proto    *regexp.Regexp
	funcExpr *regexp.Regexp
	arrow    *regexp.Regexp
}

var _ TokenInterpreter = &JavaScript{}

func NewJavaScript(table *grammar.Table) (*JavaScript, error) {
	if table == nil {
		return nil, errors.New("javascript interpreter needs a grammar table")
	}
	keyword := table.Keyword(grammar.CategoryFunction)
	if keyword == "" {
		return nil, errors.Errorf("grammar table %s has no function keyword", table.Language())
	}

	// the prototype pattern follows the table's identifier class, so a table
	// with a narrower class only matches its own identifiers; named groups
	// keep the captures stable if the class itself contains groups
	ident := table.Identifier().String()
	proto, err := regexp.Compile(`^(?P<owner>(?:` + ident + `))\.prototype\.(?P<member>(?:` + ident + `))`)
	if err != nil {
		return nil, errors.Errorf("deriving prototype pattern for %s: %w", table.Language(), err)
	}

	return &JavaScript{
		table:    table,
		proto:    proto,
		funcExpr: compileFunctionExpression(keyword),
		arrow:    compileArrowExpression(),
	}, nil
}

func (p *JavaScript) Interpret(ctx context.Context, code, hint string, desc *Description) {
	p.interpret(ctx, code, hint, desc, 0)
	zerolog.Ctx(ctx).Debug().
		Str("name", desc.Name).
		Stringer("kind", desc.Kind).
		Int("params", len(desc.Params)).
		Bool("returns", desc.Return.Present).
		Msg("interpreted line")
}

func (p *JavaScript) interpret(ctx context.Context, code, hint string, desc *Description, depth int) {
	if depth >= maxInterpretDepth {
		return
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}

	frags := scanner.Scan(code)
	first := frags[0]
	if first.Kind == scanner.KindEndLine {
		return
	}
	eol, _, _ := scanner.First(frags, scanner.KindEndLine)

	functionKw := p.table.Keyword(grammar.CategoryFunction)
	classKw := p.table.Keyword(grammar.CategoryClass)

	next := ""
	nextHint := hint

	switch {
	case first.Value == functionKw || first.Value == classKw:
		if first.Value == classKw {
			desc.Kind = KindClass
			desc.Return = ReturnInfo{}
		} else {
			desc.Kind = KindFunction
			desc.Return.Present = true
		}
		nextHint = first.Value
		next = code[first.End():]

	case p.proto.MatchString(code):
		m := p.proto.FindStringSubmatch(code)
		desc.Kind = KindFunction
		desc.Name = m[p.proto.SubexpIndex("member")]
		desc.Return.Present = true
		next = stripLeadingAssign(code[len(m[0]):])

	case first.Kind == scanner.KindCode:
		// line-leading assignment: a plain variable, which never carries
		// parameters or a return section
		desc.Kind = KindVariable
		desc.Name = first.Value
		desc.VarType = p.guessInitializerType(code, first)
		return

	case p.table.Matches(first.Value, grammar.CategoryVariables):
		rest := strings.TrimSpace(code[first.End():])
		if rewritten, ok := rewriteFunctionExpression(rest, functionKw, p.funcExpr, p.arrow); ok {
			next = rewritten
		} else {
			next = stripStatementTerminator(rest)
		}

	case p.table.Matches(first.Value, grammar.CategoryModifiers):
		desc.Kind = KindFunction
		desc.Return.Present = true
		desc.Name = p.nameAfterModifiers(frags)

	case hint != "" && p.table.Matches(hint, ""):
		if desc.Name == "" {
			desc.Name = first.Value
		}
		next = code[first.End():]

	default:
		// shorthand method: a bare identifier glued to its parameter list
		if ps, idx, ok := scanner.First(frags, scanner.KindParamStart); ok &&
			idx == 1 && first.Kind == scanner.KindText &&
			first.End() == ps.Column && !p.table.Matches(first.Value, "") {
			desc.Kind = KindFunction
			desc.Name = first.Value
			desc.Return.Present = true
		}
	}

	if _, _, ok := scanner.First(frags, scanner.KindParamStart); ok && len(desc.Params) == 0 {
		for _, f := range frags {
			if f.Kind != scanner.KindAttribute {
				continue
			}
			desc.Params = append(desc.Params, Parameter{
				Name:  f.Name,
				Value: f.Value,
				Type:  p.guessType(f.Value),
			})
		}
	}

	next = strings.TrimSpace(next)
	if next != "" && first.Column < eol.Column && p.table.StartsIdentifier(next) {
		p.interpret(ctx, next, nextHint, desc, depth+1)
	}
}

// nameAfterModifiers strips leading modifier keywords and returns the first
// identifier left. A line that is modifiers all the way down has no name;
// the empty string is the deterministic fallback for that case.
func (p *JavaScript) nameAfterModifiers(frags []scanner.Fragment) string {
	for _, f := range frags {
		switch f.Kind {
		case scanner.KindText, scanner.KindCode:
			if p.table.Matches(f.Value, grammar.CategoryModifiers) {
				continue
			}
			if p.table.StartsIdentifier(f.Value) {
				return f.Value
			}
		case scanner.KindParamStart:
			// the name precedes the parameter list
			return ""
		}
	}
	return ""
}

// guessInitializerType looks at the text assigned to a variable and guesses
// a type from the literal shape.
func (p *JavaScript) guessInitializerType(code string, first scanner.Fragment) string {
	rest := code[first.End():]
	idx := strings.Index(rest, "=")
	if idx < 0 {
		return ""
	}
	value := stripStatementTerminator(strings.TrimSpace(rest[idx+1:]))
	return p.guessType(value)
}

func (p *JavaScript) guessType(value string) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return ""
	case numberLiteralRe.MatchString(value):
		return "Number"
	case strings.HasPrefix(value, `"`), strings.HasPrefix(value, "'"), strings.HasPrefix(value, "`"):
		return "String"
	case value == "true", value == "false":
		return "Boolean"
	case strings.HasPrefix(value, "["):
		return "Array"
	case strings.HasPrefix(value, "{"):
		return "Object"
	case strings.HasPrefix(value, p.table.Keyword(grammar.CategoryFunction)), strings.Contains(value, "=>"):
		return "Function"
	}
	if m := newExprRe.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return ""
}
