// Package render turns a semantic description into the final multi-line
// comment block, with the tag columns of every line vertically aligned and
// numbered tab stops for interactive editing.
package render

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/docstub/pkg/config"
	"github.com/walteh/docstub/pkg/interp"
)

const (
	// baseFieldGap is inserted between tag columns regardless of the
	// computed alignment padding.
	baseFieldGap = 1

	// returnDescriptionPad covers the decorative characters around the name
	// column that return tags do not print; reusing the parameter name
	// width keeps return descriptions on the same column as parameter
	// descriptions. Empirically tuned.
	returnDescriptionPad = 3

	// typePlaceholder stands in for a missing type.
	typePlaceholder = "[type]"
)

// Engine assembles comment blocks. It holds no state; the same description
// and style always produce the same bytes.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Render produces the full comment block for a description using the given
// style. Column widths are computed per block so the type and name fields of
// every tag line start at the same column.
func (e *Engine) Render(ctx context.Context, desc *interp.Description, style config.Style) string {
	style = style.WithDefaults()
	counter := &placeholderCounter{}

	lines := []string{counter.wrap(descriptionText(desc.Name))}

	nameWidth, typeWidth := columnWidths(desc.Params)

	if desc.Kind != interp.KindVariable && len(desc.Params) > 0 {
		lines = append(lines, style.Separator)
		for _, p := range desc.Params {
			lines = append(lines, paramLine(counter, p, style, nameWidth, typeWidth))
		}
	}

	if desc.Kind != interp.KindVariable && desc.Return.Present && style.DefaultReturnTag {
		lines = append(lines, style.Separator, returnLine(counter, desc.Return, style, nameWidth))
	}

	if desc.Kind == interp.KindVariable {
		lines = append(lines, style.Separator, varLine(counter, desc.VarType, style))
	}

	block := assemble(lines, style)
	zerolog.Ctx(ctx).Debug().Int("lines", len(lines)).Int("placeholders", counter.n).Msg("rendered block")
	return block
}

func descriptionText(name string) string {
	if name == "" {
		return "[description]"
	}
	return "[" + name + " description]"
}

func typeText(t string) string {
	if t == "" {
		return typePlaceholder
	}
	return t
}

// columnWidths computes the per-block name and type column widths. The type
// column never shrinks below 1 even with no declared types.
func columnWidths(params []interp.Parameter) (nameWidth, typeWidth int) {
	typeWidth = 1
	for _, p := range params {
		if w := width(escapeDollars(p.Name)); w > nameWidth {
			nameWidth = w
		}
		if w := width(typeText(p.Type)); w > typeWidth {
			typeWidth = w
		}
	}
	return nameWidth, typeWidth
}

func paramLine(c *placeholderCounter, p interp.Parameter, style config.Style, nameWidth, typeWidth int) string {
	tt := typeText(p.Type)
	// the bare name column is snippet text too, so it needs the same escaping
	// as the placeholder-wrapped fields
	name := escapeDollars(p.Name)
	var b strings.Builder
	b.WriteString(style.ParamTag)
	b.WriteString(spaces(style.ColumnSpacing))
	b.WriteString("{")
	b.WriteString(c.wrap(tt))
	b.WriteString("}")
	b.WriteString(spaces(baseFieldGap + style.ColumnSpacing + typeWidth - width(tt)))
	b.WriteString(name)
	b.WriteString(spaces(baseFieldGap + style.ColumnSpacing + nameWidth - width(name)))
	b.WriteString(c.wrap(descriptionText(p.Name)))
	return b.String()
}

func returnLine(c *placeholderCounter, ret interp.ReturnInfo, style config.Style, nameWidth int) string {
	tt := typeText(ret.Type)
	return style.ReturnTag + spaces(style.ColumnSpacing) +
		"{" + c.wrap(tt) + "}" +
		spaces(style.ColumnSpacing+returnDescriptionPad+nameWidth) +
		c.wrap("[return description]")
}

func varLine(c *placeholderCounter, varType string, style config.Style) string {
	return style.VarTag + spaces(style.ColumnSpacing) + "{" + c.wrap(typeText(varType)) + "}"
}

func assemble(lines []string, style config.Style) string {
	var b strings.Builder
	b.WriteString(style.CommentOpen)
	for _, line := range lines {
		b.WriteString(style.LineTerminator)
		b.WriteString(strings.TrimRight(style.Continuation+line, " \t"))
	}
	b.WriteString(style.LineTerminator)
	b.WriteString(style.CommentClose)
	return b.String()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
