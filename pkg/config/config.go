// Package config carries the per-language formatting constants of the
// generated comment blocks. Styles are immutable value objects passed
// explicitly through the pipeline, never looked up from ambient state.
package config

// DefaultColumnSpacing is used when a style leaves the spacing unset.
const DefaultColumnSpacing = 2

// Style holds the formatting constants for one language's comment blocks.
// The marker strings are opaque to the render engine.
type Style struct {
	// CommentOpen starts the block, e.g. "/**".
	CommentOpen string `json:"comment_open" yaml:"comment_open" hcl:"comment_open,optional"`
	// CommentClose ends the block, e.g. " */".
	CommentClose string `json:"comment_close" yaml:"comment_close" hcl:"comment_close,optional"`
	// Continuation prefixes every inner line, e.g. " * ".
	Continuation string `json:"continuation" yaml:"continuation" hcl:"continuation,optional"`
	// Separator is the text of blank separator lines, normally empty.
	Separator string `json:"separator" yaml:"separator" hcl:"separator,optional"`
	// LineTerminator joins the lines of the block.
	LineTerminator string `json:"line_terminator" yaml:"line_terminator" hcl:"line_terminator,optional"`

	// ColumnSpacing is the configured gap between tag columns.
	ColumnSpacing int `json:"column_spacing" yaml:"column_spacing" hcl:"column_spacing,optional"`
	// DefaultReturnTag controls whether functions get a return tag.
	DefaultReturnTag bool `json:"default_return_tag" yaml:"default_return_tag" hcl:"default_return_tag,optional"`

	// Tag words of the generated lines.
	ParamTag  string `json:"param_tag" yaml:"param_tag" hcl:"param_tag,optional"`
	ReturnTag string `json:"return_tag" yaml:"return_tag" hcl:"return_tag,optional"`
	VarTag    string `json:"var_tag" yaml:"var_tag" hcl:"var_tag,optional"`
}

// Default returns the JSDoc-shaped style used when a language configures
// nothing of its own.
func Default() Style {
	return Style{
		CommentOpen:      "/**",
		CommentClose:     " */",
		Continuation:     " * ",
		Separator:        "",
		LineTerminator:   "\n",
		ColumnSpacing:    DefaultColumnSpacing,
		DefaultReturnTag: true,
		ParamTag:         "@param",
		ReturnTag:        "@return",
		VarTag:           "@var",
	}
}

// WithDefaults fills the holes an absent configuration leaves: spacing
// becomes a small positive integer and empty markers fall back to the JSDoc
// shape. The return-tag flag is left alone, unset means "do not show".
func (s Style) WithDefaults() Style {
	if s.ColumnSpacing <= 0 {
		s.ColumnSpacing = DefaultColumnSpacing
	}
	if s.CommentOpen == "" {
		s.CommentOpen = "/**"
	}
	if s.CommentClose == "" {
		s.CommentClose = " */"
	}
	if s.Continuation == "" {
		s.Continuation = " * "
	}
	if s.LineTerminator == "" {
		s.LineTerminator = "\n"
	}
	if s.ParamTag == "" {
		s.ParamTag = "@param"
	}
	if s.ReturnTag == "" {
		s.ReturnTag = "@return"
	}
	if s.VarTag == "" {
		s.VarTag = "@var"
	}
	return s
}
