// Package grammar holds the per-language keyword tables the token
// interpreters classify against.
package grammar

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// Category names one symbolic slot of a grammar table.
type Category string

const (
	// CategoryFunction is the single function-declaration keyword.
	CategoryFunction Category = "function"

	// CategoryClass is the single class-declaration keyword.
	CategoryClass Category = "class"

	// CategoryIdentifier is the identifier-character-class pattern. It is a
	// regular pattern, not a keyword, and never participates in keyword
	// equality matching.
	CategoryIdentifier Category = "identifier"

	// CategoryModifiers lists modifier keywords (accessors, static, ...).
	CategoryModifiers Category = "modifiers"

	// CategoryVariables lists variable-declaration keywords.
	CategoryVariables Category = "variables"

	// CategoryTypes lists the builtin type names of the language.
	CategoryTypes Category = "types"
)

// Definition is the serializable shape of a grammar table, shared by the
// built-in tables and the YAML/HCL config loader.
type Definition struct {
	Function   string   `json:"function" yaml:"function" hcl:"function,attr"`
	Class      string   `json:"class" yaml:"class" hcl:"class,attr"`
	Identifier string   `json:"identifier" yaml:"identifier" hcl:"identifier,attr"`
	Modifiers  []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty" hcl:"modifiers,optional"`
	Variables  []string `json:"variables,omitempty" yaml:"variables,omitempty" hcl:"variables,optional"`
	Types      []string `json:"types,omitempty" yaml:"types,omitempty" hcl:"types,optional"`
}

// Table is an immutable per-language grammar. Construct it once and share it
// freely: it is read-only after NewTable returns.
type Table struct {
	language   string
	single     map[Category]string
	lists      map[Category][]string
	identifier *regexp.Regexp
	identStart *regexp.Regexp
}

// NewTable builds a table from a definition. The identifier pattern must
// compile; everything else is validated separately.
func NewTable(language string, def Definition) (*Table, error) {
	if language == "" {
		return nil, errors.New("grammar table needs a language id")
	}

	pattern := def.Identifier
	if pattern == "" {
		pattern = `[A-Za-z_][A-Za-z0-9_]*`
	}
	identifier, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling identifier pattern for %s: %w", language, err)
	}
	identStart, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, errors.Errorf("anchoring identifier pattern for %s: %w", language, err)
	}

	return &Table{
		language: language,
		single: map[Category]string{
			CategoryFunction: def.Function,
			CategoryClass:    def.Class,
		},
		lists: map[Category][]string{
			CategoryModifiers: append([]string(nil), def.Modifiers...),
			CategoryVariables: append([]string(nil), def.Variables...),
			CategoryTypes:     append([]string(nil), def.Types...),
		},
		identifier: identifier,
		identStart: identStart,
	}, nil
}

func mustTable(language string, def Definition) *Table {
	t, err := NewTable(language, def)
	if err != nil {
		panic(err)
	}
	return t
}

// Language returns the language id the table was registered under.
func (t *Table) Language() string {
	return t.language
}

// Keyword returns the value of a single-valued category, or "" when the
// category is list-valued or unknown.
func (t *Table) Keyword(category Category) string {
	return t.single[category]
}

// Keywords returns a copy of a list-valued category.
func (t *Table) Keywords(category Category) []string {
	return append([]string(nil), t.lists[category]...)
}

// Matches reports whether token belongs to the given category. List-valued
// categories match by exact membership, single-valued ones by equality, and
// an empty or unknown category falls back to comparing token against every
// configured keyword. Pure and total: no input makes it fail.
func (t *Table) Matches(token string, category Category) bool {
	if list, ok := t.lists[category]; ok {
		for _, kw := range list {
			if token == kw {
				return true
			}
		}
		return false
	}
	if kw, ok := t.single[category]; ok {
		return kw != "" && token == kw
	}

	// ad-hoc lookup: is this token a keyword of any kind?
	for _, kw := range t.single {
		if kw != "" && token == kw {
			return true
		}
	}
	for _, list := range t.lists {
		for _, kw := range list {
			if token == kw {
				return true
			}
		}
	}
	return false
}

// StartsIdentifier reports whether s begins with a character run of the
// language's identifier class.
func (t *Table) StartsIdentifier(s string) bool {
	return t.identStart.MatchString(s)
}

// Identifier exposes the compiled identifier-character-class pattern.
func (t *Table) Identifier() *regexp.Regexp {
	return t.identifier
}
