// Package interp recovers a semantic description (entity kind, name,
// parameters, return) from a scanned line of source code. The generic parts
// live here; each language plugs in its own TokenInterpreter.
package interp

import (
	"context"
	"strings"
)

// EntityKind is the coarse classification of the scanned code.
type EntityKind uint32

const (
	KindUnknown EntityKind = iota
	KindFunction
	KindClass
	KindVariable
)

func (k EntityKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Parameter is one declared parameter, in source order.
type Parameter struct {
	// Name is the declared parameter name, never empty.
	Name string
	// Value is the raw default/initializer text, possibly empty.
	Value string
	// Type is the declared or guessed type, possibly empty.
	Type string
}

// ReturnInfo records whether the entity produces a value and, when known,
// its type.
type ReturnInfo struct {
	Present bool
	Type    string
}

// Description accumulates the interpretation of one source line. It starts
// as the zero value, is filled in incrementally, and is discarded after
// rendering.
type Description struct {
	Name    string
	Kind    EntityKind
	VarType string
	Return  ReturnInfo
	Params  []Parameter
}

// TokenInterpreter classifies a line of source code into a description.
// Implementations must never fail: unrecognized input leaves the description
// as accumulated so far.
type TokenInterpreter interface {
	// Interpret inspects code and updates desc. hint carries the keyword a
	// previous pass matched, telling this pass the next identifier is the
	// entity name.
	Interpret(ctx context.Context, code, hint string, desc *Description)
}

// Noop is the base interpreter: it leaves every description untouched.
// Languages without a real interpreter fall back to it.
type Noop struct{}

func (Noop) Interpret(ctx context.Context, code, hint string, desc *Description) {}

// Registry maps language ids to their interpreters.
type Registry struct {
	byLanguage map[string]TokenInterpreter
}

func NewRegistry() *Registry {
	return &Registry{byLanguage: make(map[string]TokenInterpreter)}
}

// Register adds or replaces the interpreter for a language id.
func (r *Registry) Register(language string, ip TokenInterpreter) {
	r.byLanguage[strings.ToLower(language)] = ip
}

// Lookup returns the interpreter for a language, falling back to Noop when
// none is registered. The second result reports whether a real interpreter
// was found.
func (r *Registry) Lookup(language string) (TokenInterpreter, bool) {
	ip, ok := r.byLanguage[strings.ToLower(language)]
	if !ok {
		return Noop{}, false
	}
	return ip, true
}

// Languages returns the ids with a registered interpreter.
func (r *Registry) Languages() []string {
	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	return langs
}
