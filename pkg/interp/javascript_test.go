package interp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/docstub/pkg/grammar"
)

func newJS(t *testing.T) *JavaScript {
	t.Helper()
	p, err := NewJavaScript(grammar.JavaScript())
	require.NoError(t, err)
	return p
}

func interpret(t *testing.T, code string) *Description {
	t.Helper()
	desc := &Description{}
	newJS(t).Interpret(context.Background(), code, "", desc)
	return desc
}

func TestInterpretFunctionDeclaration(t *testing.T) {
	desc := interpret(t, "function add(a, b) {")

	require.Equal(t, KindFunction, desc.Kind)
	require.Equal(t, "add", desc.Name)
	require.True(t, desc.Return.Present)
	require.Equal(t, []Parameter{{Name: "a"}, {Name: "b"}}, desc.Params)
}

func TestInterpretClassDeclaration(t *testing.T) {
	desc := interpret(t, "class Foo {")

	require.Equal(t, KindClass, desc.Kind)
	require.Equal(t, "Foo", desc.Name)
	require.False(t, desc.Return.Present)
	require.Empty(t, desc.Params)
}

func TestInterpretVariableDeclaration(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedName string
		expectedType string
	}{
		{name: "const_number", input: "const x = 5;", expectedName: "x", expectedType: "Number"},
		{name: "let_string", input: `let greeting = "hi";`, expectedName: "greeting", expectedType: "String"},
		{name: "var_bool", input: "var ready = false;", expectedName: "ready", expectedType: "Boolean"},
		{name: "bare_assignment", input: "count = 10", expectedName: "count", expectedType: "Number"},
		{name: "array_literal", input: "const xs = [1, 2];", expectedName: "xs", expectedType: "Array"},
		{name: "object_literal", input: "const o = {};", expectedName: "o", expectedType: "Object"},
		{name: "new_expression", input: "const when = new Date();", expectedName: "when", expectedType: "Date"},
		{name: "no_initializer_shape", input: "let z = veryMysterious()", expectedName: "z", expectedType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := interpret(t, tt.input)
			require.Equal(t, KindVariable, desc.Kind)
			require.Equal(t, tt.expectedName, desc.Name)
			require.Equal(t, tt.expectedType, desc.VarType)
			require.Empty(t, desc.Params, "variables never carry parameters")
			require.False(t, desc.Return.Present)
		})
	}
}

func TestInterpretPrototypeMethod(t *testing.T) {
	desc := interpret(t, "Foo.prototype.bar = function(x) {")

	require.Equal(t, KindFunction, desc.Kind)
	require.Equal(t, "bar", desc.Name)
	require.True(t, desc.Return.Present)
	require.Equal(t, []Parameter{{Name: "x"}}, desc.Params)
}

func TestPrototypePatternFollowsIdentifierClass(t *testing.T) {
	// a table with a narrower identifier class only recognizes its own
	// identifiers in prototype assignments
	table, err := grammar.NewTable("lowerscript", grammar.Definition{
		Function:   "function",
		Class:      "class",
		Identifier: `[a-z]+`,
	})
	require.NoError(t, err)
	p, err := NewJavaScript(table)
	require.NoError(t, err)

	desc := &Description{}
	p.Interpret(context.Background(), "foo.prototype.bar = function(x) {", "", desc)
	require.Equal(t, KindFunction, desc.Kind)
	require.Equal(t, "bar", desc.Name)

	desc = &Description{}
	p.Interpret(context.Background(), "Foo.prototype.Bar = function(x) {", "", desc)
	require.NotEqual(t, "Bar", desc.Name)
}

func TestInterpretFunctionExpressions(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedName   string
		expectedParams []string
	}{
		{name: "var_function", input: "var f = function(a) {", expectedName: "f", expectedParams: []string{"a"}},
		{name: "const_named_function", input: "const g = function inner(a, b) {", expectedName: "g", expectedParams: []string{"a", "b"}},
		{name: "const_arrow", input: "const h = (x, y) => x + y", expectedName: "h", expectedParams: []string{"x", "y"}},
		{name: "let_async_arrow", input: "let load = async (url) => {", expectedName: "load", expectedParams: []string{"url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := interpret(t, tt.input)
			require.Equal(t, KindFunction, desc.Kind, "input %q", tt.input)
			require.Equal(t, tt.expectedName, desc.Name)
			require.True(t, desc.Return.Present)
			var names []string
			for _, p := range desc.Params {
				names = append(names, p.Name)
			}
			require.Equal(t, tt.expectedParams, names)
		})
	}
}

func TestInterpretModifiers(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedName string
	}{
		{name: "getter", input: "get name() {", expectedName: "name"},
		{name: "static_method", input: "static create(opts) {", expectedName: "create"},
		{name: "stacked_modifiers", input: "static async fetchAll(filter) {", expectedName: "fetchAll"},
		{name: "all_modifiers_falls_back_to_empty", input: "static get set", expectedName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := interpret(t, tt.input)
			require.Equal(t, KindFunction, desc.Kind)
			require.Equal(t, tt.expectedName, desc.Name)
		})
	}
}

func TestInterpretShorthandMethod(t *testing.T) {
	desc := interpret(t, "render(props) {")

	require.Equal(t, KindFunction, desc.Kind)
	require.Equal(t, "render", desc.Name)
	require.Equal(t, []Parameter{{Name: "props"}}, desc.Params)
}

func TestInterpretDefaultValues(t *testing.T) {
	desc := interpret(t, `function greet(name = "world", times = 2) {`)

	require.Equal(t, []Parameter{
		{Name: "name", Value: `"world"`, Type: "String"},
		{Name: "times", Value: "2", Type: "Number"},
	}, desc.Params)
}

func TestInterpretMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"!!!",
		"((((",
		"function",
		"function (",
		"class",
		"= = =",
		strings.Repeat("static ", 50),
	}

	for _, input := range inputs {
		desc := &Description{}
		require.NotPanics(t, func() {
			newJS(t).Interpret(context.Background(), input, "", desc)
		}, "input %q", input)
	}
}

func TestInterpretRecursionIsBounded(t *testing.T) {
	// every pass re-enters through the variable-declaration rule
	line := strings.Repeat("var ", 100) + "x = 1"
	desc := &Description{}
	newJS(t).Interpret(context.Background(), line, "", desc)
	// the depth cap halts before the tail is reached; the point is that it
	// halts at all, with whatever accumulated
	require.NotNil(t, desc)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	t.Run("unregistered_falls_back_to_noop", func(t *testing.T) {
		ip, ok := r.Lookup("javascript")
		require.False(t, ok)

		desc := &Description{}
		ip.Interpret(context.Background(), "function add(a) {", "", desc)
		require.Equal(t, Description{}, *desc, "the base interpreter returns an empty description unconditionally")
	})

	t.Run("registered_lookup", func(t *testing.T) {
		r.Register("JavaScript", newJS(t))
		ip, ok := r.Lookup("javascript")
		require.True(t, ok)
		require.IsType(t, &JavaScript{}, ip)
	})
}
