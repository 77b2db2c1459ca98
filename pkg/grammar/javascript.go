package grammar

// LanguageJavaScript is the id the built-in JavaScript grammar registers
// under.
const LanguageJavaScript = "javascript"

// JavaScript returns the built-in JavaScript grammar table.
func JavaScript() *Table {
	return mustTable(LanguageJavaScript, Definition{
		Function:   "function",
		Class:      "class",
		Identifier: `[A-Za-z_$][A-Za-z0-9_$]*`,
		Modifiers:  []string{"get", "set", "static", "async"},
		Variables:  []string{"var", "let", "const"},
		Types: []string{
			"String", "Number", "Boolean", "Object", "Array",
			"Function", "RegExp", "Date", "Promise", "Symbol",
		},
	})
}
