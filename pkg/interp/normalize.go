package interp

import (
	"regexp"
	"strings"
)

// The transforms in this file are pure: they derive a new string for the
// next scan and never touch fragments or descriptions.

// stripLeadingAssign removes a leading assignment token from a remainder, so
// "= function(x) {" re-scans as "function(x) {".
func stripLeadingAssign(s string) string {
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimPrefix(s, "=")
	return strings.TrimLeft(s, " \t")
}

// stripStatementTerminator drops a trailing statement terminator and the
// whitespace around it.
func stripStatementTerminator(s string) string {
	s = strings.TrimRight(s, " \t")
	s = strings.TrimSuffix(s, ";")
	return strings.TrimRight(s, " \t")
}

// compileFunctionExpression builds the pattern recognizing
// "name = <keyword> [innerName] (args…" assignments for a language's
// function keyword.
func compileFunctionExpression(keyword string) *regexp.Regexp {
	return regexp.MustCompile(
		`^([A-Za-z_$][A-Za-z0-9_$.]*)\s*=\s*(?:async\s+)?` +
			regexp.QuoteMeta(keyword) +
			`(?:\s+[A-Za-z_$][A-Za-z0-9_$]*)?\s*(\(.*)$`)
}

// compileArrowExpression builds the pattern recognizing
// "name = (args) => …" assignments.
func compileArrowExpression() *regexp.Regexp {
	return regexp.MustCompile(
		`^([A-Za-z_$][A-Za-z0-9_$.]*)\s*=\s*(?:async\s*)?\((.*?)\)\s*=>`)
}

// rewriteFunctionExpression swaps the assigned name and the function keyword
// of a matching expression, producing a plain declaration the next scan
// understands. The second result is false when code is not a function
// expression.
func rewriteFunctionExpression(code, keyword string, funcExpr, arrow *regexp.Regexp) (string, bool) {
	if m := funcExpr.FindStringSubmatch(code); m != nil {
		return keyword + " " + m[1] + " " + m[2], true
	}
	if m := arrow.FindStringSubmatch(code); m != nil {
		return keyword + " " + m[1] + " (" + m[2] + ") {", true
	}
	return "", false
}
