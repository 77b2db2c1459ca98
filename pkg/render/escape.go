package render

import (
	"fmt"
	"strings"
)

// escapeDollars protects literal '$' from the tab-stop syntax. A dollar that
// is already escaped stays as it is, so applying the transform twice changes
// nothing.
func escapeDollars(s string) string {
	if !strings.ContainsRune(s, '$') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	escaped := false
	for _, r := range s {
		if r == '$' && !escaped {
			b.WriteByte('\\')
		}
		escaped = r == '\\' && !escaped
		b.WriteRune(r)
	}
	return b.String()
}

// placeholderCounter numbers the interactive tab stops of one block,
// starting at 1 in append order.
type placeholderCounter struct {
	n int
}

// wrap turns text into the next numbered tab stop, escaping it first.
func (c *placeholderCounter) wrap(text string) string {
	c.n++
	return fmt.Sprintf("${%d:%s}", c.n, escapeDollars(text))
}
