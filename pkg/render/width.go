package render

import (
	"github.com/apparentlymart/go-textseg/v13/textseg"
)

// width measures display width in grapheme clusters so multi-byte names and
// types still line up by column.
func width(s string) int {
	n, err := textseg.TokenCount([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return len(s)
	}
	return n
}
