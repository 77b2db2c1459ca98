// Package scanner breaks a single line of source text into typed lexical
// fragments that the per-language interpreters classify.
package scanner

// Kind classifies a scanned fragment.
type Kind uint32

const (
	// KindText is free text: keywords, bare identifiers, punctuation runs.
	KindText Kind = iota + 1

	// KindCode is an identifier that opens an assignment (`name = ...`).
	KindCode

	// KindParamStart marks the opening of the first parameter list.
	KindParamStart

	// KindAttribute is one parameter inside the list, carrying its name and
	// raw default value.
	KindAttribute

	// KindEndLine is the synthetic marker appended after the last fragment.
	KindEndLine
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCode:
		return "code"
	case KindParamStart:
		return "param-start"
	case KindAttribute:
		return "attribute"
	case KindEndLine:
		return "end-of-line"
	default:
		return "unknown"
	}
}

// Fragment is one lexical unit of a scanned source line.
type Fragment struct {
	Kind  Kind
	Value string

	// Name is set for attribute fragments only: the parameter name the raw
	// Value belongs to.
	Name string

	// Column is the 0-based byte offset of the fragment in the source line.
	Column int

	// SequenceIndex is the fragment's position in the scan, recorded on the
	// copy returned by First. The scanned slice itself is never mutated.
	SequenceIndex int
}

// End returns the column just past the fragment's raw text.
func (f Fragment) End() int {
	return f.Column + len(f.Value)
}

// First locates the first fragment of the given kind. The match is returned
// by value with its SequenceIndex recorded; the input slice is left
// untouched. The third result is false when no fragment of that kind exists.
func First(frags []Fragment, kind Kind) (Fragment, int, bool) {
	for i, f := range frags {
		if f.Kind == kind {
			f.SequenceIndex = i
			return f, i, true
		}
	}
	return Fragment{}, -1, false
}
