package grammar

import (
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// Validate checks a table for the problems that would make interpretation
// misbehave silently. All findings are reported together.
func (t *Table) Validate() error {
	var errs error

	if t.single[CategoryFunction] == "" {
		errs = multierr.Append(errs, errors.Errorf("%s: function keyword is empty", t.language))
	}
	if t.single[CategoryClass] == "" {
		errs = multierr.Append(errs, errors.Errorf("%s: class keyword is empty", t.language))
	}
	for category, list := range t.lists {
		for i, kw := range list {
			if kw == "" {
				errs = multierr.Append(errs, errors.Errorf("%s: %s[%d] is empty", t.language, category, i))
			}
		}
	}

	// a keyword that appears in two categories makes rule ordering racy
	seen := map[string]Category{
		t.single[CategoryFunction]: CategoryFunction,
		t.single[CategoryClass]:    CategoryClass,
	}
	for _, category := range []Category{CategoryModifiers, CategoryVariables} {
		for _, kw := range t.lists[category] {
			if kw == "" {
				continue
			}
			if prev, ok := seen[kw]; ok {
				errs = multierr.Append(errs, errors.Errorf("%s: keyword %q is in both %s and %s", t.language, kw, prev, category))
				continue
			}
			seen[kw] = category
		}
	}

	return errs
}
