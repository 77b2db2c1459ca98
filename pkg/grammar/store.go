package grammar

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// PatternOverride maps a doublestar filename pattern to a language id,
// consulted before content-free detection.
type PatternOverride struct {
	Pattern  string
	Language string
}

// Store manages the registered grammar tables. Built-ins are registered at
// construction; user tables loaded from config files are merged over them.
// Reads are lock-free because tables never change after registration.
type Store struct {
	tables    map[string]*Table
	overrides []PatternOverride
}

// NewStore creates a store with the built-in grammars registered.
func NewStore(ctx context.Context) (*Store, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("creating grammar store")

	s := &Store{tables: make(map[string]*Table)}
	if err := s.Register(JavaScript()); err != nil {
		return nil, errors.Errorf("registering builtin grammars: %w", err)
	}
	return s, nil
}

// Register validates a table and adds it, replacing any previous table for
// the same language.
func (s *Store) Register(t *Table) error {
	if err := t.Validate(); err != nil {
		return errors.Errorf("invalid grammar for %s: %w", t.Language(), err)
	}
	s.tables[t.Language()] = t
	return nil
}

// Get retrieves a table by language id.
func (s *Store) Get(language string) (*Table, error) {
	t, ok := s.tables[strings.ToLower(language)]
	if !ok {
		return nil, errors.Errorf("grammar not found: %s", language)
	}
	return t, nil
}

// Languages returns the registered language ids, sorted.
func (s *Store) Languages() []string {
	langs := make([]string, 0, len(s.tables))
	for lang := range s.tables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// AddOverride registers a filename pattern that forces a language id during
// detection. The pattern must be a valid doublestar glob.
func (s *Store) AddOverride(pattern, language string) error {
	if !doublestar.ValidatePattern(pattern) {
		return errors.Errorf("invalid filename pattern %q", pattern)
	}
	s.overrides = append(s.overrides, PatternOverride{Pattern: pattern, Language: strings.ToLower(language)})
	return nil
}

// DetectLanguage resolves the language id for a file path: user pattern
// overrides win, then filename-based detection, and a language without a
// registered grammar is an error.
func (s *Store) DetectLanguage(ctx context.Context, path string) (string, error) {
	slashed := filepath.ToSlash(path)
	for _, o := range s.overrides {
		ok, err := doublestar.Match(o.Pattern, slashed)
		if err != nil {
			continue
		}
		if ok {
			zerolog.Ctx(ctx).Debug().Str("path", path).Str("language", o.Language).Msg("language from pattern override")
			return o.Language, nil
		}
	}

	detected := strings.ToLower(enry.GetLanguage(filepath.Base(path), nil))
	if detected == "" {
		return "", errors.Errorf("could not detect a language for %s", path)
	}
	if _, ok := s.tables[detected]; !ok {
		return "", errors.Errorf("no grammar registered for detected language %q (%s)", detected, path)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Str("language", detected).Msg("language detected")
	return detected, nil
}
