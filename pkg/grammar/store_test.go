package grammar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin_javascript_registered", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)

		table, err := store.Get("javascript")
		require.NoError(t, err)
		require.Equal(t, "function", table.Keyword(CategoryFunction))
		require.Equal(t, []string{LanguageJavaScript}, store.Languages())
	})

	t.Run("get_is_case_insensitive", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)

		_, err = store.Get("JavaScript")
		require.NoError(t, err)
	})

	t.Run("unknown_language", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)

		_, err = store.Get("cobol")
		require.Error(t, err)
	})

	t.Run("register_rejects_invalid_table", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)

		table, err := NewTable("broken", Definition{})
		require.NoError(t, err)
		require.Error(t, store.Register(table))
	})
}

func TestDetectLanguage(t *testing.T) {
	ctx := context.Background()

	t.Run("by_filename", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)

		lang, err := store.DetectLanguage(ctx, "src/app.js")
		require.NoError(t, err)
		require.Equal(t, LanguageJavaScript, lang)
	})

	t.Run("override_beats_detection", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)
		require.NoError(t, store.AddOverride("**/*.gs", LanguageJavaScript))

		lang, err := store.DetectLanguage(ctx, "scripts/macro.gs")
		require.NoError(t, err)
		require.Equal(t, LanguageJavaScript, lang)
	})

	t.Run("invalid_override_pattern", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)
		require.Error(t, store.AddOverride("[", LanguageJavaScript))
	})

	t.Run("detected_language_without_grammar", func(t *testing.T) {
		store, err := NewStore(ctx)
		require.NoError(t, err)

		_, err = store.DetectLanguage(ctx, "main.go")
		require.Error(t, err)
	})
}
