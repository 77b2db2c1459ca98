// Package docstub generates documentation-comment stubs for the line of
// source code following the activation point. It wires the scanner, the
// per-language interpreters and the render engine behind one entry point.
package docstub

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/docstub/pkg/config"
	"github.com/walteh/docstub/pkg/grammar"
	"github.com/walteh/docstub/pkg/interp"
	"github.com/walteh/docstub/pkg/render"
	"gitlab.com/tozd/go/errors"
)

// Generator is the long-lived pipeline instance. Everything it holds is
// immutable after construction, so one Generator serves concurrent callers.
type Generator struct {
	id      string
	store   *grammar.Store
	interps *interp.Registry
	styles  map[string]config.Style
	engine  *render.Engine
}

// New creates a generator with the built-in languages registered.
func New(ctx context.Context) (*Generator, error) {
	g := &Generator{
		id:      uuid.NewString(),
		interps: interp.NewRegistry(),
		styles:  make(map[string]config.Style),
		engine:  render.NewEngine(),
	}

	store, err := grammar.NewStore(ctx)
	if err != nil {
		return nil, errors.Errorf("creating grammar store: %w", err)
	}
	g.store = store

	jsTable, err := store.Get(grammar.LanguageJavaScript)
	if err != nil {
		return nil, errors.Errorf("looking up builtin grammar: %w", err)
	}
	js, err := interp.NewJavaScript(jsTable)
	if err != nil {
		return nil, errors.Errorf("building javascript interpreter: %w", err)
	}
	g.interps.Register(grammar.LanguageJavaScript, js)
	g.styles[grammar.LanguageJavaScript] = config.Default()

	zerolog.Ctx(ctx).Debug().Str("generator_id", g.id).Msg("created docstub generator")
	return g, nil
}

// Request describes one generation call: the text of the line following the
// activation point plus optional per-call overrides of the resolved style.
type Request struct {
	Language string
	Line     string

	// optional overrides, nil/empty means "use the language style"
	ColumnSpacing  *int
	ReturnTag      *bool
	LineTerminator string
}

// Generate runs scan, interpretation and rendering for one line and returns
// the comment block. Malformed input still yields a best-effort block; only
// an unknown language is an error.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	language := strings.ToLower(req.Language)
	ip, ok := g.interps.Lookup(language)
	if !ok {
		return "", errors.Errorf("no interpreter registered for language %q", req.Language)
	}

	style, ok := g.styles[language]
	if !ok {
		style = config.Default()
	}
	if req.ColumnSpacing != nil {
		style.ColumnSpacing = *req.ColumnSpacing
	}
	if req.ReturnTag != nil {
		style.DefaultReturnTag = *req.ReturnTag
	}
	if req.LineTerminator != "" {
		style.LineTerminator = req.LineTerminator
	}

	line := strings.TrimSpace(req.Line)
	zerolog.Ctx(ctx).Debug().Str("language", language).Str("line", line).Msg("generating stub")

	desc := &interp.Description{}
	ip.Interpret(ctx, line, "", desc)

	return g.engine.Render(ctx, desc, style), nil
}

// ApplyConfig merges a loaded config file into the generator: grammar
// tables, style overrides and filename patterns.
func (g *Generator) ApplyConfig(ctx context.Context, cfg *config.File) error {
	for _, lang := range cfg.Languages {
		if lang.Name == "" {
			return errors.New("config language needs a name")
		}
		name := strings.ToLower(lang.Name)

		if lang.Grammar != nil {
			table, err := grammar.NewTable(name, *lang.Grammar)
			if err != nil {
				return errors.Errorf("building grammar for %s: %w", name, err)
			}
			if err := g.store.Register(table); err != nil {
				return errors.Errorf("registering grammar for %s: %w", name, err)
			}
			// user languages reuse the reference interpretation policy
			// against their own keyword table
			ip, err := interp.NewJavaScript(table)
			if err != nil {
				return errors.Errorf("building interpreter for %s: %w", name, err)
			}
			g.interps.Register(name, ip)
		}

		if lang.Style != nil {
			g.styles[name] = lang.Style.WithDefaults()
		}

		for _, pattern := range lang.Patterns {
			if err := g.store.AddOverride(pattern, name); err != nil {
				return errors.Errorf("adding pattern for %s: %w", name, err)
			}
		}

		zerolog.Ctx(ctx).Debug().Str("language", name).Msg("applied language config")
	}
	return nil
}

// DetectLanguage resolves a language id for a file path.
func (g *Generator) DetectLanguage(ctx context.Context, path string) (string, error) {
	return g.store.DetectLanguage(ctx, path)
}

// Languages returns the registered language ids, sorted.
func (g *Generator) Languages() []string {
	return g.store.Languages()
}

// Grammar exposes the table registered for a language.
func (g *Generator) Grammar(language string) (*grammar.Table, error) {
	return g.store.Get(language)
}
