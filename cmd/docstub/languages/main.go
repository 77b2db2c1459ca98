package languages

import (
	"context"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/docstub/pkg/config"
	"github.com/walteh/docstub/pkg/docstub"
	"github.com/walteh/docstub/pkg/grammar"
	"github.com/walteh/docstub/pkg/logging"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	configPath string
	debug      bool
}

func NewLanguagesCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "list the registered languages and their keywords",
	}

	cmd.Flags().StringVar(&me.configPath, "config", "", "path of a docstub config file (yaml or hcl)")
	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), cmd)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, cmd *cobra.Command) error {
	logger := logging.NewLogger(os.Stderr, me.debug)
	ctx = logger.WithContext(ctx)

	gen, err := docstub.New(ctx)
	if err != nil {
		return errors.Errorf("creating generator: %w", err)
	}

	if me.configPath != "" {
		cfg, err := config.Load(ctx, afero.NewOsFs(), me.configPath)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		if err := gen.ApplyConfig(ctx, cfg); err != nil {
			return errors.Errorf("applying config: %w", err)
		}
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"language", "function", "class", "modifiers", "variables"})

	for _, lang := range gen.Languages() {
		g, err := gen.Grammar(lang)
		if err != nil {
			return errors.Errorf("looking up grammar for %s: %w", lang, err)
		}
		tw.AppendRow(table.Row{
			lang,
			g.Keyword(grammar.CategoryFunction),
			g.Keyword(grammar.CategoryClass),
			strings.Join(g.Keywords(grammar.CategoryModifiers), ", "),
			strings.Join(g.Keywords(grammar.CategoryVariables), ", "),
		})
	}

	tw.Render()
	return nil
}
