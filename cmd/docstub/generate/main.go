package generate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/docstub/pkg/config"
	"github.com/walteh/docstub/pkg/docstub"
	"github.com/walteh/docstub/pkg/logging"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	language   string
	file       string
	configPath string
	spacing    int
	returnTag  bool
	debug      bool
}

func NewGenerateCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "generate [line]",
		Short: "generate a documentation stub for a line of code",
		Long: `Generate a documentation comment stub for the given line of source code.
With no line argument, lines are read from stdin and a stub is emitted for
each one.`,
		Args: cobra.MaximumNArgs(1),
	}

	cmd.Flags().StringVar(&me.language, "language", "", "language of the source line")
	cmd.Flags().StringVar(&me.file, "file", "", "path of the file the line belongs to, used to detect the language")
	cmd.Flags().StringVar(&me.configPath, "config", "", "path of a docstub config file (yaml or hcl)")
	cmd.Flags().IntVar(&me.spacing, "spacing", 0, "override the column spacing of the generated block")
	cmd.Flags().BoolVar(&me.returnTag, "return-tag", true, "emit a return tag for functions")
	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), cmd, args)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, cmd *cobra.Command, args []string) error {
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

	req := docstub.Request{Language: me.language}

	if me.file != "" {
		if req.Language == "" {
			lang, err := gen.DetectLanguage(ctx, me.file)
			if err != nil {
				return errors.Errorf("detecting language: %w", err)
			}
			req.Language = lang
		}
		req.LineTerminator = config.TerminatorForFile(ctx, me.file)
	}

	if req.Language == "" {
		return errors.New("no language given, use --language or --file")
	}

	if cmd.Flags().Changed("spacing") {
		req.ColumnSpacing = &me.spacing
	}
	if cmd.Flags().Changed("return-tag") {
		req.ReturnTag = &me.returnTag
	}

	if len(args) == 1 {
		block, err := gen.Generate(ctx, docstub.Request{
			Language:       req.Language,
			Line:           args[0],
			ColumnSpacing:  req.ColumnSpacing,
			ReturnTag:      req.ReturnTag,
			LineTerminator: req.LineTerminator,
		})
		if err != nil {
			return errors.Errorf("generating stub: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), block)
		return nil
	}

	return me.runBatch(ctx, gen, req, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runBatch generates one stub per input line. A failing line does not stop
// the batch; all failures are reported together at the end.
func (me *Handler) runBatch(ctx context.Context, gen *docstub.Generator, req docstub.Request, in io.Reader, out io.Writer) error {
	var result *multierror.Error

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		block, err := gen.Generate(ctx, docstub.Request{
			Language:       req.Language,
			Line:           line,
			ColumnSpacing:  req.ColumnSpacing,
			ReturnTag:      req.ReturnTag,
			LineTerminator: req.LineTerminator,
		})
		if err != nil {
			result = multierror.Append(result, errors.Errorf("line %d: %w", lineno, err))
			continue
		}
		fmt.Fprintln(out, block)
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, errors.Errorf("reading input: %w", err))
	}

	return result.ErrorOrNil()
}
