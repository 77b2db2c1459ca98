package config

import (
	"context"

	"github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/rs/zerolog"
)

// TerminatorForFile resolves the line terminator for a file from the
// .editorconfig definitions that apply to it. Files without an end_of_line
// setting, and lookup failures, fall back to "\n".
func TerminatorForFile(ctx context.Context, path string) string {
	def, err := editorconfig.GetDefinitionForFilename(path)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("no editorconfig definition")
		return "\n"
	}
	switch def.EndOfLine {
	case "crlf":
		return "\r\n"
	case "cr":
		return "\r"
	default:
		return "\n"
	}
}
