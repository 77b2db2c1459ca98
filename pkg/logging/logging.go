// Package logging builds the zerolog loggers the docstub commands install on
// their context. Output goes to stderr so generated blocks on stdout stay
// machine-readable.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to w. With debug enabled the
// level drops to debug and caller locations are included.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:          w,
		TimeFormat:   "15:04:05.000",
		FormatCaller: consoleCaller,
	}

	builder := zerolog.New(out).Level(level).With().
		Str("component", "docstub").
		Timestamp()
	if debug {
		builder = builder.Caller()
	}
	return builder.Logger()
}

func consoleCaller(i interface{}) string {
	caller, ok := i.(string)
	if !ok || caller == "" {
		return ""
	}
	path, line, found := strings.Cut(caller, ":")
	if !found {
		return caller
	}
	return FormatCaller(path, line, true)
}

// FormatCaller renders a file:line caller reference, optionally colorized for
// terminal output.
func FormatCaller(path, line string, colorize bool) string {
	file := fileNameOfPath(path)
	if colorize {
		file = color.New(color.Bold).Sprint(file)
		line = color.New(color.FgHiRed, color.Bold).Sprint(line)
		sep := color.New(color.Faint).Sprint(":")
		return fmt.Sprintf("%s%s%s", file, sep, line)
	}
	return fmt.Sprintf("%s:%s", file, line)
}

func fileNameOfPath(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
