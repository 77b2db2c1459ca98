package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/walteh/docstub/pkg/logging"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, false)
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	logger.Debug().Msg("hidden")
	require.Empty(t, buf.String())

	logger = logging.NewLogger(&buf, true)
	require.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	logger.Debug().Msg("visible")
	require.Contains(t, buf.String(), "visible")
}

func TestFormatCallerPlain(t *testing.T) {
	got := logging.FormatCaller("pkg/render/render.go", "41", false)
	require.Equal(t, "render.go:41", got)
}
