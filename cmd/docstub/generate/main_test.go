package generate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/docstub/cmd/docstub/generate"
)

func TestGenerateSingleLine(t *testing.T) {
	cmd := generate.NewGenerateCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--language", "javascript", "class Foo {"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "/**\n * ${1:[Foo description]}\n */\n", out.String())
}

func TestGenerateBatchFromStdin(t *testing.T) {
	cmd := generate.NewGenerateCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("class Foo {\n\nclass Bar {\n"))
	cmd.SetArgs([]string{"--language", "javascript"})

	require.NoError(t, cmd.Execute())
	require.Equal(t,
		"/**\n * ${1:[Foo description]}\n */\n"+
			"/**\n * ${1:[Bar description]}\n */\n",
		out.String())
}

func TestGenerateBatchAggregatesErrors(t *testing.T) {
	cmd := generate.NewGenerateCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("x = 1\ny = 2\n"))
	cmd.SetArgs([]string{"--language", "cobol"})

	err := cmd.Execute()
	require.Error(t, err)
	// every failing line is reported, not just the first
	require.Contains(t, err.Error(), "line 1")
	require.Contains(t, err.Error(), "line 2")
	require.Empty(t, out.String())
}

func TestGenerateUnknownLanguage(t *testing.T) {
	cmd := generate.NewGenerateCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--language", "cobol", "x = 1"})

	require.Error(t, cmd.Execute())
}

func TestGenerateNeedsLanguage(t *testing.T) {
	cmd := generate.NewGenerateCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "language")
}
