package config

import (
	"bytes"
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/docstub/pkg/grammar"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration: extra languages, style overrides and
// filename-pattern overrides, in YAML or HCL.
type File struct {
	Languages []*LanguageConfig `json:"languages" yaml:"languages" hcl:"language,block"`
}

// LanguageConfig configures one language: its grammar table, its comment
// style, and the filename patterns that select it.
type LanguageConfig struct {
	Name     string              `json:"name" yaml:"name" hcl:"name,label"`
	Grammar  *grammar.Definition `json:"grammar,omitempty" yaml:"grammar,omitempty" hcl:"grammar,block"`
	Style    *Style              `json:"style,omitempty" yaml:"style,omitempty" hcl:"style,block"`
	Patterns []string            `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"patterns,optional"`
}

// Load reads a config file from fs. YAML is tried for .yaml/.yml paths,
// anything else parses as HCL.
func Load(ctx context.Context, fs afero.Fs, path string) (*File, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading config file")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		var cfg File
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
		return &cfg, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	var cfg File
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return &cfg, nil
}
