// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/numconverter/pkg/types"
)

// ParseFormat validates an output format name. The empty string selects
// text.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(s)); f {
	case "":
		return types.OutputText, nil
	case types.OutputText, types.OutputJSON, types.OutputYAML:
		return f, nil
	default:
		return "", &Error{Kind: KindConfig, Value: s, Err: fmt.Errorf("unknown output format %q: must be text, json, or yaml", s)}
	}
}

// Write renders r to w. Text output is one line per conversion,
// "Base NN: <digits>", with the label dropped in bare mode. Silent mode
// writes nothing.
func Write(w io.Writer, r *types.Report, cfg types.OutputConfig) error {
	if cfg.Silent {
		return nil
	}

	switch cfg.Format {
	case types.OutputText, "":
		for _, c := range r.Conversions {
			if !cfg.Bare {
				if _, err := fmt.Fprintf(w, "Base %02d: ", c.Base); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, c.Formatted); err != nil {
				return err
			}
		}
		return nil
	case types.OutputJSON:
		return EncodeJSON(w, r)
	case types.OutputYAML:
		return EncodeYAML(w, r)
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

// EncodeJSON writes v as indented JSON.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes v as YAML.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
