// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a conversion request: it parses the input number,
// renders it in every target base, and writes the resulting report.
//
// A run is all-or-nothing. The first invalid input or target base aborts
// the run and no conversion is returned.
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/numconverter/internal/digits"
	"github.com/pdiddy/numconverter/internal/radix"
	"github.com/pdiddy/numconverter/pkg/types"
)

const defaultInputBase = 10

// Run converts cfg.Number into every target base in cfg.Targets, in order.
// Errors are always *Error.
func Run(cfg types.ConvertConfig) (*types.Report, error) {
	sep, group, err := separator(cfg.Separator)
	if err != nil {
		return nil, err
	}
	if cfg.Pad < 0 {
		return nil, &Error{Kind: KindConfig, Value: strconv.Itoa(cfg.Pad), Err: fmt.Errorf("pad width %d is negative", cfg.Pad)}
	}

	inputBase := cfg.InputBase
	if inputBase == 0 {
		inputBase = defaultInputBase
	}

	// Grouped output can be pasted back in as long as the separator cannot
	// be mistaken for a digit.
	number := cfg.Number
	if !unicode.IsLetter(sep) && !unicode.IsDigit(sep) {
		number = digits.Strip(number, sep)
	}

	v, err := radix.Parse(number, inputBase)
	if err != nil {
		return nil, &Error{Kind: KindBaseConversion, Value: cfg.Number, Base: inputBase, Err: err}
	}
	slog.Debug("parsed input", "number", cfg.Number, "base", inputBase, "value", v)

	bases, err := targetBases(cfg.Targets)
	if err != nil {
		return nil, err
	}

	report := &types.Report{
		Input:       cfg.Number,
		InputBase:   inputBase,
		Conversions: make([]types.Conversion, 0, len(bases)),
	}
	for _, base := range bases {
		s, err := radix.Format(v, base)
		if err != nil {
			return nil, &Error{Kind: KindInputBase, Value: strconv.Itoa(base), Err: err}
		}
		out := digits.Pad(s, cfg.Pad)
		if group {
			out = digits.Group(out, cfg.Separator.Length, sep)
		}
		report.Conversions = append(report.Conversions, types.Conversion{
			Base:      base,
			Digits:    s,
			Formatted: out,
		})
		slog.Debug("converted", "base", base, "digits", s)
	}
	return report, nil
}

// targetBases parses every token before any conversion happens. An empty
// list yields types.DefaultBases.
func targetBases(tokens []string) ([]int, error) {
	if len(tokens) == 0 {
		return append([]int(nil), types.DefaultBases...), nil
	}
	bases := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		base, err := radix.ParseBase(tok)
		switch {
		case errors.Is(err, radix.ErrInvalidBase):
			return nil, &Error{Kind: KindTargetBase, Value: tok, Err: err}
		case err != nil:
			return nil, &Error{Kind: KindInputBase, Value: tok, Err: err}
		}
		bases = append(bases, base)
	}
	return bases, nil
}

// separator validates the separator settings. group is false when grouping
// is disabled.
func separator(cfg types.SeparatorConfig) (sep rune, group bool, err error) {
	if utf8.RuneCountInString(cfg.Char) != 1 {
		return 0, false, &Error{
			Kind:  KindConfig,
			Value: cfg.Char,
			Err:   fmt.Errorf("separator %q must be exactly one character", cfg.Char),
		}
	}
	if cfg.Length < 0 {
		return 0, false, &Error{
			Kind:  KindConfig,
			Value: strconv.Itoa(cfg.Length),
			Err:   fmt.Errorf("separator length %d is negative", cfg.Length),
		}
	}
	sep, _ = utf8.DecodeRuneInString(cfg.Char)
	return sep, !cfg.Disabled && cfg.Length > 0, nil
}
