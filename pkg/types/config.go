// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultBases are the target bases used when none are requested.
var DefaultBases = []int{2, 8, 10, 16}

// SeparatorConfig controls digit grouping in formatted output.
type SeparatorConfig struct {
	// Length is the number of digits per group (default 4). Zero disables
	// grouping.
	Length int `json:"length" yaml:"length"`

	// Char is the separator inserted between groups (default "_"). It must
	// be a single character.
	Char string `json:"char" yaml:"char"`

	// Disabled turns grouping off regardless of Length.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// ConvertConfig holds the inputs of a conversion run.
type ConvertConfig struct {
	// Number is the value to convert, written in InputBase.
	Number string `json:"number" yaml:"number"`

	// InputBase is the radix Number is written in (default 10).
	InputBase int `json:"input_base" yaml:"input_base"`

	// Targets are the target radix tokens, written in base 10. Empty means
	// DefaultBases.
	Targets []string `json:"targets" yaml:"targets"`

	// Pad is the minimum digit count; shorter results are left-padded with
	// zeros before grouping. Zero disables padding.
	Pad int `json:"pad" yaml:"pad"`

	Separator SeparatorConfig `json:"separator" yaml:"separator"`
}

// OutputFormat selects how a Report is written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Format selects text, json, or yaml output (default text).
	Format OutputFormat `json:"format" yaml:"format"`

	// Silent suppresses all output.
	Silent bool `json:"silent" yaml:"silent"`

	// Bare omits the "Base NN: " label in text output.
	Bare bool `json:"bare" yaml:"bare"`
}

// HistoryConfig holds settings for the conversion log.
type HistoryConfig struct {
	// Enabled records every successful run.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding history.db.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default number of entries listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all settings for one invocation.
type Config struct {
	Convert   ConvertConfig `json:"convert" yaml:"convert"`
	Output    OutputConfig  `json:"output" yaml:"output"`
	History   HistoryConfig `json:"history" yaml:"history"`
	Verbosity int           `json:"verbosity" yaml:"verbosity"`
}
