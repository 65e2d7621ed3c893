// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Conversion is the rendering of the input value in one target base.
type Conversion struct {
	// Base is the target radix (2-32).
	Base int `json:"base" yaml:"base"`

	// Digits is the plain digit string, most significant digit first.
	Digits string `json:"digits" yaml:"digits"`

	// Formatted is Digits after padding and separator grouping.
	Formatted string `json:"formatted" yaml:"formatted"`
}

// Report holds the result of one conversion run.
type Report struct {
	// Input is the number as given on the command line.
	Input string `json:"input" yaml:"input"`

	// InputBase is the radix Input was parsed in.
	InputBase int `json:"input_base" yaml:"input_base"`

	// Conversions holds one entry per target base, in request order.
	Conversions []Conversion `json:"conversions" yaml:"conversions"`
}

// HistoryEntry is a recorded conversion run.
type HistoryEntry struct {
	ID        int64     `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Report    `yaml:",inline"`
}
