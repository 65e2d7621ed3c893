// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "fmt"

// Kind classifies a failed conversion run. Each kind maps to its own
// process exit status.
type Kind int

const (
	// KindBaseConversion: the input number could not be parsed in the
	// input base.
	KindBaseConversion Kind = iota + 1
	// KindTargetBase: a target base token is not a base-10 integer.
	KindTargetBase
	// KindInputBase: a target base is outside the supported range.
	KindInputBase
	// KindConfig: the run configuration is invalid.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindBaseConversion:
		return "base conversion error"
	case KindTargetBase:
		return "target base error"
	case KindInputBase:
		return "input base error"
	case KindConfig:
		return "configuration error"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// ExitCode returns the process exit status for k.
func (k Kind) ExitCode() int {
	switch k {
	case KindBaseConversion:
		return 2
	case KindTargetBase:
		return 3
	case KindInputBase:
		return 4
	case KindConfig:
		return 5
	default:
		return 1
	}
}

// Error reports why a conversion run was aborted.
type Error struct {
	Kind Kind

	// Value is the offending input: the number, the base token, or the
	// configuration value.
	Value string

	// Base is the input base for KindBaseConversion.
	Base int

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBaseConversion:
		return fmt.Sprintf("%s: could not convert %q from base %d: %v", e.Kind, e.Value, e.Base, e.Err)
	case KindTargetBase:
		return fmt.Sprintf("%s: %q: provide target bases in base 10", e.Kind, e.Value)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for e.
func (e *Error) ExitCode() int {
	return e.Kind.ExitCode()
}
