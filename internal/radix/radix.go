// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package radix converts 128-bit unsigned integers to and from digit strings
// in radices 2 through 32.
//
// Digits use the alphabet 0-9 followed by A-V. Parsing accepts either
// letter case; formatting always emits upper case.
package radix

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// MinBase is the smallest supported radix.
	MinBase = 2
	// MaxBase is the largest supported radix. The alphabet stops at V.
	MaxBase = 32

	digits = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

var (
	// ErrRadixOutOfRange is returned for a radix outside [MinBase, MaxBase].
	ErrRadixOutOfRange = errors.New("radix out of range")

	// ErrInvalidBase is returned when a radix token is not a base-10 integer.
	ErrInvalidBase = errors.New("radix is not a base 10 integer")

	// ErrInvalidDigit is returned when input contains a character that is
	// not a digit of the input radix.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrEmpty is returned when there are no digits to parse.
	ErrEmpty = errors.New("no digits")

	// ErrValueOverflow is returned when a parsed value exceeds 2^128 - 1.
	ErrValueOverflow = errors.New("value does not fit in 128 bits")
)

var digitVals [256]int8

func init() {
	for i := range digitVals {
		digitVals[i] = -1
	}
	for i := 0; i < len(digits); i++ {
		digitVals[digits[i]] = int8(i)
		if c := digits[i]; c >= 'A' && c <= 'Z' {
			digitVals[c+'a'-'A'] = int8(i)
		}
	}
}

// CheckBase returns ErrRadixOutOfRange, wrapped with the offending value,
// when base is not in [MinBase, MaxBase].
func CheckBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: base %d must be between %d and %d", ErrRadixOutOfRange, base, MinBase, MaxBase)
	}
	return nil
}

// Format returns the base-base representation of v, most significant digit
// first. Zero formats as "0".
func Format(v Value, base int) (string, error) {
	if err := CheckBase(base); err != nil {
		return "", err
	}
	if v.IsZero() {
		return "0", nil
	}

	// 128 binary digits is the longest possible result.
	var buf [128]byte
	i := len(buf)
	for !v.IsZero() {
		var d uint64
		v, d = v.quoRem(uint64(base))
		i--
		buf[i] = digits[d]
	}
	return string(buf[i:]), nil
}

// Parse interprets s as an unsigned integer in the given base. A single
// leading '+' is allowed.
func Parse(s string, base int) (Value, error) {
	if err := CheckBase(base); err != nil {
		return Value{}, err
	}
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return Value{}, ErrEmpty
	}

	var v Value
	for i := 0; i < len(s); i++ {
		d := digitVals[s[i]]
		if d < 0 || int(d) >= base {
			return Value{}, fmt.Errorf("%w %q at offset %d", ErrInvalidDigit, s[i], i)
		}
		var ok bool
		if v, ok = v.mulAdd(uint64(base), uint64(d)); !ok {
			return Value{}, ErrValueOverflow
		}
	}
	return v, nil
}

// ParseBase parses a radix token written in base 10 and checks that it is
// in range.
func ParseBase(token string) (int, error) {
	base, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBase, token)
	}
	if err := CheckBase(base); err != nil {
		return 0, err
	}
	return base, nil
}
