// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package radix

import "math/bits"

// Value is an unsigned 128-bit integer. It is an immutable value type;
// operations return a new Value.
type Value struct {
	hi, lo uint64
}

// MaxValue is 2^128 - 1.
var MaxValue = Value{hi: ^uint64(0), lo: ^uint64(0)}

// FromUint64 returns v as a Value.
func FromUint64(v uint64) Value {
	return Value{lo: v}
}

// FromRaw builds a Value from its high and low 64-bit halves.
func FromRaw(hi, lo uint64) Value {
	return Value{hi: hi, lo: lo}
}

// Raw returns the high and low 64-bit halves of v.
func (v Value) Raw() (hi, lo uint64) {
	return v.hi, v.lo
}

// IsZero reports whether v is 0.
func (v Value) IsZero() bool {
	return v.hi == 0 && v.lo == 0
}

// String returns the decimal representation of v.
func (v Value) String() string {
	s, _ := Format(v, 10)
	return s
}

// quoRem divides v by d and returns the quotient and remainder.
// d must be non-zero.
func (v Value) quoRem(d uint64) (Value, uint64) {
	qhi, r := v.hi/d, v.hi%d
	qlo, r := bits.Div64(r, v.lo, d)
	return Value{hi: qhi, lo: qlo}, r
}

// mulAdd returns v*m + a. ok is false if the result does not fit in 128 bits.
func (v Value) mulAdd(m, a uint64) (out Value, ok bool) {
	carry, lo := bits.Mul64(v.lo, m)
	over, hi := bits.Mul64(v.hi, m)
	if over != 0 {
		return Value{}, false
	}
	hi, c := bits.Add64(hi, carry, 0)
	if c != 0 {
		return Value{}, false
	}
	lo, c = bits.Add64(lo, a, 0)
	hi, c = bits.Add64(hi, 0, c)
	if c != 0 {
		return Value{}, false
	}
	return Value{hi: hi, lo: lo}, true
}
