// Package bigint implements an arbitrary-precision signed integer,
// the arithmetic kernel over it, and the two derived operations
// (factorial, power) built on that kernel.
//
// Values are immutable: every operation returns a fresh Int rather
// than mutating a receiver. Internally a value is sign-magnitude, the
// magnitude stored as a little-endian slice of 32-bit limbs, the same
// layout math/big's nat uses internally, but built from scratch here
// because building this engine is the point of the exercise, not
// wrapping an existing one (see DESIGN.md).
package bigint

import (
	"errors"
	"fmt"
)

// ErrDivByZero is returned by Div and Mod (and by Power, for 0 raised
// to a negative exponent) when the divisor is zero.
var ErrDivByZero = errors.New("division by zero")

// ErrNegativeFactorial is returned by Factorial for a negative operand.
var ErrNegativeFactorial = errors.New("factorial of negative number")

const limbBits = 32

var one = Int{mag: []uint32{1}}

// Int is an arbitrary-precision signed integer. The zero value is the
// integer 0, the same value Zero() returns.
type Int struct {
	neg bool
	mag []uint32 // little-endian, no leading (high-order) zero limb
}

// Zero returns the integer 0.
func Zero() Int { return Int{} }

// Copy returns a deep copy of x. Because Int is never mutated in
// place once constructed, Copy is provided for callers (such as the
// evaluator) that want an explicit, ownership-independent value to
// hold onto; it is otherwise safe to pass an Int by value directly.
func Copy(x Int) Int {
	if len(x.mag) == 0 {
		return Int{}
	}
	mag := make([]uint32, len(x.mag))
	copy(mag, x.mag)
	return Int{neg: x.neg, mag: mag}
}

// IsZero reports whether x is 0.
func IsZero(x Int) bool { return len(x.mag) == 0 }

// IsNegative reports whether x < 0.
func IsNegative(x Int) bool { return x.neg && len(x.mag) != 0 }

// fromUint64 builds a non-negative Int from a native value.
func fromUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	lo := uint32(v)
	hi := uint32(v >> 32)
	if hi == 0 {
		return Int{mag: []uint32{lo}}
	}
	return Int{mag: []uint32{lo, hi}}
}

// FromInt64 builds an Int from a native signed value.
func FromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	r := fromUint64(u)
	r.neg = neg
	return r
}

// FromDecimalText parses an optional leading '+' or '-' followed by
// one or more decimal digits. Any other content is rejected. The
// result is canonicalized: leading zero limbs are stripped and zero
// is always returned with a positive sign.
func FromDecimalText(s string) (Int, error) {
	if s == "" {
		return Int{}, fmt.Errorf("bigint: empty decimal literal")
	}
	neg := false
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i == len(s) {
		return Int{}, fmt.Errorf("bigint: decimal literal %q has no digits", s)
	}
	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return Int{}, fmt.Errorf("bigint: invalid decimal literal %q", s)
		}
	}
	mag := magFromDecimalDigits(s[i:])
	if len(mag) == 0 {
		neg = false // zero is always positive
	}
	return Int{neg: neg, mag: mag}, nil
}

// String renders x in decimal, with a leading '-' for negative
// non-zero values and no leading zeros.
func (x Int) String() string {
	if len(x.mag) == 0 {
		return "0"
	}
	digits := magToDecimalDigits(x.mag)
	if x.neg {
		return "-" + digits
	}
	return digits
}

// toUint64 reports the value of x as a uint64 and true, or (0, false)
// if x is negative or does not fit.
func toUint64(x Int) (uint64, bool) {
	if x.neg || len(x.mag) > 2 {
		return 0, false
	}
	var v uint64
	for i := len(x.mag) - 1; i >= 0; i-- {
		v = v<<limbBits | uint64(x.mag[i])
	}
	return v, true
}

// sign returns -1, 0, or 1.
func (x Int) sign() int {
	switch {
	case len(x.mag) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}
