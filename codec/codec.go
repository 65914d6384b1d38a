// Package codec converts between arbitrary-precision integers and
// their textual representations in decimal, and in two's-complement
// binary/hexadecimal with minimum canonical width.
//
// Decimal is a direct, sign-and-magnitude mapping onto bigint.Int.
// Binary and hexadecimal are bijections through two's complement: the
// leading bit (equivalently, for hex, whether the leading hex digit
// is 0-7 or 8-F) carries the sign, and the formatter always emits the
// shortest string whose two's-complement interpretation recovers the
// value. See canonicalWidth below, grounded on the width-discovery
// technique in the LazyView/PC_Calculator C implementation's
// dec_to_bin/dec_to_hex, generalized from its string-of-decimal-digits
// magnitude to bigint.Int's native limbs.
package codec

import (
	"fmt"
	"strings"

	"github.com/LazyView/PC-Calculator/bigint"
)

// ParseDecimal parses an optionally signed decimal literal.
func ParseDecimal(text string) (bigint.Int, error) {
	return bigint.FromDecimalText(text)
}

// FormatDecimal renders x as a signed decimal string.
func FormatDecimal(x bigint.Int) string {
	return x.String()
}

// ParseLiteral parses a number literal exactly as accepted inside
// expressions: "0b"/"0B" selects binary, "0x"/"0X" selects hex,
// anything else is parsed as decimal.
func ParseLiteral(text string) (bigint.Int, error) {
	switch {
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		return ParseBinary(text)
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		return ParseHex(text)
	default:
		return ParseDecimal(text)
	}
}

// ParseBinary parses a "0b"/"0B"-prefixed two's-complement binary
// literal.
func ParseBinary(text string) (bigint.Int, error) {
	body, err := stripPrefix(text, "0b", "0B")
	if err != nil {
		return bigint.Int{}, err
	}
	if err := validateDigits(body, isBinaryDigit); err != nil {
		return bigint.Int{}, err
	}
	return parseTwosComplementBits(body)
}

// ParseHex parses a "0x"/"0X"-prefixed two's-complement hexadecimal
// literal; hex letters may be upper or lower case.
func ParseHex(text string) (bigint.Int, error) {
	body, err := stripPrefix(text, "0x", "0X")
	if err != nil {
		return bigint.Int{}, err
	}
	if err := validateDigits(body, isHexDigit); err != nil {
		return bigint.Int{}, err
	}
	return parseTwosComplementBits(expandHexToBits(body))
}

// FormatBinary renders x as a canonical minimum-width "0b..." string.
func FormatBinary(x bigint.Int) string {
	return "0b" + formatTwosComplementBits(x, 1)
}

// FormatHex renders x as a canonical minimum-width "0x..." string,
// using lower-case hex digits.
func FormatHex(x bigint.Int) string {
	bits := formatTwosComplementBits(x, 4)
	return "0x" + bitsToHex(bits)
}

func stripPrefix(text string, lower, upper string) (string, error) {
	if !strings.HasPrefix(text, lower) && !strings.HasPrefix(text, upper) {
		return "", fmt.Errorf("codec: literal %q missing expected prefix %q", text, lower)
	}
	body := text[2:]
	if body == "" {
		return "", fmt.Errorf("codec: literal %q has no digits", text)
	}
	return body, nil
}

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func validateDigits(s string, valid func(byte) bool) error {
	for i := 0; i < len(s); i++ {
		if !valid(s[i]) {
			return fmt.Errorf("codec: invalid digit %q in literal", s[i])
		}
	}
	return nil
}

// parseTwosComplementBits interprets bits (a string of '0'/'1', most
// significant first, already validated and non-empty) as a two's-
// complement integer: leading '0' means the unsigned value of the
// whole string; leading '1' means the unsigned value of the trailing
// n-1 bits minus 2^(n-1).
func parseTwosComplementBits(bits string) (bigint.Int, error) {
	if bits[0] == '0' {
		return bigint.FromUnsignedBits(bits)
	}
	rest := bits[1:]
	var low bigint.Int
	var err error
	if rest == "" {
		low = bigint.Zero()
	} else {
		low, err = bigint.FromUnsignedBits(rest)
		if err != nil {
			return bigint.Int{}, err
		}
	}
	return bigint.Sub(low, bigint.Pow2(len(bits)-1)), nil
}

// canonicalWidth returns the minimum width, rounded up to a multiple
// of unit (1 for binary, 4 for hex), of the two's-complement
// representation of the non-zero value x. For x > 0 the minimum
// unrounded width is
// BitLen(x)+1 (so the leading bit is 0); for x < 0 with magnitude m
// it is BitLen(m-1)+1 (so 2^(width-1) >= m).
func canonicalWidth(x bigint.Int, unit int) int {
	var minBits int
	if !bigint.IsNegative(x) {
		minBits = bigint.BitLen(x) + 1
	} else {
		m := bigint.Negate(x)
		mMinusOne := bigint.Sub(m, bigint.FromInt64(1))
		minBits = bigint.BitLen(mMinusOne) + 1
	}
	return ((minBits + unit - 1) / unit) * unit
}

// formatTwosComplementBits returns the canonical minimum-width (a
// multiple of unit) two's-complement bit string for x. Zero is always
// a single bit, regardless of unit; FormatHex further groups the
// result into nibbles.
func formatTwosComplementBits(x bigint.Int, unit int) string {
	if bigint.IsZero(x) {
		return "0"
	}
	width := canonicalWidth(x, unit)
	if !bigint.IsNegative(x) {
		return bigint.UnsignedBits(x, width)
	}
	m := bigint.Negate(x)
	twos := bigint.Sub(bigint.Pow2(width), m)
	return bigint.UnsignedBits(twos, width)
}

const hexDigits = "0123456789abcdef"

func expandHexToBits(hex string) string {
	var b strings.Builder
	b.Grow(len(hex) * 4)
	for i := 0; i < len(hex); i++ {
		v := hexNibble(hex[i])
		for bit := 3; bit >= 0; bit-- {
			if v&(1<<uint(bit)) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// bitsToHex groups a bit string whose length is a multiple of 4 into
// hex digits. The one exception is the single-bit "0" that
// formatTwosComplementBits returns for zero, which is passed through
// unchanged as the hex digit "0".
func bitsToHex(bits string) string {
	if bits == "0" {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(bits) / 4)
	for i := 0; i < len(bits); i += 4 {
		nibble := bits[i : i+4]
		v := 0
		for _, c := range nibble {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}
		b.WriteByte(hexDigits[v])
	}
	return b.String()
}
