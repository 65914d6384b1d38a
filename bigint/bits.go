package bigint

import "fmt"

// The functions in this file expose just enough bit-level structure
// for the two's-complement base codec (package codec) to build and
// take apart binary/hexadecimal representations, while keeping the
// sign-magnitude value model itself opaque to everyone else: the
// codec is purely a display/parse format and must not leak into the
// value model.

// BitLen returns the number of bits needed to represent |x| (0 for
// zero).
func BitLen(x Int) int {
	return bitLenMag(x.mag)
}

// Pow2 returns 2^n for n >= 0.
func Pow2(n int) Int {
	if n < 0 {
		return Int{}
	}
	mag := make([]uint32, n/limbBits+1)
	mag = setBitMag(mag, n)
	return Int{mag: norm(mag)}
}

// UnsignedBits renders |x| as exactly width bits (most significant
// first), zero-padded. It panics if x does not fit in width bits;
// callers are expected to have sized width from BitLen first.
func UnsignedBits(x Int, width int) string {
	if bitLenMag(x.mag) > width {
		panic(fmt.Sprintf("bigint: value does not fit in %d bits", width))
	}
	buf := make([]byte, width)
	for i := 0; i < width; i++ {
		if bitMag(x.mag, width-1-i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// FromUnsignedBits parses a string of '0'/'1' characters (most
// significant first) as a non-negative magnitude.
func FromUnsignedBits(bits string) (Int, error) {
	if bits == "" {
		return Int{}, fmt.Errorf("bigint: empty bit string")
	}
	mag := make([]uint32, len(bits)/limbBits+1)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
		case '1':
			mag = setBitMag(mag, len(bits)-1-i)
		default:
			return Int{}, fmt.Errorf("bigint: invalid bit %q", bits[i])
		}
	}
	return Int{mag: norm(mag)}, nil
}
