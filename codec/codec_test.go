package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LazyView/PC-Calculator/bigint"
	"github.com/LazyView/PC-Calculator/codec"
)

// TestWorkedExamples pins the canonical two's-complement renderings
// worked by hand for a representative set of values: 5, -1, -6, 255
// and 128, each in both binary and hex.
func TestWorkedExamples(t *testing.T) {
	cases := []struct {
		decimal string
		bin     string
		hex     string
	}{
		{"5", "0b0101", "0x5"},
		{"-1", "0b1", "0xf"},
		{"-6", "0b1010", "0xa"},
		{"255", "0b011111111", "0x0ff"},
		{"128", "0b010000000", "0x080"},
	}
	for _, c := range cases {
		x, err := bigint.FromDecimalText(c.decimal)
		require.NoError(t, err)
		assert.Equal(t, c.bin, codec.FormatBinary(x), "FormatBinary(%s)", c.decimal)
		assert.Equal(t, c.hex, codec.FormatHex(x), "FormatHex(%s)", c.decimal)
	}
}

func TestRoundTripBinary(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 2, -2, 5, -6, 127, -128, 255, -255, 1000000, -1000000} {
		x := bigint.FromInt64(n)
		s := codec.FormatBinary(x)
		got, err := codec.ParseBinary(s)
		require.NoError(t, err, "ParseBinary(%s)", s)
		assert.Equal(t, 0, bigint.Cmp(got, x), "round trip %d through %s", n, s)
	}
}

func TestRoundTripHex(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 2, -2, 128, -128, 255, -255, 4095, -4096} {
		x := bigint.FromInt64(n)
		s := codec.FormatHex(x)
		got, err := codec.ParseHex(s)
		require.NoError(t, err, "ParseHex(%s)", s)
		assert.Equal(t, 0, bigint.Cmp(got, x), "round trip %d through %s", n, s)
	}
}

// TestCanonicalMinimality checks that the emitted binary width is
// never reducible: dropping the leading bit from a formatted binary
// string must change the decoded value, i.e. the binary formatter
// never pads beyond the minimum. Hex output is not checked here.
func TestCanonicalMinimality(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 7, -8, 63, -64, 1023, -1024} {
		x := bigint.FromInt64(n)
		bin := codec.FormatBinary(x)
		body := bin[2:]
		if len(body) > 1 {
			shrunk := "0b" + body[1:]
			got, err := codec.ParseBinary(shrunk)
			if err == nil {
				assert.NotEqual(t, 0, bigint.Cmp(got, x),
					"binary width for %d not minimal: %s still decodes to same value", n, shrunk)
			}
		}
	}
}

func TestParseLiteralDispatch(t *testing.T) {
	dec, err := codec.ParseLiteral("42")
	require.NoError(t, err)
	assert.Equal(t, "42", dec.String())

	bin, err := codec.ParseLiteral("0b0101")
	require.NoError(t, err)
	assert.Equal(t, "5", bin.String())

	hex, err := codec.ParseLiteral("0xFF")
	require.NoError(t, err)
	assert.Equal(t, "-1", hex.String())
}

func TestInvalidLiterals(t *testing.T) {
	_, err := codec.ParseBinary("0b")
	assert.Error(t, err)

	_, err = codec.ParseBinary("0b012")
	assert.Error(t, err)

	_, err = codec.ParseHex("0xg1")
	assert.Error(t, err)

	_, err = codec.ParseHex("1x1")
	assert.Error(t, err)
}

func TestZeroFormatsAsSingleDigit(t *testing.T) {
	z := bigint.Zero()
	assert.Equal(t, "0b0", codec.FormatBinary(z))
	assert.Equal(t, "0x0", codec.FormatHex(z))
}
