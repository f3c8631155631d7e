package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScientificNotation(t *testing.T) {
	z, err := Parse("1e100", 10)
	require.NoError(t, err)
	var want BigInt
	_, err = want.Pow(NewFromUint64(10), NewFromInt64(100))
	require.NoError(t, err)
	assert.Equal(t, 0, z.Cmp(&want), "1e100 = %s, want %s", z.String(), want.String())
}

func TestParseHexPrefix(t *testing.T) {
	z, err := Parse("0xdeadbeef", 0)
	require.NoError(t, err)
	assert.Equal(t, "3735928559", z.String())
}

func TestParseBinOctPrefixes(t *testing.T) {
	z, err := Parse("0b1010", 0)
	require.NoError(t, err)
	assert.Equal(t, "10", z.String())

	z2, err := Parse("0o17", 0)
	require.NoError(t, err)
	assert.Equal(t, "15", z2.String())
}

func TestParseLeadingZeroIsOctal(t *testing.T) {
	z, err := Parse("0755", 0)
	require.NoError(t, err)
	assert.Equal(t, "493", z.String())
}

func TestParseBareZeroIsZero(t *testing.T) {
	z, err := Parse("0", 0)
	require.NoError(t, err)
	assert.Equal(t, "0", z.String())
}

func TestParseFractionResidue(t *testing.T) {
	z, residue, err := ParseFraction("-1.2345e3", 10)
	require.NoError(t, err)
	assert.Equal(t, "-1234", z.String())
	assert.Equal(t, "5", residue)
}

func TestParseFractionNoResidueWhenExponentCovers(t *testing.T) {
	z, residue, err := ParseFraction("1.2345e4", 10)
	require.NoError(t, err)
	assert.Equal(t, "", residue)
	assert.Equal(t, "12345", z.String())
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("123abc", 10)
	assert.Error(t, err)
}

func TestParseRejectsUnconsumedFraction(t *testing.T) {
	_, err := Parse("1.2345e3", 10)
	assert.Error(t, err)
}

func TestTextRoundtripSupportedBases(t *testing.T) {
	x, _ := Parse("123456789", 10)
	for _, base := range []int{2, 8, 10, 16} {
		s, err := x.Text(base)
		require.NoError(t, err)
		back, err := Parse(trimBasePrefix(s, base), base)
		require.NoError(t, err)
		assert.Equal(t, 0, x.Cmp(back), "base %d roundtrip failed: %s", base, s)
	}
}

func TestTextRejectsUnsupportedRadix(t *testing.T) {
	x := NewFromInt64(123)
	for _, base := range []int{0, 1, 5, 27, 37} {
		_, err := x.Text(base)
		require.Error(t, err, "base %d should be rejected", base)
		e, ok := As(err)
		require.True(t, ok)
		assert.Equal(t, KindInvalid, e.Kind())
	}
}

func TestParseRejectsUnsupportedExplicitRadix(t *testing.T) {
	_, err := Parse("101", 5)
	require.Error(t, err)
	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalid, e.Kind())
}

func TestPutTextBufferTooSmall(t *testing.T) {
	x, _ := Parse("123456789", 10)
	buf := make([]byte, 2)
	_, err := x.PutText(buf, 10)
	require.Error(t, err)
	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindRange, e.Kind())
}

func TestPutTextExactFit(t *testing.T) {
	x := NewFromInt64(42)
	buf := make([]byte, 2)
	n, err := x.PutText(buf, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "42", string(buf[:n]))
}

func trimBasePrefix(s string, base int) string {
	if len(s) == 0 {
		return s
	}
	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	switch base {
	case 2, 8, 16:
		if len(s) > 2 && s[0] == '0' {
			s = s[2:]
		}
	}
	if neg {
		s = "-" + s
	}
	return s
}
