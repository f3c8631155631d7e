//go:build bigint_w64

package bigint

import "math/bits"

// Word is the digit type for this build: 64 bits, selected with
// -tags bigint_w64. There is no native type twice its width, so the
// double-width helpers below are synthesized from math/bits instead of a
// dword type, the same trick the original C library falls back to when
// DIGIT_SUPER_TYPE isn't available for the widest digit.
type Word = uint64

const wordBits = 64

func addWW(x, y, carry Word) (sum, carryOut Word) {
	s, c := bits.Add64(x, y, carry)
	return s, c
}

func subWW(x, y, borrow Word) (diff, borrowOut Word) {
	d, b := bits.Sub64(x, y, borrow)
	return d, b
}

func mulWW(x, y Word) (hi, lo Word) {
	return bits.Mul64(x, y)
}

func divWW(hi, lo, y Word) (quo, rem Word) {
	q, r := bits.Div64(hi, lo, y)
	return q, r
}
