package bigint

// Pow sets z to base**exp and returns z, using exponentiation by squaring
// over exp's binary expansion (bigint_pow). It reports ErrDomain if exp is
// negative. Unlike the original C implementation, the sign of a negative
// base raised to an odd power doesn't need to be precomputed separately:
// squaring and multiplying with the ordinary signed Mul/Shr already used
// below carries the correct sign through every step.
func (z *BigInt) Pow(base, exp *BigInt) (*BigInt, error) {
	if debugBigInt {
		base.validate()
		exp.validate()
	}
	if exp.neg {
		return z, wrap(ErrDomain, "negative exponent")
	}

	b := base.Clone()
	e := exp.Clone()
	result := NewFromInt64(1)

	for !e.IsZero() {
		if e.digits[0]&1 == 1 {
			result.Mul(result, b)
		}
		e.Shr(e, 1)
		if !e.IsZero() {
			b.Mul(b, b)
		}
	}
	return z.Set(result), nil
}
