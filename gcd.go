package bigint

// GCD sets z to the greatest common divisor of |x| and |y| using the
// binary (Stein's) algorithm, and returns z. GCD(0, y) is |y|;
// GCD(x, 0) is |x|; GCD(0, 0) is 0. Grounded directly on bigint_gcd.
func (z *BigInt) GCD(x, y *BigInt) *BigInt {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	a, b := x.Clone(), y.Clone()
	a.neg, b.neg = false, false

	if a.IsZero() {
		return z.Set(b)
	}
	if b.IsZero() {
		return z.Set(a)
	}

	commonZeros := ctz(a)
	if cb := ctz(b); cb < commonZeros {
		commonZeros = cb
	}
	a.Shr(a, ctz(a))
	b.Shr(b, ctz(b))

	for {
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b.Sub(b, a)
		if b.IsZero() {
			return z.Shl(a, commonZeros)
		}
		b.Shr(b, ctz(b))
	}
}
