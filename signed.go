package bigint

// Add sets z to x+y and returns z. Grounded on bigint_add's sign dispatch:
// same-sign operands add magnitudes and keep the sign; opposite-sign
// operands subtract the smaller magnitude from the larger and take the
// sign of whichever operand had the larger magnitude.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if x.neg == y.neg {
		z.digits = z.magAddTo(x.digits, y.digits)
		z.neg = x.neg
		return z.normalize()
	}
	return z.subMagnitudes(x, y)
}

// Sub sets z to x-y and returns z.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if x.neg != y.neg {
		z.digits = z.magAddTo(x.digits, y.digits)
		z.neg = x.neg
		return z.normalize()
	}
	return z.subMagnitudes(x, y)
}

// subMagnitudes computes |x|-|y| (in magnitude terms, i.e. x+(-y) when
// signs differ, or x-y when signs agree) choosing the sign of the larger
// magnitude. x and y carry the original signs of the Add/Sub caller's
// operands; the caller has already decided that a magnitude subtraction is
// needed.
func (z *BigInt) subMagnitudes(x, y *BigInt) *BigInt {
	switch magCmp(x.digits, y.digits) {
	case 0:
		z.digits = z.resize(0)
		z.neg = false
	case 1:
		z.digits = z.magSubTo(x.digits, y.digits)
		z.neg = x.neg
	default:
		z.digits = z.magSubTo(y.digits, x.digits)
		z.neg = !x.neg
	}
	return z.normalize()
}

// Neg sets z to -x and returns z.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	z.Set(x)
	if len(z.digits) != 0 {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.Set(x)
	z.neg = false
	return z
}

// Cmp compares z and x, returning -1, 0 or +1 according to whether
// z < x, z == x, or z > x.
func (z *BigInt) Cmp(x *BigInt) int {
	switch {
	case z.neg && !x.neg:
		return -1
	case !z.neg && x.neg:
		return 1
	case !z.neg:
		return magCmp(z.digits, x.digits)
	default:
		return magCmp(x.digits, z.digits)
	}
}

// Inc sets z to x+1 and returns z, following bigint_inc's dispatch: a
// negative x decrements its magnitude (and may flip to +0), a non-negative
// x increments its magnitude.
func (z *BigInt) Inc(x *BigInt) *BigInt {
	if x.neg {
		z.digits = magDec(z, x.digits)
		z.neg = true
	} else {
		z.digits = magInc(z, x.digits)
		z.neg = false
	}
	return z.normalize()
}

// Dec sets z to x-1 and returns z. Decrementing zero yields -1, matching
// bigint_dec's special case.
func (z *BigInt) Dec(x *BigInt) *BigInt {
	if len(x.digits) == 0 {
		z.digits = z.resize(1)
		z.digits[0] = 1
		z.neg = true
		return z.normalize()
	}
	if x.neg {
		z.digits = magInc(z, x.digits)
		z.neg = true
	} else {
		z.digits = magDec(z, x.digits)
		z.neg = false
	}
	return z.normalize()
}

// Min returns whichever of a, b compares smaller, without modifying either.
func Min(a, b *BigInt) *BigInt {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns whichever of a, b compares larger, without modifying either.
func Max(a, b *BigInt) *BigInt {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
