package bigint

// Mul sets z to x*y and returns z. Either operand being a power of two is
// shortcut to a shift, the same optimization bigint_mul applies via ctz
// before falling back to the schoolbook double loop.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if len(x.digits) == 0 || len(y.digits) == 0 {
		z.digits = z.resize(0)
		z.neg = false
		return z
	}
	neg := x.neg != y.neg
	if x.IsPowerOfTwo() {
		z.Shl(y, ctz(x))
		z.neg = neg && len(z.digits) != 0
		return z
	}
	if y.IsPowerOfTwo() {
		z.Shl(x, ctz(y))
		z.neg = neg && len(z.digits) != 0
		return z
	}
	// z may alias x or y; compute into a fresh buffer and swap it in at the
	// end, the same dup-and-swap bigint_mul performs when the destination
	// aliases an operand.
	a, b := x.digits, y.digits
	d := make([]Word, len(a)+len(b))
	for i, xi := range a {
		if xi == 0 {
			continue
		}
		var carry Word
		for j, yj := range b {
			hi, lo := mulWW(xi, yj)
			var c0, c1 Word
			lo, c0 = addWW(lo, d[i+j], 0)
			hi, _ = addWW(hi, c0, 0)
			lo, c1 = addWW(lo, carry, 0)
			hi, _ = addWW(hi, c1, 0)
			d[i+j] = lo
			carry = hi
		}
		k := i + len(b)
		for carry != 0 {
			d[k], carry = addWW(d[k], carry, 0)
			k++
		}
	}
	z.digits = z.resize(len(d))
	copy(z.digits, d)
	z.neg = neg
	return z.normalize()
}
