package bigint

// Windowed restoring long division, grounded directly on bigint_div: the
// numerator's digits are treated as mostly "hidden", with a window sliding
// down from the top that is widened ("unveiled") one digit at a time until
// it is large enough to compare against the divisor, at which point a
// single quotient digit is found by repeated addition and subtracted out
// in place.

// subMagFixed returns x-y as a slice exactly len(x) digits long, requiring
// magCmp(x, y) >= 0.
func subMagFixed(x, y []Word) []Word {
	d := make([]Word, len(x))
	var b Word
	i := 0
	for ; i < len(y); i++ {
		d[i], b = subWW(x[i], y[i], b)
	}
	for ; i < len(x); i++ {
		d[i], b = subWW(x[i], 0, b)
	}
	if debugBigInt && b != 0 {
		panic("bigint: subMagFixed underflowed")
	}
	return d
}

// divWindow is the sliding view over the numerator's digit buffer used by
// magDivMod. buf is mutated in place as quotient digits are subtracted out;
// [start, start+length) is the current significant window.
type divWindow struct {
	buf    []Word
	start  int
	length int
}

func (w *divWindow) mag() []Word { return w.buf[w.start : w.start+w.length] }

func (w *divWindow) trim() {
	for w.length > 0 && w.buf[w.start+w.length-1] == 0 {
		w.length--
	}
}

// unveil brings in the next (less significant) digit from below, then drops
// any leading zero digits so that magCmp sees a normalized window.
func (w *divWindow) unveil() {
	w.start--
	w.length++
	w.trim()
}

// magDivMod divides magnitudes n by d (d non-zero), returning quotient and
// remainder magnitudes, each normalized (no leading zero digit).
func magDivMod(n, d []Word) (q, r []Word) {
	switch {
	case len(d) == 1:
		return magDivModSmall(n, d[0])
	case magCmp(n, d) < 0:
		return nil, append([]Word(nil), n...)
	case magCmp(n, d) == 0:
		return []Word{1}, nil
	case isPow2Mag(d):
		s := ctzMag(d)
		shifted := (&BigInt{}).shrMag(n, s)
		mask := maskLowBits(n, s)
		return trimWords(shifted), trimWords(mask)
	}

	buf := append([]Word(nil), n...)
	win := &divWindow{buf: buf, start: len(n) - len(d), length: len(d)}
	hidden := win.start

	qlen := hidden + 1
	qd := make([]Word, qlen)
	qPos := qlen

	emit := func(digit Word) {
		qPos--
		qd[qPos] = digit
	}

	for {
		for magCmp(win.mag(), d) < 0 && hidden > 0 {
			win.unveil()
			hidden--
			emit(0)
		}
		if magCmp(win.mag(), d) < 0 {
			break
		}
		factor, acc := findFactor(win.mag(), d)
		copy(win.mag(), subMagFixed(win.mag(), acc))
		win.trim()
		emit(factor)
		if hidden == 0 {
			break
		}
		win.unveil()
		hidden--
	}

	return trimWords(qd), trimWords(append([]Word(nil), win.mag()...))
}

// findFactor finds the largest digit f in [0, B-1] (B = 2^wordBits) such that
// f*d <= window, by repeated addition, mirroring bigint_div's accumulator
// loop exactly (this is O(f) per digit, same asymptotic cost the original
// C implementation pays; see DESIGN.md).
func findFactor(window, d []Word) (factor Word, acc []Word) {
	acc = nil
	for {
		next := addMagGrow(acc, d)
		if magCmp(next, window) > 0 {
			return factor, acc
		}
		acc = next
		factor++
	}
}

// addMagGrow returns x+y as a freshly allocated, normalized magnitude.
func addMagGrow(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	d := make([]Word, len(x)+1)
	var c Word
	i := 0
	for ; i < len(y); i++ {
		d[i], c = addWW(x[i], y[i], c)
	}
	for ; i < len(x); i++ {
		d[i], c = addWW(x[i], 0, c)
	}
	d[i] = c
	return trimWords(d)
}

func trimWords(d []Word) []Word {
	i := len(d)
	for i > 0 && d[i-1] == 0 {
		i--
	}
	return d[:i]
}

// maskLowBits returns the low n bits of magnitude x as a digit slice.
func maskLowBits(x []Word, n uint) []Word {
	words := n / wordBits
	bitsLeft := n % wordBits
	if words >= uint(len(x)) {
		return append([]Word(nil), x...)
	}
	d := make([]Word, words+1)
	copy(d, x[:words])
	if bitsLeft != 0 {
		mask := Word(1)<<bitsLeft - 1
		d[words] = x[words] & mask
	}
	return trimWords(d)
}

// magDivModSmall divides magnitude n by a single digit y, returning
// quotient and remainder.
func magDivModSmall(n []Word, y Word) (q, r []Word) {
	qd := make([]Word, len(n))
	var rem Word
	for i := len(n) - 1; i >= 0; i-- {
		qd[i], rem = divWW(rem, n[i], y)
	}
	return trimWords(qd), trimWords([]Word{rem})
}

// QuoRem sets z to the quotient and zr to the remainder of x/y, truncating
// toward zero (C semantics, matching bigint_div's sign rules exactly:
// quotient is negative iff signs differ and it is nonzero; remainder takes
// the numerator's sign and is nonzero iff the numerator was nonzero and it
// is itself nonzero). It reports ErrDomain if y is zero. z and zr may alias
// x and/or y freely, but must not alias each other.
func (z *BigInt) QuoRem(zr, x, y *BigInt) (*BigInt, *BigInt, error) {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if len(y.digits) == 0 {
		return z, zr, wrap(ErrDomain, "division by zero")
	}
	qd, rd := magDivMod(x.digits, y.digits)

	qNeg := x.neg != y.neg && len(qd) != 0
	rNeg := x.neg && len(rd) != 0

	z.digits, z.neg = qd, qNeg
	zr.digits, zr.neg = rd, rNeg
	z.normalize()
	zr.normalize()
	return z, zr, nil
}

// Div sets z to the truncated quotient of x/y and returns z and an error.
func (z *BigInt) Div(x, y *BigInt) (*BigInt, error) {
	var r BigInt
	_, _, err := z.QuoRem(&r, x, y)
	return z, err
}

// Mod sets z to the truncated remainder of x/y and returns z and an error,
// discarding the quotient (bigint_mod).
func (z *BigInt) Mod(x, y *BigInt) (*BigInt, error) {
	var q BigInt
	_, _, err := q.QuoRem(z, x, y)
	return z, err
}
