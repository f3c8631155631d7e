package bigint

// debugBigInt gates invariant checking in validate(). The original C
// library exposed no equivalent switch; this mirrors db47h/decimal's
// debugDecimal constant instead of adding a build tag nobody would flip.
const debugBigInt = true

// BigInt is an arbitrary-precision signed integer in sign-magnitude form.
//
// x = (-1)^neg * (digits[n-1]*B^(n-1) + ... + digits[1]*B + digits[0])
//
// with B = 2^wordBits, 0 <= i < n = len(digits), and digits[n-1] != 0 for
// n > 0. The normalized representation of zero is a nil or empty digits
// slice with neg == false. Every *BigInt argument, the receiver z included,
// must be non-nil: no method allocates a destination for a nil receiver.
//
// Every binary operation is safe to call with z aliasing x, y, or both, the
// same guarantee math/big.Int and db47h/decimal.Decimal make.
type BigInt struct {
	digits []Word
	neg    bool
}

// New returns a new BigInt set to zero.
func New() *BigInt { return new(BigInt) }

// NewFromInt64 returns a new BigInt with the value of x.
func NewFromInt64(x int64) *BigInt { return new(BigInt).SetInt64(x) }

// NewFromUint64 returns a new BigInt with the value of x.
func NewFromUint64(x uint64) *BigInt { return new(BigInt).SetUint64(x) }

// Clone returns a new BigInt with the same value as z. It does not alias z.
func (z *BigInt) Clone() *BigInt {
	c := &BigInt{neg: z.neg}
	c.digits = append(c.digits, z.digits...)
	return c
}

// Set sets z to x and returns z. It is safe to call with z == x.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z == x {
		return z
	}
	z.digits = z.resize(len(x.digits))
	copy(z.digits, x.digits)
	z.neg = x.neg
	return z.normalize()
}

// IsZero reports whether z is the value 0.
func (z *BigInt) IsZero() bool { return len(z.digits) == 0 }

// IsNeg reports whether z < 0.
func (z *BigInt) IsNeg() bool { return z.neg && len(z.digits) != 0 }

// IsPos reports whether z > 0.
func (z *BigInt) IsPos() bool { return !z.neg && len(z.digits) != 0 }

// Sign returns -1 if z < 0, 0 if z == 0, +1 if z > 0.
func (z *BigInt) Sign() int {
	if len(z.digits) == 0 {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// resize returns a digits slice of length n, reusing z.digits's backing
// array when it has enough capacity and otherwise growing it by doubling its
// capacity (or to exactly n when doubling is not enough). The
// tail beyond the previous length is zeroed so callers can rely on invariant
// 3: digits beyond the logical length are always zero.
func (z *BigInt) resize(n int) []Word {
	d := z.digits
	if n <= cap(d) {
		d = d[:n]
		for i := len(z.digits); i < n; i++ {
			d[i] = 0
		}
		return d
	}
	c := 2 * cap(d)
	if c < n {
		c = n
	}
	nd := make([]Word, n, c)
	copy(nd, d)
	return nd
}

// normalize trims leading (most-significant) zero digits and forces the
// sign of zero to positive. Every mutating operation ends by calling this.
func (z *BigInt) normalize() *BigInt {
	i := len(z.digits)
	for i > 0 && z.digits[i-1] == 0 {
		i--
	}
	z.digits = z.digits[:i]
	if i == 0 {
		z.neg = false
	}
	return z
}

// validate panics if z violates one of the representation invariants. It is
// only ever called when debugBigInt is true, the same pattern
// db47h/decimal.Decimal.validate uses.
func (z *BigInt) validate() {
	if !debugBigInt {
		return
	}
	if len(z.digits) == 0 && z.neg {
		panic("bigint: zero value has neg set")
	}
	if len(z.digits) > 0 && z.digits[len(z.digits)-1] == 0 {
		panic("bigint: leading zero digit")
	}
}

// same reports whether x and y are backed by the same underlying array,
// i.e. are aliases of one another. Grounded on db47h/decimal/stdlib.go's
// helper of the same name.
func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}
