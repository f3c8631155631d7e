package bigint

import "math/bits"

// Log returns floor(log_base(x)), the integer logarithm of x in the given
// base, grounded on bigint_logui. It reports ErrDomain if base < 2 or if x
// is not strictly positive.
//
// bigint_logui's repeated-multiply loop has a stray post-loop increment
// at the exact-power case whose value the function discards before
// returning; tracing it shows the returned power is the one already
// recorded when the comparison first becomes equal, i.e. Log(b^k, b) == k.
// This implementation reaches the same result with a plain "multiply while
// still <= x" loop.
func (x *BigInt) Log(base uint) (uint, error) {
	if base < 2 {
		return 0, wrap(ErrDomain, "log base must be >= 2")
	}
	if x.IsZero() || x.neg {
		return 0, wrap(ErrDomain, "log of non-positive value")
	}

	if base&(base-1) == 0 {
		ratio := uint(bits.TrailingZeros64(uint64(base)))
		return (bitLen(x) - 1) / ratio, nil
	}

	baseBI := NewFromUint64(uint64(base))
	product := NewFromInt64(1)
	var power uint
	for {
		next := New().Mul(product, baseBI)
		if next.Cmp(x) > 0 {
			return power, nil
		}
		product = next
		power++
	}
}
