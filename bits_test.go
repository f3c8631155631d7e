package bigint

import "testing"

func TestShlShrInverse(t *testing.T) {
	cases := []struct {
		v int64
		n uint
	}{
		{12345, 10}, {-12345, 10}, {1, 63}, {0, 5}, {-1, 1},
	}
	for _, c := range cases {
		x := NewFromInt64(c.v)
		var shl, shr BigInt
		shl.Shl(x, c.n)
		shr.Shr(&shl, c.n)
		if shr.Cmp(x) != 0 {
			t.Errorf("Shr(Shl(%d,%d),%d) != %d, got %s", c.v, c.n, c.n, c.v, shr.String())
		}
	}
}

func TestShlEquivalentToMulByPowerOfTwo(t *testing.T) {
	x := NewFromInt64(777)
	var shl, mul BigInt
	shl.Shl(x, 5)
	mul.Mul(x, NewFromInt64(32))
	if shl.Cmp(&mul) != 0 {
		t.Fatalf("Shl != Mul by 2^n: %s vs %s", shl.String(), mul.String())
	}
}

func TestShrEquivalentToDivByPowerOfTwo(t *testing.T) {
	x := NewFromInt64(98765)
	var shr, div BigInt
	shr.Shr(x, 7)
	div.Div(x, NewFromInt64(128))
	if shr.Cmp(&div) != 0 {
		t.Fatalf("Shr != Div by 2^n: %s vs %s", shr.String(), div.String())
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []uint{0, 1, 2, 3, 4, 10, 63} {
		var z BigInt
		z.Shl(NewFromInt64(1), n)
		if !z.IsPowerOfTwo() {
			t.Errorf("2^%d not reported as power of two", n)
		}
	}
	if NewFromInt64(0).IsPowerOfTwo() {
		t.Fatalf("0 reported as power of two")
	}
	if NewFromInt64(6).IsPowerOfTwo() {
		t.Fatalf("6 reported as power of two")
	}
}

func TestShiftSignedDomainAndRange(t *testing.T) {
	var z BigInt
	if _, err := z.ShlSigned(NewFromInt64(1), NewFromInt64(-1)); err == nil {
		t.Fatalf("negative shift count should error")
	}
	if _, err := z.ShrSigned(NewFromInt64(1), NewFromInt64(-1)); err == nil {
		t.Fatalf("negative shift count should error")
	}
	tooWide := New().Shl(NewFromInt64(1), 64)
	_, err := z.ShlSigned(NewFromInt64(1), tooWide)
	if e, ok := As(err); !ok || e.Kind() != KindRange {
		t.Fatalf("shift count 2^64: got err %v, want KindRange", err)
	}
}
