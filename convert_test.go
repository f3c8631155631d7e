package bigint

import (
	"math"
	"testing"
)

func TestInt64RangeErrors(t *testing.T) {
	big, _ := Parse("999999999999999999999999999999", 10)
	if _, err := big.Int64(); err == nil {
		t.Fatalf("Int64 should range-error on oversized value")
	}
	var z BigInt
	z.Neg(big)
	if _, err := z.Uint64(); err == nil {
		t.Fatalf("Uint64 should range-error on negative value")
	}
}

func TestFloat64SmallExact(t *testing.T) {
	cases := []int64{0, 1, -1, 123456, -123456}
	for _, c := range cases {
		f, err := NewFromInt64(c).Float64()
		if err != nil {
			t.Fatalf("Float64(%d): %v", c, err)
		}
		if f != float64(c) {
			t.Errorf("Float64(%d) = %v, want %v", c, f, float64(c))
		}
	}
}

func TestFloat64Overflow(t *testing.T) {
	huge := New().Shl(NewFromInt64(1), 2000)
	f, err := huge.Float64()
	if err == nil {
		t.Fatalf("Float64 of 2^2000 should report overflow")
	}
	if !math.IsInf(f, 1) {
		t.Fatalf("Float64 overflow should return +Inf, got %v", f)
	}
	var neg BigInt
	neg.Neg(huge)
	f2, err2 := neg.Float64()
	if err2 == nil || !math.IsInf(f2, -1) {
		t.Fatalf("Float64 of -2^2000 should return -Inf with error")
	}
}

func TestFloat64LargeApprox(t *testing.T) {
	x, _ := Parse("123456789012345678901234567890", 10)
	f, err := x.Float64()
	if err != nil {
		t.Fatalf("Float64: %v", err)
	}
	want := 1.2345678901234568e+29
	if math.Abs(f-want)/want > 1e-9 {
		t.Fatalf("Float64 approximation off: got %v, want ~%v", f, want)
	}
}
