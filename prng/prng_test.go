package prng

import (
	"math"
	"testing"
)

// The first values of the Lehmer stream for seed 1 are well known and pin
// down the exact recurrence.
func TestKnownStream(t *testing.T) {
	r := New(1)
	if got := r.NextInt(); got != 16807 {
		t.Fatalf("first NextInt() = %d, want 16807", got)
	}
	if got := r.NextInt(); got != 282475249 {
		t.Fatalf("second NextInt() = %d, want 282475249", got)
	}
	want := float64(1622650073) / 2147483647
	if got := r.NextDouble(); math.Abs(got-want) > 1e-15 {
		t.Fatalf("third draw as NextDouble() = %v, want %v", got, want)
	}
}

func TestSeedNormalization(t *testing.T) {
	// 0 and multiples of the modulus would freeze the stream; they must be
	// remapped onto a valid seed.
	for _, seed := range []int64{0, 2147483647, -2147483647, -1, math.MaxInt64, math.MinInt64} {
		r := New(seed)
		a, b := r.NextInt(), r.NextInt()
		if a == 0 || b == 0 {
			t.Errorf("seed %d: stream stuck at 0", seed)
		}
		if a == b {
			t.Errorf("seed %d: stream does not advance (%d, %d)", seed, a, b)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		if va, vb := a.NextInt(), b.NextInt(); va != vb {
			t.Fatalf("streams diverge at draw %d: %d != %d", i, va, vb)
		}
	}
}

func TestNextDoubleRange(t *testing.T) {
	r := New(99)
	for i := 0; i < 1000; i++ {
		v := r.NextDoubleRange(-2.5, 7.5)
		if v < -2.5 || v > 7.5 {
			t.Fatalf("NextDoubleRange(-2.5, 7.5) = %v out of range", v)
		}
	}
}

func TestNextIntRange(t *testing.T) {
	r := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := r.NextIntRange(1, 6)
		if v < 1 || v > 6 {
			t.Fatalf("NextIntRange(1, 6) = %d out of range", v)
		}
		seen[v] = true
	}
	// Both bounds are inclusive and must actually occur.
	for want := 1; want <= 6; want++ {
		if !seen[want] {
			t.Errorf("NextIntRange(1, 6) never produced %d in 10000 draws", want)
		}
	}
	if got := r.NextIntRange(3, 3); got != 3 {
		t.Errorf("NextIntRange(3, 3) = %d, want 3", got)
	}
}
