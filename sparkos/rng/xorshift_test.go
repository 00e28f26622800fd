package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(0xC0FFEE)
	b := New(0xC0FFEE)
	for i := 0; i < 10_000; i++ {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("draw %d: %#x != %#x", i, x, y)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 100 {
		t.Fatalf("sequences for seeds 1 and 2 are identical")
	}
}

func TestZeroSeedRejected(t *testing.T) {
	s := New(0)
	if s.State() != 1 {
		t.Fatalf("State() = %d, want 1", s.State())
	}
	ref := New(1)
	if got, want := s.Next(), ref.Next(); got != want {
		t.Fatalf("Next() = %#x, want %#x", got, want)
	}

	s.Seed(0)
	if s.State() == 0 {
		t.Fatalf("Seed(0) left a zero state")
	}
}

func TestNeverZero(t *testing.T) {
	s := New(0x9e3779b9)
	for i := 0; i < 100_000; i++ {
		if s.Next() == 0 {
			t.Fatalf("Next() returned 0 at draw %d", i)
		}
	}
}

func TestKnownSequence(t *testing.T) {
	// xorshift32 from state 1: 1 -> 270369 -> 67634689.
	s := New(1)
	if got := s.Next(); got != 270369 {
		t.Fatalf("Next() = %d, want 270369", got)
	}
	if got := s.Next(); got != 67634689 {
		t.Fatalf("Next() = %d, want 67634689", got)
	}
}

func TestFloat32Range(t *testing.T) {
	s := New(42)
	for i := 0; i < 10_000; i++ {
		f := s.Float32()
		if f < 0 || f >= 1 {
			t.Fatalf("Float32() = %v, want [0,1)", f)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max float32
	}{
		{"screen", 0, 320},
		{"symmetric", -0.9, 0.9},
		{"narrow", 10, 10.0001},
	}
	s := New(7)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 5_000; i++ {
				v := s.Range(tt.min, tt.max)
				if v < tt.min || v >= tt.max {
					t.Fatalf("Range(%v, %v) = %v", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestRangeEmpty(t *testing.T) {
	s := New(3)
	if got := s.Range(5, 5); got != 5 {
		t.Fatalf("Range(5, 5) = %v, want 5", got)
	}
	if got := s.Range(5, 1); got != 5 {
		t.Fatalf("Range(5, 1) = %v, want 5", got)
	}
}

func TestIntn(t *testing.T) {
	s := New(99)
	var seen [8]bool
	for i := 0; i < 1_000; i++ {
		v := s.Intn(8)
		if v < 0 || v >= 8 {
			t.Fatalf("Intn(8) = %d", v)
		}
		seen[v] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("Intn(8) never produced %d", i)
		}
	}
	if s.Intn(0) != 0 || s.Intn(-3) != 0 {
		t.Fatalf("Intn on empty range should be 0")
	}
}

func TestNilSource(t *testing.T) {
	var s *Source
	if s.Next() != 0 || s.State() != 0 {
		t.Fatalf("nil source should be inert")
	}
	s.Seed(5)
}
