package quarkgl

import (
	"slices"
	"testing"
)

func TestDepthOrderStable(t *testing.T) {
	z := []float32{5, 1, 5, 3}
	all := func(int) bool { return true }
	got := DepthOrder(nil, len(z), all, func(i int) float32 { return z[i] })
	want := []int{1, 3, 0, 2}
	if !slices.Equal(got, want) {
		t.Fatalf("DepthOrder = %v, want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if z[got[i-1]] > z[got[i]] {
			t.Fatalf("depth sequence not non-decreasing: %v", got)
		}
	}
}

func TestDepthOrderSkipsInactive(t *testing.T) {
	z := []float32{4, 2, 9, 1, 2}
	active := []bool{true, false, true, true, true}
	got := DepthOrder(nil, len(z),
		func(i int) bool { return active[i] },
		func(i int) float32 { return z[i] })
	want := []int{3, 4, 0, 2}
	if !slices.Equal(got, want) {
		t.Fatalf("DepthOrder = %v, want %v", got, want)
	}
}

func TestDepthOrderEmpty(t *testing.T) {
	if got := DepthOrder(nil, 0, nil, nil); len(got) != 0 {
		t.Fatalf("DepthOrder(empty) = %v", got)
	}
	none := func(int) bool { return false }
	if got := DepthOrder(nil, 8, none, func(int) float32 { return 0 }); len(got) != 0 {
		t.Fatalf("DepthOrder(no active) = %v", got)
	}
}

func TestDepthOrderReusesBuffer(t *testing.T) {
	z := []float32{3, 2, 1, 0, -1, -2, -3, -4}
	all := func(int) bool { return true }
	depth := func(i int) float32 { return z[i] }
	buf := make([]int, 0, len(z))
	allocs := testing.AllocsPerRun(100, func() {
		buf = DepthOrder(buf, len(z), all, depth)
	})
	if allocs != 0 {
		t.Fatalf("DepthOrder allocs = %v, want 0", allocs)
	}
	if buf[0] != 7 || buf[7] != 0 {
		t.Fatalf("DepthOrder = %v, want reversed", buf)
	}
}
