package interp

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-xrd/internal/testutil"
)

func TestLinearMatchesKnotsAndSegments(t *testing.T) {
	l, err := NewLinear([]float64{0, 1, 3}, []float64{0, 10, 30})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for _, tc := range []struct {
		x float64
		w float64
	}{
		{x: 0, w: 0},
		{x: 0.25, w: 2.5},
		{x: 1, w: 10},
		{x: 2, w: 20},
		{x: 3, w: 30},
	} {
		if got := l.At(tc.x); !testutil.NearlyEqual(got, tc.w, 1e-12) {
			t.Fatalf("x=%v: got %v want %v", tc.x, got, tc.w)
		}
	}
}

func TestLinearClampsToZeroOutsideDomain(t *testing.T) {
	l, err := NewLinear([]float64{10, 11}, []float64{5, 7})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	for _, x := range []float64{-1, 9.999, 11.001, 100} {
		if got := l.At(x); got != 0 {
			t.Fatalf("x=%v: got %v want 0", x, got)
		}
	}
}

func TestNewLinearErrors(t *testing.T) {
	if _, err := NewLinear([]float64{1}, []float64{1}); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("single point: got %v", err)
	}
	if _, err := NewLinear([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("mismatched lengths: expected error")
	}
	if _, err := NewLinear([]float64{1, 1}, []float64{1, 2}); err == nil {
		t.Fatal("repeated x: expected error")
	}
}

func TestSampleGrid(t *testing.T) {
	l, err := NewLinear([]float64{0, 4}, []float64{0, 8})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	grid, values, err := l.Sample(-1, 5, 7)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, grid, []float64{-1, 0, 1, 2, 3, 4, 5}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, values, []float64{0, 0, 2, 4, 6, 8, 0}, 1e-12)

	if _, _, err := l.Sample(0, 1, 1); err == nil {
		t.Fatal("grid of one point: expected error")
	}
}
