package scan

import (
	"errors"
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		angles []float64
		ints   []float64
		want   error
	}{
		{name: "valid", angles: []float64{1, 2}, ints: []float64{0, 0}},
		{name: "too short", angles: []float64{1}, ints: []float64{1}, want: ErrTooShort},
		{name: "empty", want: ErrTooShort},
		{name: "length mismatch", angles: []float64{1, 2, 3}, ints: []float64{1, 2}, want: ErrLengthMismatch},
		{name: "duplicate angle", angles: []float64{1, 2, 2}, ints: []float64{1, 2, 3}, want: ErrNotIncreasing},
		{name: "descending", angles: []float64{3, 2, 1}, ints: []float64{1, 2, 3}, want: ErrNotIncreasing},
		{name: "nan intensity", angles: []float64{1, 2}, ints: []float64{1, math.NaN()}, want: ErrNonFinite},
		{name: "inf angle", angles: []float64{1, math.Inf(1)}, ints: []float64{1, 2}, want: ErrNonFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.angles, tc.ints)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	angles := []float64{1, 2, 3}
	ints := []float64{4, 5, 6}
	s := MustNew(angles, ints)

	angles[0] = 100
	ints[0] = 100

	if s.Angle(0) != 1 || s.Intensity(0) != 4 {
		t.Fatalf("scan aliased caller slices: (%v, %v)", s.Angle(0), s.Intensity(0))
	}
}

func TestDomain(t *testing.T) {
	s := MustNew([]float64{10, 11, 12.5}, []float64{1, 2, 3})
	lo, hi := s.Domain()
	if lo != 10 || hi != 12.5 {
		t.Fatalf("got [%v, %v], want [10, 12.5]", lo, hi)
	}

	lo, hi = Scan{}.Domain()
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Fatalf("empty domain: got [%v, %v], want NaN", lo, hi)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew([]float64{1}, []float64{1})
}
