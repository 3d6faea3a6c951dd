package scan

import (
	"fmt"
	"math"
	"sort"
)

// Window returns the samples with minAngle <= angle <= maxAngle as a view
// over s, preserving order. The result is empty, not an error, when no
// sample falls inside the range.
func (s Scan) Window(minAngle, maxAngle float64) (Scan, error) {
	if math.IsNaN(minAngle) || math.IsNaN(maxAngle) || minAngle > maxAngle {
		return Scan{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, minAngle, maxAngle)
	}

	lo, hi := s.bounds(minAngle, maxAngle)
	if lo >= hi {
		return Scan{}, nil
	}

	// Capacity is clipped so appends to the view never write into s.
	return Scan{
		angles:      s.angles[lo:hi:hi],
		intensities: s.intensities[lo:hi:hi],
	}, nil
}

// bounds returns the half-open index range [lo, hi) of samples inside the
// closed interval [minAngle, maxAngle].
func (s Scan) bounds(minAngle, maxAngle float64) (lo, hi int) {
	lo = sort.SearchFloat64s(s.angles, minAngle)
	hi = sort.Search(len(s.angles), func(i int) bool {
		return s.angles[i] > maxAngle
	})
	return lo, hi
}
