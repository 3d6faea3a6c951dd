package scan

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Errors returned by scan construction and windowing.
var (
	ErrTooShort       = errors.New("scan: at least two samples required")
	ErrLengthMismatch = errors.New("scan: angles and intensities must have same length")
	ErrNotIncreasing  = errors.New("scan: angles must be strictly increasing")
	ErrNonFinite      = errors.New("scan: sample is NaN or Inf")
	ErrInvalidRange   = errors.New("scan: min angle exceeds max angle")
)

// Scan is an ordered series of diffraction samples.
//
// The zero value is an empty scan. Scans returned by [New] hold at least
// two samples; windows derived from them may hold fewer.
type Scan struct {
	angles      []float64
	intensities []float64
}

// New validates and copies the given samples into a Scan.
func New(angles, intensities []float64) (Scan, error) {
	if len(angles) != len(intensities) {
		return Scan{}, fmt.Errorf("%w: %d angles, %d intensities", ErrLengthMismatch, len(angles), len(intensities))
	}
	if len(angles) < 2 {
		return Scan{}, fmt.Errorf("%w: got %d", ErrTooShort, len(angles))
	}
	for i := range angles {
		if !isFinite(angles[i]) || !isFinite(intensities[i]) {
			return Scan{}, fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
		if i > 0 && angles[i] <= angles[i-1] {
			return Scan{}, fmt.Errorf("%w: angle[%d]=%v after %v", ErrNotIncreasing, i, angles[i], angles[i-1])
		}
	}

	return Scan{
		angles:      slices.Clone(angles),
		intensities: slices.Clone(intensities),
	}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// fixed fixtures.
func MustNew(angles, intensities []float64) Scan {
	s, err := New(angles, intensities)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of samples.
func (s Scan) Len() int { return len(s.angles) }

// Empty reports whether the scan holds no samples.
func (s Scan) Empty() bool { return len(s.angles) == 0 }

// Angle returns the 2θ value of sample i in degrees.
func (s Scan) Angle(i int) float64 { return s.angles[i] }

// Intensity returns the intensity of sample i.
func (s Scan) Intensity(i int) float64 { return s.intensities[i] }

// Angles returns the angle column. The slice aliases the scan and must not
// be modified.
func (s Scan) Angles() []float64 { return s.angles }

// Intensities returns the intensity column. The slice aliases the scan and
// must not be modified.
func (s Scan) Intensities() []float64 { return s.intensities }

// Domain returns the first and last angle. It returns (NaN, NaN) for an
// empty scan.
func (s Scan) Domain() (lo, hi float64) {
	if len(s.angles) == 0 {
		return math.NaN(), math.NaN()
	}
	return s.angles[0], s.angles[len(s.angles)-1]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
