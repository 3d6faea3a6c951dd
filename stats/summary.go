// Package stats summarises the intensity distribution of a scan.
package stats

import (
	"math"

	"github.com/cwbudde/algo-xrd/scan"
)

// Summary holds descriptive statistics of a scan.
type Summary struct {
	Points int

	Start float64 // first 2θ
	End   float64 // last 2θ
	Step  float64 // mean 2θ increment

	Min      float64
	MinAngle float64
	Max      float64
	MaxAngle float64

	Mean     float64
	StdDev   float64 // population
	Skewness float64
	Kurtosis float64 // excess

	// Contrast is Max/Min, 0 when Min is not positive.
	Contrast float64
}

// Summarize computes a Summary of s in a single pass. Higher moments use
// Welford's online update. An empty scan yields the zero Summary.
func Summarize(s scan.Scan) Summary {
	n := s.Len()
	if n == 0 {
		return Summary{}
	}

	ys := s.Intensities()

	var mean, m2, m3, m4 float64

	minVal, maxVal := ys[0], ys[0]
	minPos, maxPos := 0, 0

	for i, y := range ys {
		ni := float64(i + 1)
		delta := y - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// m4 before m3 before m2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if y > maxVal {
			maxVal, maxPos = y, i
		}
		if y < minVal {
			minVal, minPos = y, i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	lo, hi := s.Domain()

	var step float64
	if n > 1 {
		step = (hi - lo) / float64(n-1)
	}

	var contrast float64
	if minVal > 0 {
		contrast = maxVal / minVal
	}

	return Summary{
		Points:   n,
		Start:    lo,
		End:      hi,
		Step:     step,
		Min:      minVal,
		MinAngle: s.Angle(minPos),
		Max:      maxVal,
		MaxAngle: s.Angle(maxPos),
		Mean:     mean,
		StdDev:   math.Sqrt(variance),
		Skewness: skewness,
		Kurtosis: kurtosis,
		Contrast: contrast,
	}
}
