package peak

import (
	"math"

	"github.com/cwbudde/algo-xrd/scan"
)

// Candidate is a local maximum with its detection metadata.
type Candidate struct {
	Index      int     // sample index in the scan
	Angle      float64 // 2θ in degrees
	Intensity  float64
	Prominence float64
	LeftBase   int     // index of the left prominence base
	RightBase  int     // index of the right prominence base
	BaseWidth  float64 // angular distance between the bases
}

// Candidates returns every strict local maximum of s in ascending angle
// order, annotated with prominence. The first and last samples are never
// candidates.
func Candidates(s scan.Scan) []Candidate {
	y := s.Intensities()
	var out []Candidate
	for i := 1; i < len(y)-1; i++ {
		if y[i] <= y[i-1] || y[i] <= y[i+1] {
			continue
		}
		prom, left, right := prominence(y, i)
		out = append(out, Candidate{
			Index:      i,
			Angle:      s.Angle(i),
			Intensity:  y[i],
			Prominence: prom,
			LeftBase:   left,
			RightBase:  right,
			BaseWidth:  s.Angle(right) - s.Angle(left),
		})
	}
	return out
}

// prominence walks outward from peak i until terrain rises above the peak
// or the data ends, tracking the lowest point on each side. The prominence
// is the peak height above the higher of the two minima.
func prominence(y []float64, i int) (prom float64, left, right int) {
	peak := y[i]

	left, leftMin := i, peak
	for j := i - 1; j >= 0 && y[j] <= peak; j-- {
		if y[j] < leftMin {
			leftMin, left = y[j], j
		}
	}

	right, rightMin := i, peak
	for j := i + 1; j < len(y) && y[j] <= peak; j++ {
		if y[j] < rightMin {
			rightMin, right = y[j], j
		}
	}

	return peak - math.Max(leftMin, rightMin), left, right
}
