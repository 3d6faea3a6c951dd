package fwhm

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-xrd/dsp/interp"
	"github.com/cwbudde/algo-xrd/internal/testutil"
	"github.com/cwbudde/algo-xrd/measure/peak"
	"github.com/cwbudde/algo-xrd/scan"
)

func triangleScan() scan.Scan {
	return scan.MustNew(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{0, 0, 0, 0, 50, 100, 50, 0, 0, 0, 0},
	)
}

func TestEstimateTriangle(t *testing.T) {
	s := triangleScan()
	p := peak.Peak{Rank: 1, Angle: 5, Intensity: 100}

	res, err := Estimate(s, p, WithWindow(2))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	step := 4.0 / float64(DefaultGridPoints-1)
	testutil.RequireNearlyEqual(t, "half max", res.HalfMax, 50, 0)
	testutil.RequireNearlyEqual(t, "left", res.Left, 4, step)
	testutil.RequireNearlyEqual(t, "right", res.Right, 6, step)
	testutil.RequireNearlyEqual(t, "width", res.Width, 2, 2*step)
	if res.Peak != p {
		t.Fatalf("peak not carried through: %+v", res.Peak)
	}
}

func TestEstimateCoarseGrid(t *testing.T) {
	res, err := Estimate(triangleScan(), peak.Peak{Angle: 5, Intensity: 100}, WithGridPoints(3))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if res.Left != 4 || res.Right != 6 || res.Width != 2 {
		t.Fatalf("got %+v, want left=4 right=6 width=2", res)
	}
}

func TestEstimateGaussian(t *testing.T) {
	angles := testutil.Grid(28, 0.01, 401)
	ints := testutil.Pattern(angles, 0, testutil.Reflection{Center: 30, Height: 1000, FWHM: 0.4})
	s := scan.MustNew(angles, ints)

	peaks, err := peak.Find(s, peak.WithHeight(500))
	if err != nil || len(peaks) != 1 {
		t.Fatalf("Find: %v, %d peaks", err, len(peaks))
	}

	res, err := Estimate(s, peaks[0])
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	testutil.RequireNearlyEqual(t, "width", res.Width, 0.4, 0.01)
}

func TestEstimateCrossingProperties(t *testing.T) {
	angles := testutil.Grid(40, 0.02, 201)
	ints := testutil.Pattern(angles, 30, testutil.Reflection{Center: 42, Height: 800, FWHM: 0.5, Lorentzian: true})
	s := scan.MustNew(angles, ints)

	peaks, err := peak.Find(s, peak.WithProminence(100))
	if err != nil || len(peaks) != 1 {
		t.Fatalf("Find: %v, %d peaks", err, len(peaks))
	}
	p := peaks[0]

	res, err := Estimate(s, p)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	lin, err := interp.NewLinear(s.Angles(), s.Intensities())
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}
	step := 2 * DefaultWindow / float64(DefaultGridPoints-1)

	if res.Left > p.Angle || res.Right < p.Angle {
		t.Fatalf("crossings [%v, %v] do not bracket peak %v", res.Left, res.Right, p.Angle)
	}
	if lin.At(res.Left) < res.HalfMax || lin.At(res.Right) < res.HalfMax {
		t.Fatal("crossing below half max")
	}
	if lin.At(res.Left-step) >= res.HalfMax {
		t.Fatalf("point before left crossing already reaches half max")
	}
	if lin.At(res.Right+step) >= res.HalfMax {
		t.Fatalf("point after right crossing still reaches half max")
	}
}

func TestEstimateNoCrossing(t *testing.T) {
	s := triangleScan()

	tests := []struct {
		name string
		p    peak.Peak
	}{
		{name: "half max above data", p: peak.Peak{Angle: 5, Intensity: 1e6}},
		{name: "window outside domain", p: peak.Peak{Angle: 50, Intensity: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Estimate(s, tc.p)
			if !errors.Is(err, ErrNoCrossing) {
				t.Fatalf("got %v, want ErrNoCrossing", err)
			}
		})
	}
}

func TestEstimateTooShort(t *testing.T) {
	_, err := Estimate(scan.Scan{}, peak.Peak{Angle: 5, Intensity: 100})
	if !errors.Is(err, interp.ErrTooFewPoints) {
		t.Fatalf("got %v, want ErrTooFewPoints", err)
	}
}
