package testutil

import (
	"math"
	"math/rand"
)

// Reflection describes one synthetic diffraction line.
type Reflection struct {
	Center     float64 // 2θ in degrees
	Height     float64 // above background
	FWHM       float64 // degrees
	Lorentzian bool
}

// Grid returns n angles starting at start with spacing step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Pattern evaluates a flat background plus the given reflections at each
// angle. Gaussian lines are used unless Lorentzian is set.
func Pattern(angles []float64, background float64, refl ...Reflection) []float64 {
	out := make([]float64, len(angles))
	for i, x := range angles {
		v := background
		for _, r := range refl {
			v += r.Height * profile(x-r.Center, r.FWHM, r.Lorentzian)
		}
		out[i] = v
	}
	return out
}

func profile(dx, fwhm float64, lorentzian bool) float64 {
	if lorentzian {
		g := fwhm / 2
		return g * g / (dx*dx + g*g)
	}
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	return math.Exp(-dx * dx / (2 * sigma * sigma))
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
