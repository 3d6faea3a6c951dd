// Package bragg converts between diffraction angles and lattice spacings.
package bragg

import (
	"errors"
	"fmt"
	"math"
)

// CuKAlpha1 is the Cu-Kα1 X-ray wavelength in ångström.
const CuKAlpha1 = 1.5406

// ScherrerK is the shape factor used by CrystalliteSize.
const ScherrerK = 0.9

// Errors returned by Bragg conversions.
var (
	ErrInvalidAngle      = errors.New("bragg: 2θ must be in (0, 180) degrees")
	ErrInvalidWavelength = errors.New("bragg: wavelength must be positive")
	ErrInvalidSpacing    = errors.New("bragg: spacing not reachable at this wavelength")
	ErrInvalidWidth      = errors.New("bragg: peak width must be positive")
)

// DSpacing returns the interplanar spacing d = λ / (2 sin θ) for a peak at
// twoTheta degrees. d has the unit of wavelength.
func DSpacing(twoTheta, wavelength float64) (float64, error) {
	if err := validate(twoTheta, wavelength); err != nil {
		return 0, err
	}
	return wavelength / (2 * math.Sin(theta(twoTheta))), nil
}

// TwoTheta inverts DSpacing: it returns the 2θ angle in degrees at which
// spacing d diffracts.
func TwoTheta(d, wavelength float64) (float64, error) {
	if !(wavelength > 0) || math.IsInf(wavelength, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWavelength, wavelength)
	}
	s := wavelength / (2 * d)
	if !(d > 0) || s >= 1 {
		return 0, fmt.Errorf("%w: d=%v λ=%v", ErrInvalidSpacing, d, wavelength)
	}
	return 2 * math.Asin(s) * 180 / math.Pi, nil
}

// CrystalliteSize returns the Scherrer estimate K·λ / (β cos θ) where β is
// the peak FWHM in radians. The result has the unit of wavelength. No
// instrumental broadening correction is applied.
func CrystalliteSize(twoTheta, fwhmDeg, wavelength float64) (float64, error) {
	if err := validate(twoTheta, wavelength); err != nil {
		return 0, err
	}
	if !(fwhmDeg > 0) || math.IsInf(fwhmDeg, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWidth, fwhmDeg)
	}
	beta := fwhmDeg * math.Pi / 180
	return ScherrerK * wavelength / (beta * math.Cos(theta(twoTheta))), nil
}

func validate(twoTheta, wavelength float64) error {
	if !(twoTheta > 0 && twoTheta < 180) {
		return fmt.Errorf("%w: %v", ErrInvalidAngle, twoTheta)
	}
	if !(wavelength > 0) || math.IsInf(wavelength, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWavelength, wavelength)
	}
	return nil
}

func theta(twoTheta float64) float64 {
	return twoTheta / 2 * math.Pi / 180
}
