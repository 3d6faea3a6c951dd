// Package fwhm measures the full width at half maximum of a diffraction
// peak.
//
// The scan is resampled with a piecewise-linear interpolant (zero outside
// the measured range) onto a uniform grid centred on the peak. The left
// and right crossings are the first and last grid points whose sampled
// intensity reaches half the peak intensity. No smoothing or profile
// fitting is applied.
package fwhm
