// Package interp provides the piecewise-linear interpolant used to resample
// diffraction scans onto fine angular grids.
//
// [Linear] joins consecutive samples with straight segments and reads as
// zero outside the sampled domain; it never extrapolates. [Linear.Sample]
// evaluates the interpolant on a uniform grid.
package interp
