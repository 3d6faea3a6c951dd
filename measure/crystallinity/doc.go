// Package crystallinity estimates the crystalline fraction of a
// diffraction scan by baseline-subtracted area integration.
//
// The amorphous background is modelled as a single baseline level
// ([MinimumBaseline] by default). The total area integrates the raw
// intensity, the crystalline area integrates intensity minus baseline;
// both use the trapezoidal rule over the actual angle spacing.
//
// # Usage
//
//	res, err := crystallinity.Estimate(s)
//	fmt.Printf("%.2f %% crystalline\n", res.Percent)
package crystallinity
