// Package scan holds the diffraction scan model shared by the measure
// packages.
//
// A [Scan] is an ordered series of (2θ, intensity) samples with strictly
// increasing angles. Scans are immutable once constructed: [Scan.Window]
// returns a view over the same samples, and every measure package reads
// scans without modifying them, so a Scan may be shared freely between
// goroutines.
//
// # Usage
//
//	s, err := scan.New(angles, intensities)
//	if err != nil {
//		return err
//	}
//	w, err := s.Window(20, 80)
package scan
