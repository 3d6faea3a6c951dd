// Package peak detects diffraction peaks in a windowed scan.
//
// Detection follows the usual find-peaks recipe:
//
//   - local maxima strictly above both neighbours (plateaus are ignored)
//   - topographic prominence filter
//   - minimum height filter
//   - minimum angular spacing, higher peaks win
//   - intensity band filter, exclusive below and inclusive above
//   - rank by intensity (ties by lower angle) and truncate
//
// # Usage
//
//	w, _ := s.Window(20, 80)
//	peaks, err := peak.Find(w,
//		peak.WithHeight(200),
//		peak.WithProminence(50),
//		peak.WithIntensityBand(200, 20000),
//		peak.WithMaxCount(11),
//	)
package peak
