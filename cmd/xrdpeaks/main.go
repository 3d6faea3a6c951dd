// Command xrdpeaks analyses X-ray diffraction scans exported as CSV.
//
// Usage:
//
//	xrdpeaks analyze [flags] scan.csv [scan.csv ...]
//	xrdpeaks peaks [flags] scan.csv
//	xrdpeaks crystallinity scan.csv
//	xrdpeaks dspacing [-wavelength 1.5406] 2theta [2theta ...]
//
// Settings come from defaults, an optional YAML file (--config or
// XRD_CONFIG), XRD_-prefixed environment variables and flags, in
// increasing precedence.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
