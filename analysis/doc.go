// Package analysis runs the full diffraction pipeline over one scan.
//
// [Analyze] windows the scan, detects and ranks peaks, annotates them with
// FWHM, d-spacing and Scherrer size, and estimates crystallinity over the
// unwindowed scan. Stage failures are recorded on the [Report] rather than
// aborting the run, so a scan without peaks still yields its
// crystallinity and vice versa.
//
// Analyze keeps no state between calls; scans may be analysed
// concurrently.
package analysis
