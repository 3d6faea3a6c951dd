// Package scanio reads diffraction scans from delimited text exports.
//
// Header names are trimmed and lower-cased before matching, so " 2Theta"
// and "2theta" name the same column. Rows with a blank or non-numeric
// angle or intensity are skipped, and the remaining rows are sorted by
// angle before the scan is built.
package scanio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-xrd/scan"
)

// Errors returned while reading scans.
var (
	ErrMissingColumn = errors.New("scanio: required column not found")
	ErrNoRows        = errors.New("scanio: no usable rows")
)

// Default column aliases, already normalized.
var (
	AngleAliases     = []string{"2theta", "2θ", "two_theta", "2-theta", "angle", "theta"}
	IntensityAliases = []string{"intensity", "intensity (a.u)", "intensity (a.u.)", "counts"}
)

// Options selects the columns to read. Empty names fall back to the alias
// lists.
type Options struct {
	AngleColumn     string
	IntensityColumn string
	Comma           rune
}

// Normalize trims and lower-cases a column name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

// ReadFile opens path and reads a scan from it.
func ReadFile(path string, opts Options) (scan.Scan, error) {
	f, err := os.Open(path)
	if err != nil {
		return scan.Scan{}, err
	}
	defer f.Close()

	s, err := Read(f, opts)
	if err != nil {
		return scan.Scan{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses a header row followed by data rows.
func Read(r io.Reader, opts Options) (scan.Scan, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return scan.Scan{}, ErrNoRows
		}
		return scan.Scan{}, err
	}

	ai, err := column(header, opts.AngleColumn, AngleAliases)
	if err != nil {
		return scan.Scan{}, err
	}
	ii, err := column(header, opts.IntensityColumn, IntensityAliases)
	if err != nil {
		return scan.Scan{}, err
	}

	var rows []sample
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return scan.Scan{}, err
		}
		a, okA := field(rec, ai)
		v, okV := field(rec, ii)
		if !okA || !okV {
			continue
		}
		rows = append(rows, sample{angle: a, intensity: v})
	}

	if len(rows) == 0 {
		return scan.Scan{}, ErrNoRows
	}

	slices.SortStableFunc(rows, func(x, y sample) int {
		switch {
		case x.angle < y.angle:
			return -1
		case x.angle > y.angle:
			return 1
		}
		return 0
	})

	angles := make([]float64, len(rows))
	ints := make([]float64, len(rows))
	for i, row := range rows {
		angles[i] = row.angle
		ints[i] = row.intensity
	}
	return scan.New(angles, ints)
}

type sample struct {
	angle, intensity float64
}

func column(header []string, want string, aliases []string) (int, error) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = Normalize(h)
	}

	if want != "" {
		if i := slices.Index(names, Normalize(want)); i >= 0 {
			return i, nil
		}
		return -1, fmt.Errorf("%w: %q (have %v)", ErrMissingColumn, want, names)
	}
	for _, alias := range aliases {
		if i := slices.Index(names, alias); i >= 0 {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: none of %v (have %v)", ErrMissingColumn, aliases, names)
}

func field(rec []string, i int) (float64, bool) {
	if i >= len(rec) {
		return 0, false
	}
	s := strings.TrimSpace(rec[i])
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
