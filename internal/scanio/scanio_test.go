package scanio

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xrd/scan"
)

func TestReadNormalizesHeaders(t *testing.T) {
	in := " 2Theta ,  INTENSITY \n10,1\n11,2\n12,3\n"

	s, err := Read(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 12}, s.Angles())
	assert.Equal(t, []float64{1, 2, 3}, s.Intensities())
}

func TestReadExplicitColumns(t *testing.T) {
	in := "x;y;z\n1;100;9\n2;200;8\n"

	s, err := Read(strings.NewReader(in), Options{AngleColumn: "X", IntensityColumn: " z ", Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Angles())
	assert.Equal(t, []float64{9, 8}, s.Intensities())
}

func TestReadSortsRows(t *testing.T) {
	in := "angle,counts\n3,30\n1,10\n2,20\n"

	s, err := Read(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, s.Angles())
	assert.Equal(t, []float64{10, 20, 30}, s.Intensities())
}

func TestReadMissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2\n"), Options{})
	assert.True(t, errors.Is(err, ErrMissingColumn), "got %v", err)

	_, err = Read(strings.NewReader("2theta,intensity\n1,2\n"), Options{IntensityColumn: "counts"})
	assert.True(t, errors.Is(err, ErrMissingColumn), "got %v", err)
}

func TestReadNoRows(t *testing.T) {
	_, err := Read(strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = Read(strings.NewReader("2theta,intensity\n,\nx,y\n"), Options{})
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestReadDuplicateAngles(t *testing.T) {
	_, err := Read(strings.NewReader("2theta,intensity\n1,2\n1,3\n"), Options{})
	assert.ErrorIs(t, err, scan.ErrNotIncreasing)
}

func TestReadFileDropsIncompleteRows(t *testing.T) {
	s, err := ReadFile(filepath.Join("testdata", "hematite.csv"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []float64{110, 112, 118, 121}, s.Intensities())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join("testdata", "absent.csv"), Options{})
	assert.Error(t, err)
}
