package testutil

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values within eps to compare equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values outside eps to differ")
	}
	if NearlyEqual(math.NaN(), math.NaN(), 1) {
		t.Fatal("NaN must never compare equal")
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-10}, 1e-9)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, "value", 42)
}
