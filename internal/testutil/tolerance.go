package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNearlyEqual fails t if |got-want| exceeds eps (absolute tolerance).
func RequireNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, diff, eps)
	}
}

// RequireRelNearlyEqual fails t if got and want differ by more than eps
// relative to |want|. Values with |want| < 1 are compared absolutely.
func RequireRelNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	scale := math.Max(1, math.Abs(want))
	if diff := math.Abs(got - want); !(diff <= eps*scale) {
		t.Fatalf("%s: got %v, want %v (diff %v > rel eps %v)", name, got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data ...float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest |a[i]-b[i]| and the first index where it
// occurs. Slices of different length are an error.
func MaxAbsDiff(a, b []float64) (diff float64, at int, err error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("testutil: length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > diff {
			diff, at = d, i
		}
	}
	return diff, at, nil
}
