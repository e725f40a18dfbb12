package gameforge

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats and float-backed types within epsilon.
var approx = cmpopts.EquateApprox(0, epsilon)

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2f) {
	t.Helper()
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
