// Package testutil provides tolerance-based geometry assertions shared
// by the matrix, parser, and facade tests.
package testutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// Tolerance is the default comparison threshold for transformed
// coordinates. Matrix composition goes through trig functions, so exact
// equality is only expected for pure translate/scale pipelines.
const Tolerance = 1e-9

// AssertCoordsNear asserts that a transformed coordinate pair matches
// the expected values within Tolerance.
func AssertCoordsNear(t *testing.T, wantX, wantY, gotX, gotY float64, msgAndArgs ...any) bool {
	t.Helper()
	okX := assert.InDelta(t, wantX, gotX, Tolerance, msgAndArgs...)
	okY := assert.InDelta(t, wantY, gotY, Tolerance, msgAndArgs...)
	return okX && okY
}

// AssertMat3Near asserts that two matrices are equal within Tolerance,
// element by element. Comparison is a plain absolute delta per element;
// mgl's ApproxEqualThreshold tightens its threshold near zero, which
// rejects trig residue like cos(90deg) against an expected 0.
func AssertMat3Near(t *testing.T, want, got mgl64.Mat3, msgAndArgs ...any) bool {
	t.Helper()
	ok := true
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !assert.InDelta(t, want.At(r, c), got.At(r, c), Tolerance, msgAndArgs...) {
				ok = false
			}
		}
	}
	if !ok {
		t.Logf("want:\n%v\ngot:\n%v", want, got)
	}
	return ok
}

// Mat3FromRows builds a Mat3 from row-major values, the layout used in
// test tables and documentation.
func Mat3FromRows(rows [3][3]float64) mgl64.Mat3 {
	var m mgl64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return m
}
