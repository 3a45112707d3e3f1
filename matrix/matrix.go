package matrix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/perlDreamer/Image-SVG-Transform/transform"
)

// SingularEpsilon is the determinant magnitude below which a combined
// matrix is treated as non-invertible.
const SingularEpsilon = 1e-12

// For builds the 3x3 homogeneous affine matrix for a single command.
//
// Angles (rotate, skewX, skewY) are given in degrees. Omitted optional
// parameters follow the SVG rules: scale(s) means scale(s, s) and
// translate(tx) means translate(tx, 0).
func For(c transform.Command) mgl64.Mat3 {
	switch c.Kind {
	case transform.Scale:
		sx := c.Params[0]
		sy := sx
		if len(c.Params) > 1 {
			sy = c.Params[1]
		}
		return mgl64.Scale2D(sx, sy)
	case transform.Translate:
		ty := 0.0
		if len(c.Params) > 1 {
			ty = c.Params[1]
		}
		return mgl64.Translate2D(c.Params[0], ty)
	case transform.Rotate:
		return mgl64.HomogRotate2D(mgl64.DegToRad(c.Params[0]))
	case transform.SkewX:
		return mgl64.ShearX2D(math.Tan(mgl64.DegToRad(c.Params[0])))
	case transform.SkewY:
		return mgl64.ShearY2D(math.Tan(mgl64.DegToRad(c.Params[0])))
	case transform.Matrix:
		p := c.Params
		// SVG matrix(a b c d e f) lists the columns (a,b,0) (c,d,0)
		// (e,f,1), which is exactly Mat3's column-major layout.
		return mgl64.Mat3{p[0], p[1], 0, p[2], p[3], 0, p[4], p[5], 1}
	}
	return mgl64.Ident3()
}

// Combine folds a command list into the combined transformation matrix.
//
// Commands are given in source order; each successive matrix multiplies
// from the left, so the first-written transform is applied to a point
// first and the last-written transform last, matching SVG's
// left-to-right nesting semantics. An empty list yields the identity.
func Combine(cmds []transform.Command) mgl64.Mat3 {
	m := mgl64.Ident3()
	for _, c := range cmds {
		m = For(c).Mul3(m)
	}
	return m
}

// Apply maps a point through the matrix using the homogeneous column
// [x y 1].
func Apply(m mgl64.Mat3, x, y float64) (float64, float64) {
	v := m.Mul3x1(mgl64.Vec3{x, y, 1})
	return v.X(), v.Y()
}

// Invert returns the inverse of m, or a SingularMatrixError when the
// determinant is below SingularEpsilon in magnitude.
func Invert(m mgl64.Mat3) (mgl64.Mat3, error) {
	det := m.Det()
	if math.Abs(det) < SingularEpsilon {
		return mgl64.Mat3{}, NewSingularMatrixError(det)
	}
	return m.Inv(), nil
}
