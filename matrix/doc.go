// Package matrix is the engine that turns parsed transform commands
// into 3x3 homogeneous affine matrices and applies them to points.
//
// The linear algebra itself is delegated to mgl64 (construction,
// multiplication, determinant, inversion); this package contributes the
// per-command matrix forms, the SVG composition order, and the
// singularity check in front of inversion.
package matrix
