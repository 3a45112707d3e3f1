// Package svgtransform parses the SVG transform attribute and maps 2D
// points between local and viewport coordinate space.
//
// This is a Go port of the CPAN distribution Image::SVG::Transform.
//
// ARCHITECTURE:
//
// Three layers, dependency order:
//
//  1. transform - the command representation (kind + parameters),
//     imported by everything, imports nothing
//  2. parser - transform attribute grammar to command lists, with a
//     coded error taxonomy
//  3. matrix - per-command 3x3 affine matrices, composition into the
//     combined transformation matrix (CTM), forward and inverse point
//     mapping on top of mgl64
//
// This package ties the layers together in the Transformer type, which
// holds the parsed command list and lazily caches the CTM.
//
// Usage:
//
//	t := svgtransform.New()
//	if err := t.ExtractTransforms("translate(4,8) scale(0.5)"); err != nil {
//		// coded *parser.ParseError
//	}
//	viewport := t.Transform(svgtransform.Point{X: 2, Y: 2})
//	local, err := t.Untransform(viewport)
package svgtransform
