package svgtransform

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/fixed"

	"github.com/perlDreamer/Image-SVG-Transform/matrix"
	"github.com/perlDreamer/Image-SVG-Transform/parser"
	"github.com/perlDreamer/Image-SVG-Transform/transform"
)

// Transformer holds the transforms parsed from one SVG transform
// attribute and maps points between local and viewport space.
//
// The combined transformation matrix (CTM) is derived from the command
// list on first use and cached; every successful ExtractTransforms
// invalidates it.
//
// Thread-safety model:
//   - ExtractTransforms mutates the command list and the cache
//   - Transform, Untransform and CTM read the list and may populate
//     the cache
//   - the Transformer performs no internal locking; callers using one
//     instance from multiple goroutines must serialize parses against
//     reads themselves
type Transformer struct {
	commands []transform.Command
	ctm      *mgl64.Mat3 // nil until computed
}

// New creates a Transformer with no transforms: both Transform and
// Untransform behave as the identity until ExtractTransforms succeeds.
func New() *Transformer {
	return &Transformer{}
}

// ExtractTransforms parses an SVG transform attribute and replaces the
// stored command list with the result, invalidating the cached CTM.
//
// An empty (or whitespace-only) string clears all stored transforms.
// On a parse error the previously stored commands and CTM are left
// untouched and the coded *parser.ParseError is returned.
func (t *Transformer) ExtractTransforms(raw string) error {
	cmds, err := parser.Parse(raw)
	if err != nil {
		return err
	}
	t.commands = cmds
	t.ctm = nil
	return nil
}

// Transforms returns a deep copy of the stored command list, in source
// order.
func (t *Transformer) Transforms() []transform.Command {
	return transform.CloneAll(t.commands)
}

// HasTransforms reports whether any transforms are stored.
func (t *Transformer) HasTransforms() bool {
	return len(t.commands) > 0
}

// CTM returns the combined transformation matrix for the stored
// commands, computing and caching it on first use. With no stored
// transforms it returns the identity.
func (t *Transformer) CTM() mgl64.Mat3 {
	if t.ctm == nil {
		m := matrix.Combine(t.commands)
		t.ctm = &m
	}
	return *t.ctm
}

// Transform maps a point from local to viewport space. With no stored
// transforms the input is returned unchanged.
func (t *Transformer) Transform(p Point) Point {
	if !t.HasTransforms() {
		return p
	}
	x, y := matrix.Apply(t.CTM(), p.X, p.Y)
	return Point{X: x, Y: y}
}

// Untransform maps a point from viewport back to local space using the
// inverse of the CTM. With no stored transforms the input is returned
// unchanged. Fails with *matrix.SingularMatrixError when the CTM has no
// inverse, e.g. after scale(0).
func (t *Transformer) Untransform(p Point) (Point, error) {
	if !t.HasTransforms() {
		return p, nil
	}
	inv, err := matrix.Invert(t.CTM())
	if err != nil {
		return Point{}, err
	}
	x, y := matrix.Apply(inv, p.X, p.Y)
	return Point{X: x, Y: y}, nil
}

// TransformFixed maps a fixed.Point26_6 from local to viewport space.
// Convenience for feeding transformed coordinates straight into
// rasterizers that work in 26.6 fixed point.
func (t *Transformer) TransformFixed(p fixed.Point26_6) fixed.Point26_6 {
	q := t.Transform(Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64})
	return fixed.Point26_6{
		X: fixed.Int26_6(q.X * 64),
		Y: fixed.Int26_6(q.Y * 64),
	}
}
