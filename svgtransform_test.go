package svgtransform_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	svgtransform "github.com/perlDreamer/Image-SVG-Transform"
	"github.com/perlDreamer/Image-SVG-Transform/internal/testutil"
	"github.com/perlDreamer/Image-SVG-Transform/matrix"
	"github.com/perlDreamer/Image-SVG-Transform/parser"
	"github.com/perlDreamer/Image-SVG-Transform/transform"
)

func TestNew_NoTransforms(t *testing.T) {
	tr := svgtransform.New()
	assert.False(t, tr.HasTransforms())
	assert.Empty(t, tr.Transforms())
}

func TestTransform_IdentityWithoutCommands(t *testing.T) {
	tr := svgtransform.New()
	p := svgtransform.Point{X: 12, Y: -7}
	assert.Equal(t, p, tr.Transform(p))

	q, err := tr.Untransform(p)
	require.NoError(t, err)
	assert.Equal(t, p, q)
}

func TestExtractTransforms_StoresCommands(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("translate(4,8) scale(0.5)"))

	want := []transform.Command{
		{Kind: transform.Translate, Params: []float64{4, 8}},
		{Kind: transform.Scale, Params: []float64{0.5}},
	}
	assert.Equal(t, want, tr.Transforms())
	assert.True(t, tr.HasTransforms())
}

func TestExtractTransforms_EmptyStringClears(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("scale(2)"))
	require.True(t, tr.HasTransforms())

	require.NoError(t, tr.ExtractTransforms(""))
	assert.False(t, tr.HasTransforms())

	p := svgtransform.Point{X: 3, Y: 4}
	assert.Equal(t, p, tr.Transform(p), "cleared transformer is the identity")
}

func TestExtractTransforms_FailureRetainsPriorState(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("scale(2)"))

	err := tr.ExtractTransforms("scalx(1 2)")
	require.Error(t, err)
	assert.Equal(t, parser.ErrCodeUnknownTransformType, parser.CodeOf(err))

	// The earlier scale(2) still applies.
	want := []transform.Command{{Kind: transform.Scale, Params: []float64{2}}}
	assert.Equal(t, want, tr.Transforms())

	got := tr.Transform(svgtransform.Point{X: 1, Y: 1})
	testutil.AssertCoordsNear(t, 2, 2, got.X, got.Y)
}

func TestTransforms_CopyIsNotAliased(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("translate(4,8)"))

	cmds := tr.Transforms()
	cmds[0].Params[0] = 99

	assert.Equal(t, 4.0, tr.Transforms()[0].Params[0])
}

func TestCTM_SingleTranslate(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("translate(1,1)"))

	want := testutil.Mat3FromRows([3][3]float64{
		{1, 0, 1},
		{0, 1, 1},
		{0, 0, 1},
	})
	testutil.AssertMat3Near(t, want, tr.CTM())
}

func TestCTM_IdentityWithoutCommands(t *testing.T) {
	tr := svgtransform.New()
	assert.Equal(t, mgl64.Ident3(), tr.CTM())
}

func TestCTM_InvalidatedByReparse(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("scale(2)"))
	first := tr.CTM()

	require.NoError(t, tr.ExtractTransforms("scale(4)"))
	second := tr.CTM()

	assert.NotEqual(t, first, second, "cache must be invalidated by a successful parse")
	assert.Equal(t, 4.0, second.At(0, 0))
}

func TestCTM_StableAcrossCalls(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("rotate(30, 5, 5) skewX(10)"))
	assert.Equal(t, tr.CTM(), tr.CTM())
}

func TestTransform_AppliesSourceOrder(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("translate(4,8) scale(0.5)"))

	// Translate first, then scale: (2,2) -> (6,10) -> (3,5).
	got := tr.Transform(svgtransform.Point{X: 2, Y: 2})
	testutil.AssertCoordsNear(t, 3, 5, got.X, got.Y)
}

func TestUntransform_RevertsTranslate(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("translate(1,1)"))

	got, err := tr.Untransform(svgtransform.Point{X: 2, Y: 2})
	require.NoError(t, err)
	testutil.AssertCoordsNear(t, 1, 1, got.X, got.Y)
}

func TestUntransform_RevertsScale(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("scale(3)"))

	got, err := tr.Untransform(svgtransform.Point{X: 36, Y: 21})
	require.NoError(t, err)
	testutil.AssertCoordsNear(t, 12, 7, got.X, got.Y)

	require.NoError(t, tr.ExtractTransforms("scale(2,4)"))
	got, err = tr.Untransform(svgtransform.Point{X: 8, Y: 16})
	require.NoError(t, err)
	testutil.AssertCoordsNear(t, 4, 4, got.X, got.Y)
}

func TestUntransform_SingularCTM(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("scale(0)"))

	_, err := tr.Untransform(svgtransform.Point{X: 1, Y: 1})
	require.Error(t, err)
	assert.True(t, matrix.IsSingularError(err))
}

func TestRoundTrip_Law(t *testing.T) {
	attrs := []string{
		"translate(4,8)",
		"scale(2,4)",
		"rotate(33)",
		"rotate(90, 10, 10)",
		"skewX(15) skewY(-20)",
		"matrix(1,2,3,4,5,6) translate(-3,9) rotate(45)",
	}
	points := []svgtransform.Point{
		{X: 0, Y: 0},
		{X: 12, Y: 7},
		{X: -4.5, Y: 1e3},
	}

	for _, attr := range attrs {
		tr := svgtransform.New()
		require.NoError(t, tr.ExtractTransforms(attr))
		for _, p := range points {
			back, err := tr.Untransform(tr.Transform(p))
			require.NoError(t, err, "attr %q", attr)
			testutil.AssertCoordsNear(t, p.X, p.Y, back.X, back.Y, "attr %q point %+v", attr, p)
		}
	}
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("translate(5,5)"))

	p := svgtransform.Point{X: 1, Y: 1}
	_ = tr.Transform(p)
	assert.Equal(t, svgtransform.Point{X: 1, Y: 1}, p)
}

func TestTransformFixed(t *testing.T) {
	tr := svgtransform.New()
	require.NoError(t, tr.ExtractTransforms("translate(4,8)"))

	p := fixed.P(2, 2) // (2,2) in 26.6 fixed point
	q := tr.TransformFixed(p)

	assert.Equal(t, fixed.P(6, 10), q)
}

func TestTransformFixed_IdentityWithoutCommands(t *testing.T) {
	tr := svgtransform.New()
	p := fixed.P(-3, 11)
	assert.Equal(t, p, tr.TransformFixed(p))
}
