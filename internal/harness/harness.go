package harness

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svgtransform "github.com/perlDreamer/Image-SVG-Transform"
	"github.com/perlDreamer/Image-SVG-Transform/internal/testutil"
	"github.com/perlDreamer/Image-SVG-Transform/matrix"
	"github.com/perlDreamer/Image-SVG-Transform/parser"
)

// Result captures one scenario execution. Exactly one of Transformer
// (parse succeeded) and ParseErr (parse failed) is meaningful.
type Result struct {
	Transformer *svgtransform.Transformer
	ParseErr    error
}

// Run executes a scenario's parse step and returns the outcome. Point
// expectations are checked separately by Assert so that error
// scenarios and golden scenarios share the same execution path.
func Run(s *Scenario) *Result {
	slog.Debug("running scenario", "name", s.Name, "transform", s.Transform)

	tr := svgtransform.New()
	if err := tr.ExtractTransforms(s.Transform); err != nil {
		slog.Debug("parse failed", "name", s.Name, "code", parser.CodeOf(err))
		return &Result{ParseErr: err}
	}
	return &Result{Transformer: tr}
}

// Assert checks a scenario's expectations against an execution result.
func Assert(t *testing.T, s *Scenario, res *Result) {
	t.Helper()

	if s.Error != "" {
		require.Error(t, res.ParseErr, "expected parse error %s", s.Error)
		assert.Equal(t, parser.ParseErrorCode(s.Error), parser.CodeOf(res.ParseErr))
		return
	}

	require.NoError(t, res.ParseErr)
	tr := res.Transformer

	for i, pc := range s.Points {
		in := svgtransform.Point{X: pc.Input[0], Y: pc.Input[1]}

		if len(pc.Forward) == 2 {
			got := tr.Transform(in)
			testutil.AssertCoordsNear(t, pc.Forward[0], pc.Forward[1], got.X, got.Y,
				"points[%d] forward", i)
		}

		switch {
		case s.InverseError != "":
			_, err := tr.Untransform(in)
			require.Error(t, err, "points[%d] expected inverse error", i)
			assert.True(t, matrix.IsSingularError(err), "points[%d] expected %s", i, s.InverseError)
		case len(pc.Inverse) == 2:
			got, err := tr.Untransform(in)
			require.NoError(t, err, "points[%d] inverse", i)
			testutil.AssertCoordsNear(t, pc.Inverse[0], pc.Inverse[1], got.X, got.Y,
				"points[%d] inverse", i)
		}
	}
}
