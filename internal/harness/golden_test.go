package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// goldenScenarios pin the parsed command list and CTM, not just the
// point mappings. Only numerically exact pipelines (no trig) belong
// here; rotate and skew CTMs are covered by tolerance-based scenarios.
var goldenScenarios = []string{
	"translate-then-scale",
	"matrix-passthrough",
}

func TestGoldenSnapshots(t *testing.T) {
	for _, name := range goldenScenarios {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}
