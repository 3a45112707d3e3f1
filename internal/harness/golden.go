package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the canonical JSON form of a successfully parsed
// scenario: the command list in source order plus the CTM as row-major
// values. Field order is fixed for deterministic golden comparison.
type Snapshot struct {
	ScenarioName string            `json:"scenario_name"`
	Transform    string            `json:"transform"`
	Commands     []CommandSnapshot `json:"commands"`
	CTM          [3][3]float64     `json:"ctm"`
}

// CommandSnapshot is one parsed command in the snapshot.
type CommandSnapshot struct {
	Kind   string    `json:"kind"`
	Params []float64 `json:"params"`
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, s *Scenario) error {
	t.Helper()

	res := Run(s)
	if res.ParseErr != nil {
		return fmt.Errorf("golden scenario %s failed to parse: %w", s.Name, res.ParseErr)
	}

	snapshot := Snapshot{
		ScenarioName: s.Name,
		Transform:    s.Transform,
	}
	for _, c := range res.Transformer.Transforms() {
		snapshot.Commands = append(snapshot.Commands, CommandSnapshot{
			Kind:   c.Kind.String(),
			Params: c.Params,
		})
	}
	ctm := res.Transformer.CTM()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			snapshot.CTM[r][c] = ctm.At(r, c)
		}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)
	return nil
}
