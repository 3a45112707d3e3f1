package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/perlDreamer/Image-SVG-Transform/matrix"
	"github.com/perlDreamer/Image-SVG-Transform/parser"
)

// Scenario defines one conformance case for the transform pipeline.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden scenarios use it
	// as the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Transform is the raw SVG transform attribute under test.
	Transform string `yaml:"transform"`

	// Error is the expected parse error code, e.g. "TOO_MANY_PARAMETERS".
	// When set, Points and InverseError must be empty.
	Error string `yaml:"error,omitempty"`

	// InverseError is the expected error code when untransforming the
	// point inputs, e.g. "SINGULAR_MATRIX".
	InverseError string `yaml:"inverse_error,omitempty"`

	// Points lists coordinate mappings to verify.
	Points []PointCase `yaml:"points,omitempty"`
}

// PointCase maps one input coordinate through the pipeline.
type PointCase struct {
	// Input is the [x, y] pair fed to both Transform and Untransform.
	Input []float64 `yaml:"input"`

	// Forward is the expected Transform(Input) result, if checked.
	Forward []float64 `yaml:"forward,omitempty"`

	// Inverse is the expected Untransform(Input) result, if checked.
	Inverse []float64 `yaml:"inverse,omitempty"`
}

// knownParseErrorCodes guards against typos in scenario files.
var knownParseErrorCodes = map[string]bool{
	string(parser.ErrCodeUnparseableInput):     true,
	string(parser.ErrCodeUnknownTransformType): true,
	string(parser.ErrCodeNoParameters):         true,
	string(parser.ErrCodeTooManyParameters):    true,
	string(parser.ErrCodeInvalidRotateArity):   true,
	string(parser.ErrCodeInvalidMatrixArity):   true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "point:" vs "points:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted by
// file name for deterministic test ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario dir: %w", err)
	}

	var scenarios []*Scenario
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		s, err := LoadScenario(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and the
// expectation combination is coherent.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Transform == "" {
		return fmt.Errorf("transform is required")
	}

	if s.Error != "" {
		if !knownParseErrorCodes[s.Error] {
			return fmt.Errorf("unknown parse error code %q", s.Error)
		}
		if len(s.Points) > 0 || s.InverseError != "" {
			return fmt.Errorf("error scenarios cannot also check points")
		}
		return nil
	}

	if s.InverseError != "" && s.InverseError != matrix.ErrCodeSingularMatrix {
		return fmt.Errorf("unknown inverse error code %q", s.InverseError)
	}

	if len(s.Points) == 0 && s.InverseError == "" {
		return fmt.Errorf("non-error scenarios need at least one point case")
	}

	for i, pc := range s.Points {
		if len(pc.Input) != 2 {
			return fmt.Errorf("points[%d]: input must be [x, y]", i)
		}
		if len(pc.Forward) != 0 && len(pc.Forward) != 2 {
			return fmt.Errorf("points[%d]: forward must be [x, y]", i)
		}
		if len(pc.Inverse) != 0 && len(pc.Inverse) != 2 {
			return fmt.Errorf("points[%d]: inverse must be [x, y]", i)
		}
		if s.InverseError != "" && len(pc.Inverse) != 0 {
			return fmt.Errorf("points[%d]: inverse conflicts with inverse_error", i)
		}
	}
	return nil
}
