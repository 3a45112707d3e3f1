// Package harness runs conformance scenarios for the transform
// pipeline end to end: raw attribute string in, parsed commands, CTM
// and mapped points out.
//
// Scenarios are YAML files under testdata/scenarios. Each scenario
// either expects a coded parse error or supplies point cases with
// expected forward (local to viewport) and inverse (viewport to local)
// coordinates. Selected scenarios additionally pin the parsed command
// list and CTM with golden files under testdata/golden.
package harness
