/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader_test.go
Description: Tests for loading and compiling declarative system definitions: a full
YAML round-trip through the tipping system, universe forms, shape validation, and
malformed antecedent trees.
*/

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-fuzzy/pkg/config"
	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

const tippingYAML = `
name: tipping
variables:
  - name: quality
    role: antecedent
    universe: {min: 0, max: 10, step: 1}
    terms:
      - {label: low, shape: triangular, params: [0, 0, 5]}
      - {label: medium, shape: tri, params: [0, 5, 10]}
      - {label: high, shape: triangular, params: [5, 10, 10]}
  - name: service
    role: input
    universe: {min: 0, max: 10}
    terms:
      - {label: low, shape: triangular, params: [0, 0, 5]}
      - {label: medium, shape: triangular, params: [0, 5, 10]}
      - {label: high, shape: triangular, params: [5, 10, 10]}
  - name: tip
    role: consequent
    universe: {min: 0, max: 25, step: 1}
    terms:
      - {label: low, shape: triangular, params: [0, 0, 13]}
      - {label: medium, shape: triangular, params: [0, 13, 25]}
      - {label: high, shape: triangular, params: [13, 25, 25]}
rules:
  - label: poor
    antecedent:
      or:
        - {term: {variable: quality, label: low}}
        - {term: {variable: service, label: low}}
    consequent: {variable: tip, label: low}
  - label: decent
    antecedent: {term: {variable: service, label: medium}}
    consequent: {variable: tip, label: medium}
  - label: great
    antecedent:
      or:
        - {term: {variable: quality, label: high}}
        - {term: {variable: service, label: high}}
    consequent: {variable: tip, label: high}
`

// writeDefinition drops a definition file into a temp dir and returns its path
func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadTippingSystem tests the full YAML-to-compute round trip
func TestLoadTippingSystem(t *testing.T) {
	system, err := config.Load(writeDefinition(t, "tipping.yaml", tippingYAML))
	require.NoError(t, err)

	assert.Equal(t, "tipping", system.Name())
	assert.Len(t, system.Variables(), 3)
	assert.Len(t, system.Rules(), 3)

	outputs, err := system.Compute(map[string]float64{"quality": 5, "service": 5})
	require.NoError(t, err)
	assert.InDelta(t, 12.6667, outputs["tip"], 1e-3)
}

// TestLoadSpecShape tests that the schema types survive unmarshaling intact
func TestLoadSpecShape(t *testing.T) {
	spec, err := config.LoadSpec(writeDefinition(t, "tipping.yaml", tippingYAML))
	require.NoError(t, err)

	require.Len(t, spec.Variables, 3)
	assert.Equal(t, "quality", spec.Variables[0].Name)
	assert.Equal(t, 10.0, spec.Variables[0].Universe.Max)
	require.Len(t, spec.Variables[0].Terms, 3)
	assert.Equal(t, []float64{0, 5, 10}, spec.Variables[0].Terms[1].Params)

	require.Len(t, spec.Rules, 3)
	assert.Equal(t, "decent", spec.Rules[1].Label)
	require.NotNil(t, spec.Rules[1].Antecedent.Term)
	assert.Equal(t, "service", spec.Rules[1].Antecedent.Term.Variable)
	require.Len(t, spec.Rules[0].Antecedent.Or, 2)
}

// TestCompileOptions tests that top-level engine options reach the system
func TestCompileOptions(t *testing.T) {
	spec, err := config.LoadSpec(writeDefinition(t, "tipping.yaml", tippingYAML))
	require.NoError(t, err)
	spec.ClampInputs = true
	spec.Defuzzifier = "mom"

	system, err := config.Compile(spec, nil)
	require.NoError(t, err)
	assert.Equal(t, fuzzy.ClampToUniverse, system.InputPolicy())
	assert.Equal(t, fuzzy.MeanOfMaximum, system.Method())

	// Clamping accepts an out-of-range rating.
	outputs, err := system.Compute(map[string]float64{"quality": 12, "service": 5})
	require.NoError(t, err)
	assert.Contains(t, outputs, "tip")
}

// TestSampledUniverse tests the explicit-samples universe form
func TestSampledUniverse(t *testing.T) {
	const def = `
name: sampled
variables:
  - name: x
    role: antecedent
    universe: {samples: [0, 1, 2, 5, 10]}
    terms:
      - {label: any, shape: trapezoidal, params: [0, 0, 10, 10]}
  - name: y
    role: consequent
    universe: {min: 0, max: 10, step: 1}
    terms:
      - {label: any, shape: trap, params: [0, 0, 10, 10]}
rules:
  - antecedent: {term: {variable: x, label: any}}
    consequent: {variable: y, label: any}
`
	system, err := config.Load(writeDefinition(t, "sampled.yaml", def))
	require.NoError(t, err)

	x, ok := system.Variable("x")
	require.True(t, ok)
	assert.Equal(t, 5, x.Universe().Len())
	assert.Equal(t, 10.0, x.Universe().Max())
}

// TestUniverseBothForms tests rejection of a universe declaring samples and a range
func TestUniverseBothForms(t *testing.T) {
	const def = `
variables:
  - name: x
    role: antecedent
    universe: {min: 0, max: 10, samples: [0, 5, 10]}
    terms:
      - {label: any, shape: triangular, params: [0, 5, 10]}
rules: []
`
	_, err := config.Load(writeDefinition(t, "bad.yaml", def))
	var configErr *fuzzy.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "both samples and a range")
}

// TestUnknownShape tests rejection of an unsupported membership shape
func TestUnknownShape(t *testing.T) {
	const def = `
variables:
  - name: x
    role: antecedent
    universe: {min: 0, max: 10}
    terms:
      - {label: odd, shape: gaussian, params: [5, 2]}
rules: []
`
	_, err := config.Load(writeDefinition(t, "bad.yaml", def))
	var configErr *fuzzy.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), `unknown shape "gaussian"`)
}

// TestWrongParamCount tests shape/param arity checking
func TestWrongParamCount(t *testing.T) {
	const def = `
variables:
  - name: x
    role: antecedent
    universe: {min: 0, max: 10}
    terms:
      - {label: short, shape: triangular, params: [0, 5]}
rules: []
`
	_, err := config.Load(writeDefinition(t, "bad.yaml", def))
	var configErr *fuzzy.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "needs 3 params, got 2")
}

// TestBadRole tests rejection of an unknown variable role
func TestBadRole(t *testing.T) {
	const def = `
variables:
  - name: x
    role: sideways
    universe: {min: 0, max: 10}
    terms:
      - {label: any, shape: triangular, params: [0, 5, 10]}
rules: []
`
	_, err := config.Load(writeDefinition(t, "bad.yaml", def))
	var configErr *fuzzy.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), `got "sideways"`)
}

// TestAmbiguousExprNode tests that an antecedent node must set exactly one of
// term/and/or/not
func TestAmbiguousExprNode(t *testing.T) {
	const def = `
variables:
  - name: x
    role: antecedent
    universe: {min: 0, max: 10}
    terms:
      - {label: any, shape: triangular, params: [0, 5, 10]}
  - name: y
    role: consequent
    universe: {min: 0, max: 10}
    terms:
      - {label: any, shape: triangular, params: [0, 5, 10]}
rules:
  - antecedent:
      term: {variable: x, label: any}
      not: {term: {variable: x, label: any}}
    consequent: {variable: y, label: any}
`
	_, err := config.Load(writeDefinition(t, "bad.yaml", def))
	var configErr *fuzzy.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "exactly one of term/and/or/not")

	const empty = `
variables:
  - name: x
    role: antecedent
    universe: {min: 0, max: 10}
    terms:
      - {label: any, shape: triangular, params: [0, 5, 10]}
  - name: y
    role: consequent
    universe: {min: 0, max: 10}
    terms:
      - {label: any, shape: triangular, params: [0, 5, 10]}
rules:
  - antecedent: {}
    consequent: {variable: y, label: any}
`
	_, err = config.Load(writeDefinition(t, "bad.yaml", empty))
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "rule 1")
}

// TestMissingFile tests the error path for an unreadable definition
func TestMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read system definition")
}
