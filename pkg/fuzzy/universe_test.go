/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: universe_test.go
Description: Unit tests for universe construction and interpolated membership lookup.
Covers strictly-increasing validation, range sampling, boundary clamping, and
interpolation between bracketing samples.
*/

package fuzzy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// TestNewUniverseValidation tests rejection of malformed sample sequences
func TestNewUniverseValidation(t *testing.T) {
	_, err := fuzzy.NewUniverse(nil)
	var configErr *fuzzy.ConfigError
	require.ErrorAs(t, err, &configErr)

	_, err = fuzzy.NewUniverse([]float64{0, 2, 1})
	require.ErrorAs(t, err, &configErr)

	_, err = fuzzy.NewUniverse([]float64{0, 1, 1})
	require.ErrorAs(t, err, &configErr)

	_, err = fuzzy.NewUniverse([]float64{0, math.NaN(), 2})
	require.ErrorAs(t, err, &configErr)

	u, err := fuzzy.NewUniverse([]float64{0, 0.5, 2, 7})
	require.NoError(t, err)
	assert.Equal(t, 4, u.Len())
}

// TestNewRangeUniverse tests evenly sampled range construction
func TestNewRangeUniverse(t *testing.T) {
	u, err := fuzzy.NewRangeUniverse(0, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 11, u.Len())
	assert.Equal(t, 0.0, u.Min())
	assert.Equal(t, 10.0, u.Max())
	assert.Equal(t, 5.0, u.Midpoint())
	assert.Equal(t, 3.0, u.At(3))

	// A step that does not divide the range stops short of max.
	u, err = fuzzy.NewRangeUniverse(0, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 9}, u.Samples())

	_, err = fuzzy.NewRangeUniverse(0, 10, 0)
	var configErr *fuzzy.ConfigError
	require.ErrorAs(t, err, &configErr)

	_, err = fuzzy.NewRangeUniverse(5, 5, 1)
	require.ErrorAs(t, err, &configErr)
}

// TestUniverseContainsClamp tests bounds checks and clamping
func TestUniverseContainsClamp(t *testing.T) {
	u, err := fuzzy.NewRangeUniverse(0, 10, 1)
	require.NoError(t, err)

	assert.True(t, u.Contains(0))
	assert.True(t, u.Contains(10))
	assert.True(t, u.Contains(7.3))
	assert.False(t, u.Contains(-0.1))
	assert.False(t, u.Contains(10.1))

	assert.Equal(t, 0.0, u.Clamp(-5))
	assert.Equal(t, 10.0, u.Clamp(15))
	assert.Equal(t, 7.3, u.Clamp(7.3))
}

// TestInterpolatedMembership tests linear interpolation over a discretized curve
func TestInterpolatedMembership(t *testing.T) {
	u, err := fuzzy.NewRangeUniverse(0, 10, 1)
	require.NoError(t, err)

	f, err := fuzzy.NewTriangular(0, 5, 10)
	require.NoError(t, err)
	curve := f.Discretize(u)

	// Exact samples.
	assert.InDelta(t, 1.0, u.InterpolatedMembership(curve, 5), 1e-12)
	assert.InDelta(t, 0.0, u.InterpolatedMembership(curve, 0), 1e-12)

	// Between samples the curve is linear.
	assert.InDelta(t, 0.5, u.InterpolatedMembership(curve, 2.5), 1e-12)
	assert.InDelta(t, 0.9, u.InterpolatedMembership(curve, 4.5), 1e-12)

	// Out-of-bounds values clamp to the boundary sample, no extrapolation.
	assert.InDelta(t, 0.0, u.InterpolatedMembership(curve, -3), 1e-12)
	assert.InDelta(t, 0.0, u.InterpolatedMembership(curve, 42), 1e-12)
}
