/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch_test.go
Description: Tests for parallel batch evaluation: result ordering, equivalence with
sequential computation, worker-count handling, and error reporting by tuple index.
*/

package fuzzy_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// TestBatchMatchesSequential tests that the pool produces the same outputs as
// one-at-a-time computation, in input order
func TestBatchMatchesSequential(t *testing.T) {
	system := newTippingSystem(t)

	var inputs []map[string]float64
	for q := 0.0; q <= 10; q += 2.5 {
		for s := 0.0; s <= 10; s += 2.5 {
			inputs = append(inputs, map[string]float64{"quality": q, "service": s})
		}
	}

	results, err := system.ComputeBatch(inputs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, result := range results {
		assert.Equal(t, i, result.Index)
		require.NotNil(t, result.Trace)

		sequential, err := system.Compute(inputs[i])
		require.NoError(t, err)
		assert.Equal(t, sequential["tip"], result.Trace.Outputs["tip"],
			fmt.Sprintf("tuple %d: %v", i, inputs[i]))
	}
}

// TestBatchWorkerCounts tests that worker sizing does not change results
func TestBatchWorkerCounts(t *testing.T) {
	system := newTippingSystem(t)
	inputs := []map[string]float64{
		{"quality": 2, "service": 8},
		{"quality": 9, "service": 1},
		{"quality": 5, "service": 5},
	}

	for _, workers := range []int{0, 1, 8} {
		results, err := system.ComputeBatch(inputs, workers)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.InDelta(t, 12.6667, results[2].Trace.Outputs["tip"], 1e-3)
	}
}

// TestBatchEmpty tests that an empty batch is a no-op
func TestBatchEmpty(t *testing.T) {
	system := newTippingSystem(t)
	results, err := system.ComputeBatch(nil, 4)
	require.NoError(t, err)
	assert.Nil(t, results)
}

// TestBatchErrorReportsIndex tests that a failing tuple aborts the batch and
// names its position
func TestBatchErrorReportsIndex(t *testing.T) {
	system := newTippingSystem(t)
	inputs := []map[string]float64{
		{"quality": 5, "service": 5},
		{"quality": 5, "service": 5},
		{"quality": 42, "service": 5},
	}

	_, err := system.ComputeBatch(inputs, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch input 2")

	var domainErr *fuzzy.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "quality", domainErr.Variable)
}
