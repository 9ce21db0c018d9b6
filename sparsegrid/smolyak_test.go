package sparsegrid_test

import (
	"math"
	"testing"

	"github.com/quadgo/quadrature/clenshawcurtis"
	"github.com/quadgo/quadrature/sparsegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestSparseGrid_WeightPartition verifies the defining Smolyak invariant:
// the combined weights sum to the volume (b-a)^dim for a sweep of
// dimensions and levels, despite negative intermediate weights.
func TestSparseGrid_WeightPartition(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		for level := 1; level <= 4; level++ {
			grid, err := sparsegrid.SparseGrid(dim, level, clenshawcurtis.Rule, nil)
			require.NoError(t, err, "dim=%d level=%d", dim, level)
			assert.InDelta(t, 1.0, floats.Sum(grid.Weights), 1e-12,
				"unit-volume partition, dim=%d level=%d", dim, level)
		}
	}
}

// TestSparseGrid_WeightPartitionShiftedDomain repeats the invariant on
// [0,2]^2, where the volume is 4.
func TestSparseGrid_WeightPartitionShiftedDomain(t *testing.T) {
	opts := sparsegrid.DefaultOptions()
	opts.A, opts.B = 0, 2
	grid, err := sparsegrid.SparseGrid(2, 3, clenshawcurtis.Rule, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, floats.Sum(grid.Weights), 1e-12)
}

// TestSparseGrid_NegativeWeightsPresent confirms the combination really
// does carry signed coefficients: some weights must be negative whenever
// more than one multi-index participates.
func TestSparseGrid_NegativeWeightsPresent(t *testing.T) {
	grid, err := sparsegrid.SparseGrid(2, 2, clenshawcurtis.Rule, nil)
	require.NoError(t, err)

	var negatives int
	for _, w := range grid.Weights {
		if w < 0 {
			negatives++
		}
	}
	assert.Positive(t, negatives, "signed combination must produce negative weights")
}

// TestSparseGrid_DuplicatesRetained checks the reference behavior:
// coincident nodes contributed by overlapping tensor rules stay as
// separate entries with separate weights.
func TestSparseGrid_DuplicatesRetained(t *testing.T) {
	grid, err := sparsegrid.SparseGrid(2, 2, clenshawcurtis.Rule, nil)
	require.NoError(t, err)

	seen := make(map[[2]float64]int)
	for _, pt := range grid.Points {
		seen[[2]float64{pt[0], pt[1]}]++
	}
	assert.Less(t, len(seen), grid.Len(), "some geometric points must repeat")
}

// TestSparseGrid_Consolidate verifies the opt-in merge pass: unique
// points, preserved weight sum, and an unchanged integral for a smooth
// integrand.
func TestSparseGrid_Consolidate(t *testing.T) {
	flat, err := sparsegrid.SparseGrid(2, 3, clenshawcurtis.Rule, nil)
	require.NoError(t, err)

	opts := sparsegrid.DefaultOptions()
	opts.Consolidate = true
	merged, err := sparsegrid.SparseGrid(2, 3, clenshawcurtis.Rule, &opts)
	require.NoError(t, err)

	assert.Less(t, merged.Len(), flat.Len(), "consolidation must shrink the rule")

	unique := make(map[[2]float64]struct{})
	for _, pt := range merged.Points {
		unique[[2]float64{pt[0], pt[1]}] = struct{}{}
	}
	assert.Len(t, unique, merged.Len(), "consolidated points must be unique")

	assert.InDelta(t, floats.Sum(flat.Weights), floats.Sum(merged.Weights), 1e-12,
		"weight sum preserved")

	f := func(x []float64) float64 { return math.Exp(x[0] + x[1]) }
	var flatVal, mergedVal float64
	for i, pt := range flat.Points {
		flatVal += f(pt) * flat.Weights[i]
	}
	for i, pt := range merged.Points {
		mergedVal += f(pt) * merged.Weights[i]
	}
	assert.InDelta(t, flatVal, mergedVal, 1e-12, "consolidation must not change the integral")
}

// TestSparseGrid_Dim1UsesSingleTensorRule checks the degenerate case:
// in one dimension the combination collapses to one tensor rule with
// coefficient +1.
func TestSparseGrid_Dim1UsesSingleTensorRule(t *testing.T) {
	grid, err := sparsegrid.SparseGrid(1, 3, clenshawcurtis.Rule, nil)
	require.NoError(t, err)

	n, err := sparsegrid.PointCount(4) // index set for dim=1, level=3 is {(4)}
	require.NoError(t, err)
	assert.Equal(t, n, grid.Len())
	assert.InDelta(t, 1.0, floats.Sum(grid.Weights), 1e-12)
}

// TestSparseGrid_InvalidArguments covers fail-fast precondition checks.
func TestSparseGrid_InvalidArguments(t *testing.T) {
	_, err := sparsegrid.SparseGrid(0, 2, clenshawcurtis.Rule, nil)
	assert.ErrorIs(t, err, sparsegrid.ErrDimension)

	_, err = sparsegrid.SparseGrid(2, 0, clenshawcurtis.Rule, nil)
	assert.ErrorIs(t, err, sparsegrid.ErrLevel)

	_, err = sparsegrid.SparseGrid(2, 2, nil, nil)
	assert.ErrorIs(t, err, sparsegrid.ErrNilRule)

	opts := sparsegrid.DefaultOptions()
	opts.A, opts.B = 3, 1
	_, err = sparsegrid.SparseGrid(2, 2, clenshawcurtis.Rule, &opts)
	assert.ErrorIs(t, err, sparsegrid.ErrEmptyInterval)
}
