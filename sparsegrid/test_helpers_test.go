package sparsegrid_test

import (
	"errors"

	"github.com/quadgo/quadrature/sparsegrid"
)

// errProvider is a sentinel used to verify provider error propagation.
var errProvider = errors.New("provider exploded")

// failingRule always errors, regardless of level.
func failingRule(_ int) ([]float64, []float64, error) {
	return nil, nil, errProvider
}

// lopsidedRule violates the provider contract by returning more nodes
// than weights.
func lopsidedRule(_ int) ([]float64, []float64, error) {
	return []float64{-1, 0, 1}, []float64{2}, nil
}

// gaussTwoPointRule is a minimal alternative provider: the two-point
// Gauss–Legendre rule at every level >= 2, the midpoint rule at level 1.
// It exercises the strategy boundary without any Clenshaw–Curtis code.
func gaussTwoPointRule(level int) ([]float64, []float64, error) {
	if level < 1 {
		return nil, nil, sparsegrid.ErrLevel
	}
	if level == 1 {
		return []float64{0}, []float64{2}, nil
	}
	const g = 0.5773502691896257 // 1/sqrt(3)

	return []float64{-g, g}, []float64{1, 1}, nil
}
