// Package sparsegrid: shared value types and functional configuration.
package sparsegrid

// MultiIndex assigns one quadrature level (>= 1) to each dimension.
// It selects which tensor-product rule participates in the Smolyak
// combination. Indices are plain slices; they are never mutated after
// generation.
type MultiIndex []int

// Sum returns the total level of the multi-index.
func (m MultiIndex) Sum() int {
	var s int
	for _, v := range m {
		s += v
	}

	return s
}

// RuleFunc is the injected one-dimensional quadrature provider.
//
// For a given level it returns nodes on [-1,1] and matching weights,
// positionally paired, with len(nodes) == len(weights) == PointCount(level)
// and weights summing to 2 (the length of the reference interval).
// clenshawcurtis.Rule is the shipped implementation; any family honoring
// this contract (e.g., Gauss–Patterson) may be substituted.
type RuleFunc func(level int) (nodes, weights []float64, err error)

// Integrand is a scalar function of a d-dimensional coordinate.
// It is evaluated once per rule node, including duplicated nodes.
type Integrand func(x []float64) float64

// Rule is a flat quadrature rule: Points[i] is a d-dimensional coordinate
// paired positionally with Weights[i]. It serves both as the transient
// tensor-product rule and as the final sparse-grid rule.
//
// In the default (unconsolidated) sparse-grid output the same geometric
// point may appear multiple times with different weights, contributed by
// different multi-indices. Consumers must sum contributions.
type Rule struct {
	Points  [][]float64
	Weights []float64
}

// Len returns the number of (point, weight) pairs in the rule.
func (r *Rule) Len() int { return len(r.Weights) }

// Options configures the integration domain and output shape.
//
// Fields:
//   - A, B        — the interval [A,B] applied identically to every
//     dimension. Both must be integer-valued (a deliberate restriction
//     carried from the reference behavior) and A < B.
//   - Consolidate — if true, coincident nodes of the final sparse grid
//     are merged by summing their weights. The unconsolidated rule is
//     the reference behavior and the default.
//
// A nil *Options passed to any entry point means DefaultOptions().
type Options struct {
	A           float64
	B           float64
	Consolidate bool
}

// DefaultOptions returns the canonical configuration: the unit
// hypercube [0,1]^d with no consolidation.
func DefaultOptions() Options {
	return Options{A: 0, B: 1}
}
