package clenshawcurtis

import (
	"math"

	"github.com/quadgo/quadrature/sparsegrid"
)

// Rule satisfies sparsegrid.RuleFunc.
var _ sparsegrid.RuleFunc = Rule

// Rule returns the closed Clenshaw–Curtis nodes and weights on [-1,1]
// for the given level. The node count follows the closed nonlinear
// growth rule: level 1 yields the single-node midpoint rule (node 0,
// weight 2); level L >= 2 yields n = 2^(L-1)+1 cosine-spaced nodes in
// ascending order.
//
// Weights follow the classical closed-rule cosine-sum expression: with
// N = n-1 and θ_j = jπ/N,
//
//	w_j = (c_j/N) · (1 − Σ_{k=1..⌊N/2⌋} b_k/(4k²−1) · cos(2kθ_j))
//
// where c_j is 1 at the endpoints and 2 elsewhere, and b_k is 1 for
// k = N/2 and 2 otherwise. The n-point rule integrates polynomials of
// degree up to n-1 exactly and its weights sum to 2.
//
// Construction is O(n²); at the levels a Smolyak combination visits this
// is negligible next to the combinatorial size of the grid itself.
//
// Returns sparsegrid.ErrLevel for level < 1. Each call computes the rule
// from scratch; no nesting or caching is assumed by callers.
func Rule(level int) (nodes, weights []float64, err error) {
	n, err := sparsegrid.PointCount(level)
	if err != nil {
		return nil, nil, err
	}
	if n == 1 {
		return []float64{0}, []float64{2}, nil
	}

	N := n - 1
	nodes = make([]float64, n)
	for j := 0; j <= N; j++ {
		nodes[j] = -math.Cos(math.Pi * float64(j) / float64(N))
	}
	// Pin the values the cosine only approximates.
	nodes[0], nodes[N] = -1, 1
	if N%2 == 0 {
		nodes[N/2] = 0
	}

	weights = make([]float64, n)
	for j := 0; j <= N; j++ {
		theta := math.Pi * float64(j) / float64(N)
		var sum float64
		for k := 1; k <= N/2; k++ {
			b := 2.0
			if 2*k == N {
				b = 1.0
			}
			sum += b / float64(4*k*k-1) * math.Cos(2*float64(k)*theta)
		}
		w := (1 - sum) / float64(N)
		if j != 0 && j != N {
			w *= 2
		}
		weights[j] = w
	}

	return nodes, weights, nil
}
