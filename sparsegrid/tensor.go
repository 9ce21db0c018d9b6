package sparsegrid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// TensorProduct builds the full tensor-product quadrature rule for one
// multi-index: the Cartesian product of the per-dimension one-dimensional
// nodes, with each node tuple weighted by the product of the matching
// one-dimensional weights.
//
// Nodes are generated on the reference cube [-1,1]^d and, unless the
// target interval is exactly [-1,1], affinely remapped coordinate-wise to
// [a,b]^d via x' = (b-a)/2·x + (a+b)/2, with every weight rescaled by
// ((b-a)/2)^d. The resulting weights sum to the target volume (b-a)^d.
//
// Preconditions (checked in order, fail-fast):
//   - opts.A < opts.B, else ErrEmptyInterval;
//   - opts.A and opts.B integer-valued, else ErrNonIntegerBound;
//   - rule != nil, else ErrNilRule;
//   - every level in levels accepted by the provider (its error, typically
//     ErrLevel, propagates unchanged);
//   - the provider returns non-empty, equal-length slices, else ErrRuleLength.
func TensorProduct(levels MultiIndex, rule RuleFunc, opts *Options) (*Rule, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(levels) == 0 {
		return nil, ErrDimension
	}
	if o.A >= o.B {
		return nil, ErrEmptyInterval
	}
	if o.A != math.Trunc(o.A) || o.B != math.Trunc(o.B) {
		return nil, ErrNonIntegerBound
	}
	if rule == nil {
		return nil, ErrNilRule
	}

	dim := len(levels)
	nodes1d := make([][]float64, dim)
	wts1d := make([][]float64, dim)
	total := 1
	for k, lv := range levels {
		nodes, weights, err := rule(lv)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", k, err)
		}
		if len(nodes) == 0 || len(nodes) != len(weights) {
			return nil, fmt.Errorf("dimension %d: %w", k, ErrRuleLength)
		}
		nodes1d[k], wts1d[k] = nodes, weights
		total *= len(nodes)
	}

	points := make([][]float64, 0, total)
	weights := make([]float64, 0, total)

	// Odometer over the node grid, last dimension fastest.
	cursor := make([]int, dim)
	wtuple := make([]float64, dim)
	for c := 0; c < total; c++ {
		pt := make([]float64, dim)
		for k := 0; k < dim; k++ {
			pt[k] = nodes1d[k][cursor[k]]
			wtuple[k] = wts1d[k][cursor[k]]
		}
		points = append(points, pt)
		weights = append(weights, floats.Prod(wtuple))

		for k := dim - 1; k >= 0; k-- {
			cursor[k]++
			if cursor[k] < len(nodes1d[k]) {
				break
			}
			cursor[k] = 0
		}
	}

	// Remap [-1,1]^d → [a,b]^d only when the target actually differs.
	if o.A != -1 || o.B != 1 {
		half := (o.B - o.A) / 2
		mid := (o.A + o.B) / 2
		scale := math.Pow(half, float64(dim))
		for i, pt := range points {
			for k := range pt {
				pt[k] = half*pt[k] + mid
			}
			weights[i] *= scale
		}
	}

	return &Rule{Points: points, Weights: weights}, nil
}
