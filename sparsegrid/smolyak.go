package sparsegrid

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// consolidateScale fixes the resolution of the coordinate key used when
// merging coincident nodes: 1e-12, well below any node spacing the
// growth rule can produce at practical levels.
const consolidateScale = 1e12

// SparseGrid assembles the Smolyak sparse-grid quadrature rule of the
// given total level over [a,b]^dim.
//
// For every multi-index idx in IndexSet(dim, level) with s = idx.Sum(),
// the combination coefficient is
//
//	coeff = (-1)^(level+dim-s) · C(dim-1, level+dim-s)
//
// where C is the binomial coefficient. The tensor-product rule of idx is
// built, its weights scaled by coeff, and all (point, weight) pairs are
// appended to the output in index order. Note the dim-1 in the binomial
// term: an off-by-one there produces a rule that still runs but only
// approximately integrates, detectable solely by convergence tests.
//
// Coincident nodes contributed by different multi-indices are kept as
// separate entries unless opts.Consolidate is set, in which case a
// post-pass merges them (first-seen order, weights summed).
//
// The defining invariant: the weights always sum to the volume (b-a)^dim
// to within floating-point accumulation error, even though individual
// weights may be negative.
func SparseGrid(dim, level int, rule RuleFunc, opts *Options) (*Rule, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	set, err := IndexSet(dim, level)
	if err != nil {
		return nil, err
	}

	var (
		points  [][]float64
		weights []float64
	)
	for _, idx := range set {
		// level+dim-s lies in [0, dim-1] by construction of the index set.
		k := level + dim - idx.Sum()
		coeff := float64(combin.Binomial(dim-1, k))
		if k%2 == 1 {
			coeff = -coeff
		}

		tensor, err := TensorProduct(idx, rule, &o)
		if err != nil {
			return nil, err
		}

		floats.Scale(coeff, tensor.Weights)
		points = append(points, tensor.Points...)
		weights = append(weights, tensor.Weights...)
	}

	grid := &Rule{Points: points, Weights: weights}
	if o.Consolidate {
		grid = consolidate(grid)
	}

	return grid, nil
}

// consolidate merges geometrically coincident nodes by summing their
// weights, keyed by a rounded fixed-point representation of the
// coordinates. Output preserves first-seen order.
func consolidate(r *Rule) *Rule {
	out := &Rule{
		Points:  make([][]float64, 0, len(r.Points)),
		Weights: make([]float64, 0, len(r.Weights)),
	}
	seen := make(map[string]int, len(r.Points))
	for i, pt := range r.Points {
		key := coordKey(pt)
		if j, ok := seen[key]; ok {
			out.Weights[j] += r.Weights[i]
			continue
		}
		seen[key] = len(out.Weights)
		out.Points = append(out.Points, pt)
		out.Weights = append(out.Weights, r.Weights[i])
	}

	return out
}

// coordKey builds a canonical fixed-point key for a coordinate tuple.
func coordKey(pt []float64) string {
	buf := make([]byte, 0, 16*len(pt))
	for _, x := range pt {
		buf = strconv.AppendInt(buf, int64(math.Round(x*consolidateScale)), 10)
		buf = append(buf, ':')
	}

	return string(buf)
}
