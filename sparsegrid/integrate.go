package sparsegrid

// Integrate approximates the integral of f over [a,b]^dim using the
// Smolyak sparse grid of the given total level: it evaluates f once at
// every rule node (duplicated nodes included, no caching) and returns
// the weighted sum Σ f(pᵢ)·wᵢ.
//
// With the shipped Clenshaw–Curtis provider the rule is exact on
// polynomials of total degree tied to level and converges rapidly for
// smooth integrands.
//
// Returns ErrNilIntegrand for a nil f; all SparseGrid preconditions
// propagate unchanged.
func Integrate(f Integrand, dim, level int, rule RuleFunc, opts *Options) (float64, error) {
	if f == nil {
		return 0, ErrNilIntegrand
	}

	grid, err := SparseGrid(dim, level, rule, opts)
	if err != nil {
		return 0, err
	}

	var total float64
	for i, pt := range grid.Points {
		total += f(pt) * grid.Weights[i]
	}

	return total, nil
}
