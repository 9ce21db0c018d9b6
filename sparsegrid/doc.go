// Package sparsegrid constructs Smolyak sparse-grid quadrature rules for
// numerical integration over the d-dimensional hypercube [a,b]^d.
//
// 🚀 What is a sparse grid?
//
//	A full tensor-product quadrature rule in d dimensions needs n^d nodes —
//	the curse of dimensionality. The Smolyak construction combines many
//	*low-resolution* tensor-product rules with signed binomial coefficients
//	so that the combined rule matches the accuracy of a much finer full
//	grid while using far fewer nodes. It is widely used in:
//	  • Uncertainty quantification & stochastic collocation
//	  • High-dimensional option pricing & risk integrals
//	  • Surrogate modeling & polynomial chaos expansions
//
// ✨ Key features:
//   - exact Smolyak combination coefficients (signed binomial terms)
//   - pluggable one-dimensional rule family via RuleFunc (strategy injection)
//   - affine mapping from the reference cube [-1,1]^d to any [a,b]^d
//   - optional consolidation of coincident nodes (Options.Consolidate)
//   - deterministic, lexicographic multi-index enumeration
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/quadgo/quadrature/clenshawcurtis"
//	  "github.com/quadgo/quadrature/sparsegrid"
//	)
//
//	f := func(x []float64) float64 { return math.Sin(math.Pi*x[0]) * math.Sin(math.Pi*x[1]) }
//	val, err := sparsegrid.Integrate(f, 2, 5, clenshawcurtis.Rule, nil)
//
// Correctness notes:
//
//	The combined weights always sum to the volume (b-a)^d, even though
//	individual weights may be negative. By default coincident nodes
//	contributed by different multi-indices are kept as separate entries;
//	a consumer must sum contributions, never deduplicate by position.
//
// Complexity:
//
//	Nodes and memory grow combinatorially with dim and level; the full
//	rule is materialized before Integrate sums it. No I/O, no goroutines,
//	no shared state.
package sparsegrid
