// Package clenshawcurtis provides closed one-dimensional Clenshaw–Curtis
// quadrature rules on the reference interval [-1,1].
//
// 🚀 What is Clenshaw–Curtis?
//
//	A quadrature family whose nodes are the Chebyshev extrema
//	cos(jπ/N) — cosine-spaced, clustered toward the endpoints — with
//	weights chosen so the n-point rule integrates polynomials of degree
//	up to n-1 exactly. The closed variant includes both endpoints ±1
//	and supports nested growth: the nodes of each level are a subset of
//	the next level's nodes.
//
// ✨ Key features:
//   - point counts follow the closed nonlinear growth rule
//     (1 node at level 1, 2^(level-1)+1 thereafter)
//   - nodes returned in ascending order, symmetric about 0,
//     with endpoints exactly ±1 and the midpoint exactly 0
//   - weights sum to 2 at every level
//
// Rule satisfies sparsegrid.RuleFunc and is the provider the sparse-grid
// construction is shipped with; any family honoring the same contract
// may be injected instead.
package clenshawcurtis
