// Package quadrature is a toolkit for multi-dimensional numerical
// integration over hypercubes using Smolyak sparse grids.
//
// 🚀 What is quadrature?
//
//	A small, focused library that brings together:
//		• Sparse grids: Smolyak combination of tensor-product rules
//		• One-dimensional rules: closed Clenshaw–Curtis nodes & weights
//		• Integration: weighted-sum evaluation of arbitrary integrands
//
// ✨ Why choose quadrature?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, no global state, reproducible output
//   - Pluggable – inject any one-dimensional rule family via RuleFunc
//
// Everything is organized under two subpackages:
//
//	sparsegrid/     — index sets, tensor products, Smolyak combination, Integrate
//	clenshawcurtis/ — the shipped one-dimensional Clenshaw–Curtis provider
//
// See examples/ for a runnable convergence study on the unit square.
package quadrature
