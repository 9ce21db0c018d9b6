package sparsegrid

import "errors"

var (
	// ErrLevel indicates a quadrature level below 1.
	ErrLevel = errors.New("sparsegrid: level must be >= 1")
	// ErrDimension indicates a dimension below 1.
	ErrDimension = errors.New("sparsegrid: dimension must be >= 1")
	// ErrEmptyInterval indicates an empty integration interval (a >= b).
	ErrEmptyInterval = errors.New("sparsegrid: empty interval, require a < b")
	// ErrNonIntegerBound indicates a fractional interval endpoint.
	ErrNonIntegerBound = errors.New("sparsegrid: interval bounds must be integer-valued")
	// ErrNilRule indicates that no one-dimensional rule was supplied.
	ErrNilRule = errors.New("sparsegrid: one-dimensional rule must not be nil")
	// ErrRuleLength indicates a provider returning mismatched or empty nodes/weights.
	ErrRuleLength = errors.New("sparsegrid: one-dimensional rule returned mismatched nodes and weights")
	// ErrNilIntegrand indicates that Integrate was called without a function.
	ErrNilIntegrand = errors.New("sparsegrid: integrand must not be nil")
)
