package sparsegrid

// PointCount maps a quadrature level to the number of nodes of the
// closed nonlinear (Clenshaw–Curtis style) growth rule:
//
//	level == 1 → 1
//	level >= 2 → 2^(level-1) + 1
//
// The jump from 1 node at level 1 to 3 nodes at level 2 is intentional:
// it is the nested "closed" growth convention, under which the nodes of
// level L are a subset of the nodes of level L+1. A uniformly doubling
// rule would break that nesting.
//
// Returns ErrLevel for level < 1.
func PointCount(level int) (int, error) {
	if level < 1 {
		return 0, ErrLevel
	}
	if level == 1 {
		return 1, nil
	}

	return 1<<(level-1) + 1, nil
}
