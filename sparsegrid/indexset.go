package sparsegrid

// IndexSet enumerates the Smolyak multi-index set for the given
// dimension and total level: every dim-tuple with components in
// [1, level+dim] whose component sum s satisfies
//
//	level+1 <= s <= level+dim.
//
// The enumeration is lexicographic (last component varies fastest),
// so the output order is deterministic and suitable for fixtures.
// The set size grows combinatorially with dim — the curse-of-
// dimensionality boundary the sparse grid delays rather than removes.
//
// Returns ErrDimension for dim < 1 and ErrLevel for level < 1.
func IndexSet(dim, level int) ([]MultiIndex, error) {
	if dim < 1 {
		return nil, ErrDimension
	}
	if level < 1 {
		return nil, ErrLevel
	}

	upper := level + dim // max per-component value and max admissible sum
	lower := level + 1   // min admissible sum

	// Odometer over [1, upper]^dim, last component fastest.
	cursor := make([]int, dim)
	for i := range cursor {
		cursor[i] = 1
	}

	var set []MultiIndex
	for {
		if s := MultiIndex(cursor).Sum(); lower <= s && s <= upper {
			idx := make(MultiIndex, dim)
			copy(idx, cursor)
			set = append(set, idx)
		}

		k := dim - 1
		for k >= 0 {
			cursor[k]++
			if cursor[k] <= upper {
				break
			}
			cursor[k] = 1
			k--
		}
		if k < 0 {
			break
		}
	}

	return set, nil
}
