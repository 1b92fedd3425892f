package rowdex

// valueAt reads one key column of the row at index-space position i,
// dereferencing through the permutation when one is active.
func (ix *Indexer) valueAt(perm []int, i int, col string) any {
	if perm != nil {
		i = perm[i]
	}

	return ix.store.RowAt(i)[col]
}

// search runs the multi-column binary search. Every key column but the last
// narrows the candidate range with a lower-bound and an upper-bound pass,
// bracketing the whole run of equal values; the last column runs an
// exact/insertion-point search over what remains.
//
// pos is in index space when a permutation is active, store space
// otherwise. When found is false, pos is the insertion point: the slot
// where the key would be placed to keep ascending order.
//
// Duplicate values on the final key column resolve to whichever occurrence
// the midpoint probe hits first; this is not a lowest-position guarantee.
func (ix *Indexer) search(key []string, tuple []any, perm []int) (pos int, found bool) {
	lo, hi := 0, ix.store.RowCount()
	if perm != nil {
		hi = len(perm)
	}

	for c := 0; c < len(key)-1; c++ {
		col, target := key[c], tuple[c]
		lo = ix.lowerBound(perm, lo, hi, col, target)
		hi = ix.upperBound(perm, lo, hi, col, target)
	}

	col, target := key[len(key)-1], tuple[len(key)-1]
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := compareValues(target, ix.valueAt(perm, mid, col)); {
		case c == 0:
			return mid, true
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}

	return lo, false
}

// lowerBound returns the first position in [lo,hi) whose column value is
// >= target, or hi if none is.
func (ix *Indexer) lowerBound(perm []int, lo, hi int, col string, target any) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if compareValues(ix.valueAt(perm, mid, col), target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// upperBound returns the first position in [lo,hi) whose column value is
// > target, or hi if none is.
func (ix *Indexer) upperBound(perm []int, lo, hi int, col string, target any) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if compareValues(ix.valueAt(perm, mid, col), target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
