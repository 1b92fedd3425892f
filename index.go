package rowdex

import (
	"sort"
	"time"
)

// buildPerm constructs the ordering permutation: the identity permutation
// over the store's positions, stable-sorted so that applying it to the
// store yields ascending primary-key order.
func (ix *Indexer) buildPerm(key []string) []int {
	start := time.Now()

	n := ix.store.RowCount()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	sort.SliceStable(perm, func(i, j int) bool {
		return ix.compareRows(key, perm[i], perm[j]) < 0
	})

	ix.metrics.RecordReindex(n, time.Since(start))
	ix.logger.LogReindex(key, n)

	return perm
}

// compareRows compares two stored rows lexicographically over the key
// columns in order. The first differing column decides; rows equal on every
// key column compare as 0.
func (ix *Indexer) compareRows(key []string, a, b int) int {
	ra, rb := ix.store.RowAt(a), ix.store.RowAt(b)
	for _, col := range key {
		if c := compareValues(ra[col], rb[col]); c != 0 {
			return c
		}
	}

	return 0
}

// resolvePerm returns the permutation the current call searches through.
// Presorted discards any cache and returns nil, meaning searches run
// directly over physical positions. Reindex discards the cache before
// rebuilding. Otherwise a cached non-empty permutation is reused.
func (ix *Indexer) resolvePerm(key []string, so searchOptions) []int {
	if so.presorted {
		ix.perm = nil
		return nil
	}

	if so.reindex {
		ix.perm = nil
	}

	if len(ix.perm) == 0 {
		ix.perm = ix.buildPerm(key)
	}

	return ix.perm
}

// spliceIn inserts physical position pos into the permutation at
// index-space slot at, keeping the ascending-order invariant without a full
// rebuild.
func (ix *Indexer) spliceIn(at, pos int) {
	ix.perm = append(ix.perm, 0)
	copy(ix.perm[at+1:], ix.perm[at:])
	ix.perm[at] = pos
}

// spliceOut removes the permutation entry at index-space slot at. Entries
// pointing past the vacated physical position shift down by one, because a
// compacting store renumbers the rows that followed the deleted one.
func (ix *Indexer) spliceOut(at int) {
	phys := ix.perm[at]
	ix.perm = append(ix.perm[:at], ix.perm[at+1:]...)
	for i, p := range ix.perm {
		if p > phys {
			ix.perm[i] = p - 1
		}
	}
}
