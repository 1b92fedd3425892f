package rowdex

import (
	"sort"

	"github.com/hupe1980/rowdex/model"
	"github.com/hupe1980/rowdex/rowstore"
)

// resolveKey returns the primary key columns, deriving them from the search
// argument when no explicit key was configured. The derived key is cached
// until ResetKey.
//
// Derivation orders candidate columns by selectivity — the count of
// distinct values each column takes across all rows — so the first
// narrowing pass of the search eliminates the most candidates. Scoring
// needs a locally materialized row set (rowstore.Lister); without one every
// score is 0 and the deterministic sorted-name fallback decides. The
// resulting order is a capability-dependent heuristic, not a correctness
// guarantee.
func (ix *Indexer) resolveKey(sarg any) ([]string, error) {
	if len(ix.key) > 0 {
		return ix.key, nil
	}

	var row map[string]any
	switch m := sarg.(type) {
	case model.Row:
		row = m
	case map[string]any:
		row = m
	default:
		return nil, ErrInvalidArgument
	}

	// Sorted column names stand in for encounter order: Go map iteration
	// is unordered, so this is the stable base for tie-breaking.
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, ErrInvalidArgument
	}
	sort.Strings(cols)

	scores := make(map[string]int, len(cols))
	if lister, ok := ix.store.(rowstore.Lister); ok {
		rows := lister.Rows()
		for _, col := range cols {
			distinct := make(map[any]struct{}, len(rows))
			for _, r := range rows {
				distinct[r[col]] = struct{}{}
			}
			scores[col] = len(distinct)
		}
	}

	sort.SliceStable(cols, func(i, j int) bool {
		return scores[cols[i]] > scores[cols[j]]
	})

	ix.key = cols

	return cols, nil
}

// normalize aligns the search argument to the key's column order, yielding
// the value tuple the search compares against.
func normalize(key []string, sarg any) ([]any, error) {
	var row map[string]any
	switch m := sarg.(type) {
	case model.Row:
		row = m
	case map[string]any:
		row = m
	default:
		// Scalar arguments only identify a row under a single-column key.
		if len(key) != 1 {
			return nil, ErrAmbiguousSearchArgument
		}
		return []any{sarg}, nil
	}

	tuple := make([]any, 0, len(key))
	for _, col := range key {
		v, ok := row[col]
		if !ok {
			return nil, &ErrMissingKeyColumn{Column: col}
		}
		tuple = append(tuple, v)
	}

	if len(tuple) != len(key) {
		return nil, &ErrIncompleteSearchArgument{Want: len(key), Got: len(tuple)}
	}

	return tuple, nil
}
