// Package rowdex augments a row-oriented tabular data source with
// primary-key lookup, insertion and deletion, without requiring the
// underlying storage to be sorted or natively indexed.
//
// The core is an Indexer that lazily builds an ordering permutation over
// row positions and runs a multi-column binary search through it: every key
// column but the last narrows the candidate range, the last one locates the
// exact match or the insertion point. Mutations are delegated to the
// store's Mutator capability and the permutation is spliced — not rebuilt —
// to stay consistent.
//
// # Quick Start
//
//	store := rowstore.NewMemory(
//	    model.Row{"id": 3, "name": "c"},
//	    model.Row{"id": 1, "name": "a"},
//	    model.Row{"id": 2, "name": "b"},
//	)
//
//	ix := rowdex.New(store, store, rowdex.WithKey("id"))
//
//	row, ok, err := ix.FindRow(2)        // {id:2 name:b}, true
//	pos, ok, err := ix.FindRowIndex(4)   // insertion point 3, false
//	status, err := ix.InsertRow(model.Row{"id": 4, "name": "d"})
//
// # Keys
//
// The primary key is an ordered list of column names: order defines sort
// precedence and the zoom order of the search. Configure it with WithKey or
// WithNamedKey, or let the Indexer derive it from the first mapping-shaped
// search argument, ranking columns by selectivity when the store exposes a
// materialized row set.
//
// # Per-call options
//
// Presorted() asserts the store is already in key order and bypasses the
// permutation; Reindex() forces a full rebuild. Both act on the single
// call's index resolution.
//
// # Concurrency
//
// All operations are synchronous and single-threaded; an Indexer holds no
// locks. Callers sharing one across goroutines must serialize access.
package rowdex
