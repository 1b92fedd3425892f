package rowdex

import (
	"time"

	"github.com/hupe1980/rowdex/model"
	"github.com/hupe1980/rowdex/rowstore"
)

// Status reports how a mutation request concluded.
type Status int

const (
	// StatusHandled means the storage change was applied and the index
	// reconciled.
	StatusHandled Status = iota
	// StatusDeclined means the mutation delegate did not apply the change;
	// data and index are untouched. This is not an error: it signals the
	// caller that the mutation must be handled elsewhere.
	StatusDeclined
	// StatusNotFound means no row matched the search argument. Only
	// DeleteRow reports it.
	StatusNotFound
)

// String returns a string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusHandled:
		return "handled"
	case StatusDeclined:
		return "declined"
	case StatusNotFound:
		return "not found"
	default:
		return "invalid"
	}
}

// Indexer augments a row-oriented store with primary-key lookup, insertion
// and deletion without requiring the store to be sorted or natively
// indexed. It owns two pieces of derived state: the resolved key columns
// and a cached ordering permutation over row positions. Both are caches —
// the store stays the source of truth for row existence and content.
//
// Execution is single-threaded and synchronous by contract. An Indexer
// holds no locks; callers sharing one across goroutines must serialize
// access themselves.
type Indexer struct {
	store rowstore.Store
	mut   rowstore.Mutator

	cfgKey  []string // key from options; survives ResetKey
	key     []string // resolved key, cached until ResetKey
	keyName string

	perm []int // ordering permutation; nil when absent or presorted

	logger  *Logger
	metrics MetricsCollector
}

// New creates an Indexer over the given store. mut receives delegated
// mutation requests; it may be nil for read-only use, in which case
// InsertRow and DeleteRow report StatusDeclined without touching anything.
func New(store rowstore.Store, mut rowstore.Mutator, optFns ...Option) *Indexer {
	o := applyOptions(optFns)

	return &Indexer{
		store:   store,
		mut:     mut,
		cfgKey:  o.key,
		key:     o.key,
		keyName: o.keyName,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// location is the outcome of one resolution+search pass.
type location struct {
	key   []string
	tuple []any
	perm  []int
	pos   int // index space if perm is active, store space otherwise
	found bool
}

// physical returns the store position of a found match.
func (l location) physical() int {
	if l.perm != nil {
		return l.perm[l.pos]
	}

	return l.pos
}

func (ix *Indexer) locate(sarg any, optFns []SearchOption) (location, error) {
	so := applySearchOptions(optFns)

	key, err := ix.resolveKey(sarg)
	if err != nil {
		return location{}, err
	}

	tuple, err := normalize(key, sarg)
	if err != nil {
		return location{}, err
	}

	perm := ix.resolvePerm(key, so)
	pos, found := ix.search(key, tuple, perm)

	return location{key: key, tuple: tuple, perm: perm, pos: pos, found: found}, nil
}

// FindRow returns the row matching the search argument, with found=false
// when no row matches. A nil sarg is the cache-invalidation entry point: it
// clears the cached permutation and returns nothing, like Invalidate.
func (ix *Indexer) FindRow(sarg any, optFns ...SearchOption) (model.Row, bool, error) {
	if sarg == nil {
		ix.Invalidate()
		return nil, false, nil
	}

	start := time.Now()

	loc, err := ix.locate(sarg, optFns)

	ix.metrics.RecordFind(time.Since(start), loc.found, err)
	ix.logger.LogFind(loc.key, loc.found, err)

	if err != nil || !loc.found {
		return nil, false, err
	}

	return ix.store.RowAt(loc.physical()), true, nil
}

// FindRowIndex returns the physical store position of the match,
// dereferenced through the active permutation. When no row matches it
// returns the insertion point (in index space) with found=false.
func (ix *Indexer) FindRowIndex(sarg any, optFns ...SearchOption) (int, bool, error) {
	start := time.Now()

	loc, err := ix.locate(sarg, optFns)

	ix.metrics.RecordFind(time.Since(start), loc.found, err)
	ix.logger.LogFind(loc.key, loc.found, err)

	if err != nil {
		return 0, false, err
	}
	if loc.found {
		return loc.physical(), true, nil
	}

	return loc.pos, false, nil
}

// InsertRow requests that the row be appended through the mutation delegate
// and keeps the index consistent. The row's own values serve as the search
// argument, so an existing equal key fails with ErrDuplicateKey before
// anything is mutated. StatusDeclined means the delegate did not apply the
// change; data and index are then untouched.
func (ix *Indexer) InsertRow(row model.Row, optFns ...SearchOption) (Status, error) {
	start := time.Now()

	status, err := ix.insertRow(row, optFns)

	ix.metrics.RecordInsert(time.Since(start), err)
	ix.logger.LogInsert(ix.key, status, err)

	return status, err
}

func (ix *Indexer) insertRow(row model.Row, optFns []SearchOption) (Status, error) {
	loc, err := ix.locate(row, optFns)
	if err != nil {
		return StatusDeclined, err
	}

	if loc.found {
		return StatusDeclined, &ErrDuplicateKey{Key: loc.tuple}
	}

	if ix.mut == nil || !ix.mut.AddRow(row).Handled() {
		return StatusDeclined, nil
	}

	// The row now occupies the last physical slot.
	if loc.perm != nil {
		ix.spliceIn(loc.pos, ix.store.RowCount()-1)
	}

	return StatusHandled, nil
}

// DeleteRow locates the row matching the search argument and requests its
// deletion through the mutation delegate. On StatusHandled the deleted
// row's data is returned and the index spliced; StatusDeclined means a row
// matched but the delegate did not act; StatusNotFound means no row
// matched. Nothing is mutated except on StatusHandled.
func (ix *Indexer) DeleteRow(sarg any, optFns ...SearchOption) (model.Row, Status, error) {
	start := time.Now()

	row, status, err := ix.deleteRow(sarg, optFns)

	ix.metrics.RecordDelete(time.Since(start), err)
	ix.logger.LogDelete(ix.key, status, err)

	return row, status, err
}

func (ix *Indexer) deleteRow(sarg any, optFns []SearchOption) (model.Row, Status, error) {
	loc, err := ix.locate(sarg, optFns)
	if err != nil {
		return nil, StatusDeclined, err
	}

	if !loc.found {
		return nil, StatusNotFound, nil
	}

	phys := loc.physical()
	row := ix.store.RowAt(phys).Clone()

	if ix.mut == nil || !ix.mut.DeleteRowAt(phys).Handled() {
		return nil, StatusDeclined, nil
	}

	if loc.perm != nil {
		ix.spliceOut(loc.pos)
	}

	return row, StatusHandled, nil
}

// Invalidate discards the cached ordering permutation. The next search
// rebuilds it from the store.
func (ix *Indexer) Invalidate() {
	ix.perm = nil
}

// ResetKey discards a derived primary key so the next search derives it
// afresh; a key configured at construction stays in force. A key change
// invalidates the permutation, forcing a full rebuild.
func (ix *Indexer) ResetKey() {
	ix.key = ix.cfgKey
	ix.Invalidate()
}

// Key returns the currently resolved primary-key columns, or nil when no
// key has been configured or derived yet.
func (ix *Indexer) Key() []string {
	return ix.key
}
