package rowstore

import (
	"github.com/hupe1980/rowdex/model"
)

// Store is the row storage capability consumed by the indexing core.
// It is the source of truth for row existence and content; the core reads
// through it but never mutates through it.
type Store interface {
	// RowCount returns the number of rows currently stored.
	RowCount() int

	// RowAt returns the row at the given physical position,
	// 0 <= pos < RowCount().
	RowAt(pos int) model.Row
}

// Lister is an optional Store capability: a locally materialized copy of
// all rows. The key resolver uses it to score column selectivity; remote or
// virtualized stores simply do not implement it.
type Lister interface {
	// Rows returns all rows in physical position order.
	Rows() []model.Row
}

// Outcome reports how a delegated mutation request concluded.
//
// The three values keep "nobody answered" distinct from "a delegate
// answered no"; collapsing both into a boolean loses that signal.
type Outcome int

const (
	// OutcomeUnhandled means no delegate responded to the request.
	OutcomeUnhandled Outcome = iota
	// OutcomeDeclined means a delegate responded but refused the mutation.
	OutcomeDeclined
	// OutcomeHandled means the storage change was applied.
	OutcomeHandled
)

// Handled reports whether the storage change was applied.
func (o Outcome) Handled() bool { return o == OutcomeHandled }

// String returns a string representation of the Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnhandled:
		return "unhandled"
	case OutcomeDeclined:
		return "declined"
	case OutcomeHandled:
		return "handled"
	default:
		return "invalid"
	}
}

// Mutator is the mutation delegation capability. The indexing core never
// mutates storage directly: it requests the change and reconciles its index
// only after the delegate reports OutcomeHandled.
type Mutator interface {
	// AddRow requests that the row be appended to storage.
	AddRow(row model.Row) Outcome

	// DeleteRowAt requests deletion of the row at the given physical
	// position. Positions past the deleted one shift down by one.
	DeleteRowAt(pos int) Outcome
}
