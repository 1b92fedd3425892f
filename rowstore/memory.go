package rowstore

import (
	"github.com/hupe1980/rowdex/model"
)

// Memory is a slice-backed Store that also implements Lister and Mutator.
// It is the trivial local store used by tests, examples, and embedders that
// keep their rows in process.
type Memory struct {
	rows []model.Row
}

// NewMemory creates a new in-memory store seeded with the given rows.
func NewMemory(rows ...model.Row) *Memory {
	return &Memory{rows: rows}
}

// RowCount returns the number of rows.
func (m *Memory) RowCount() int { return len(m.rows) }

// RowAt returns the row at the given physical position.
func (m *Memory) RowAt(pos int) model.Row { return m.rows[pos] }

// Rows returns all rows in physical position order.
func (m *Memory) Rows() []model.Row { return m.rows }

// AddRow appends the row.
func (m *Memory) AddRow(row model.Row) Outcome {
	if row == nil {
		return OutcomeDeclined
	}

	m.rows = append(m.rows, row)

	return OutcomeHandled
}

// DeleteRowAt removes the row at the given physical position, shifting
// subsequent rows down by one.
func (m *Memory) DeleteRowAt(pos int) Outcome {
	if pos < 0 || pos >= len(m.rows) {
		return OutcomeDeclined
	}

	m.rows = append(m.rows[:pos], m.rows[pos+1:]...)

	return OutcomeHandled
}
