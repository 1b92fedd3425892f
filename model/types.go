package model

// Row is a single record of a tabular data source: a mapping from column
// name to scalar value. The indexing core only interprets the columns named
// in the primary key; everything else is opaque payload.
type Row map[string]any

// Clone returns a shallow copy of the row, or nil for a nil row.
// Returned rows can be held by callers without aliasing store internals.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}

	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}
