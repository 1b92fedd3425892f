package rowdex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when the primary key must be derived
	// from the search argument but the argument is a scalar.
	ErrInvalidArgument = errors.New("cannot derive key from non-object argument")

	// ErrAmbiguousSearchArgument is returned when a scalar search argument
	// is given against a multi-column key.
	ErrAmbiguousSearchArgument = errors.New("scalar search argument requires a single-column key")
)

// ErrMissingKeyColumn indicates a mapping search argument omits a required
// key column.
type ErrMissingKeyColumn struct {
	Column string
}

func (e *ErrMissingKeyColumn) Error() string {
	return fmt.Sprintf("search argument is missing key column %q", e.Column)
}

// ErrIncompleteSearchArgument indicates the normalized key tuple does not
// cover the full key. This is a defensive invariant check; a well-formed
// argument cannot trigger it.
type ErrIncompleteSearchArgument struct {
	Want int
	Got  int
}

func (e *ErrIncompleteSearchArgument) Error() string {
	return fmt.Sprintf("incomplete search argument: key has %d columns, got %d values", e.Want, e.Got)
}

// ErrDuplicateKey indicates an insert was requested for a key that already
// exists. The failed attempt leaves data and index untouched.
type ErrDuplicateKey struct {
	Key []any
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}
