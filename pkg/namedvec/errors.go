package namedvec

import (
	"fmt"

	"github.com/pkg/errors"
)

// Faults are raised as panics carrying one of these errors (wrapped with a
// stack trace). Recover and match with errors.Is.
var (
	ErrInvalidReference = errors.New("invalid reference")
	ErrOutOfBounds      = errors.New("index out of bounds")
	ErrNameMismatch     = errors.New("name mismatch")
	ErrDuplicateName    = errors.New("duplicate name")
)

// LookupError reports a Lookup that did not resolve to an element.
type LookupError struct {
	Op     string
	Lookup Lookup
	Len    int
}

func (e *LookupError) Error() string {
	if e.Lookup.byName {
		return fmt.Sprintf("%s: no element named %s", e.Op, e.Lookup)
	}
	return fmt.Sprintf("%s: index %s out of range for length %d", e.Op, e.Lookup, e.Len)
}

func (e *LookupError) Unwrap() error { return ErrInvalidReference }

// BoundsError reports a position or length outside the valid range.
type BoundsError struct {
	Op    string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// NameError reports a write that would break name uniqueness or rename an
// element through a path that does not re-key the index.
type NameError struct {
	Op    string
	Index int
	Have  string
	Want  string
	cause error
}

func (e *NameError) Error() string {
	if e.cause == ErrDuplicateName {
		return fmt.Sprintf("%s: name %q already used at index %d", e.Op, e.Want, e.Index)
	}
	return fmt.Sprintf("%s: index %d holds %q, got %q", e.Op, e.Index, e.Have, e.Want)
}

func (e *NameError) Unwrap() error { return e.cause }

// IsFault reports whether err is one of the faults raised by Vec, as opposed
// to a runtime error.
func IsFault(err error) bool {
	return errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrNameMismatch) ||
		errors.Is(err, ErrDuplicateName)
}

func fault(err error) {
	panic(errors.WithStack(err))
}
