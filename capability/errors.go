package capability

import (
	"errors"
	"strconv"
)

// ErrEmptyName is returned when a variant is registered without a name.
var ErrEmptyName = errors.New("capability: empty variant name")

// DuplicateNameError is returned when a variant is registered under a name
// that is already taken in the sequence.
type DuplicateNameError struct{ Name string }

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	// Example: capability: duplicate variant "circle"
	return "capability: duplicate variant " + strconv.Quote(e.Name)
}

// UnknownNameError is returned by Get when no variant is registered under Name.
type UnknownNameError struct{ Name string }

// Error implements the error interface.
func (e UnknownNameError) Error() string {
	// Example: capability: unknown variant "triangle"
	return "capability: unknown variant " + strconv.Quote(e.Name)
}
