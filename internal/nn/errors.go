package nn

import (
	"errors"
	"fmt"
)

// ErrShape is matched by every *ShapeError via errors.Is.
var ErrShape = errors.New("shape mismatch")

// ShapeError reports a forward call with the wrong number of inputs.
//
// Forward methods panic with this value before computing anything.
type ShapeError struct {
	Layer    string // Module name
	Expected int    // Required input count
	Got      int    // Supplied input count
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s.Forward: expected %d inputs, got %d", e.Layer, e.Expected, e.Got)
}

// Unwrap returns ErrShape.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}
