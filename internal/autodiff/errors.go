package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// ErrArithmetic is matched by every *ArithmeticError via errors.Is.
var ErrArithmetic = errors.New("arithmetic domain error")

// ArithmeticError reports an operation applied outside its domain, such as
// log of a non-positive number or division by zero, or a local derivative
// that overflowed during Backward.
//
// Scalar methods panic with this value; callers that need an error (the
// trainer, for instance) recover it and use errors.As.
type ArithmeticError struct {
	Op     ops.Kind  // Operation that failed
	Inputs []float64 // Operand values
	Result float64   // The non-finite result that was rejected

	Backward bool // Result is a gradient rather than a forward value
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	if e.Backward {
		return fmt.Sprintf("autodiff: gradient of %s%v is not finite (got %v)", e.Op, e.Inputs, e.Result)
	}
	return fmt.Sprintf("autodiff: %s%v is not finite (got %v)", e.Op, e.Inputs, e.Result)
}

// Unwrap returns ErrArithmetic.
func (e *ArithmeticError) Unwrap() error {
	return ErrArithmetic
}
