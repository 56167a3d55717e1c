package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// BinaryCrossEntropy returns the negative log-likelihood of label under a
// sigmoid output:
//
//	loss = -log(out)      if label == 1
//	loss = -log(1 - out)  if label == 0
//
// Panics if label is not 0 or 1. A saturated output (exactly 0 or 1) makes
// the log argument zero, which panics with *autodiff.ArithmeticError.
func BinaryCrossEntropy(out *autodiff.Scalar, label int) *autodiff.Scalar {
	var prob *autodiff.Scalar
	switch label {
	case 1:
		prob = out
	case 0:
		prob = out.Neg().AddConst(1.0)
	default:
		panic(fmt.Sprintf("BinaryCrossEntropy: label must be 0 or 1, got %d", label))
	}
	return prob.Log().Neg()
}

// Correct reports whether a sigmoid output classifies label correctly at the
// 0.5 threshold. An output of exactly 0.5 is never correct.
func Correct(out *autodiff.Scalar, label int) bool {
	if label == 1 {
		return out.Value() > 0.5
	}
	return out.Value() < 0.5
}
