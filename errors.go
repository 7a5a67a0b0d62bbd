package binvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/binvec/bitvec"
)

var (
	// ErrNilVector is returned when a nil vector is passed as an operand.
	ErrNilVector = bitvec.ErrNilVector

	// ErrProbeBudgetExhausted is returned when a Hamming adjustment visits
	// ProbeFactor·n positions without reaching its flip target. It signals a broken
	// random source, not a caller error.
	ErrProbeBudgetExhausted = errors.New("probe budget exhausted")
)

// ErrDimensionMismatch indicates that operands have different dimensions.
type ErrDimensionMismatch = bitvec.ErrDimensionMismatch

// ErrInvalidWeight indicates unusable weights for a weighted combination:
// a negative, NaN or infinite weight, or a non-positive sum.
type ErrInvalidWeight struct {
	WeightA float64
	WeightB float64
}

func (e *ErrInvalidWeight) Error() string {
	return fmt.Sprintf("invalid weights: %g and %g", e.WeightA, e.WeightB)
}
