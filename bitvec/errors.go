package bitvec

import (
	"errors"
	"fmt"
)

// ErrNilVector is returned when a nil *Vector is passed as an operand.
var ErrNilVector = errors.New("nil vector")

// ErrDimensionMismatch indicates that two operands have different dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates a non-positive dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
