package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind of every construction error.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by CheckedDiv when a divisor component is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// ErrInvalidDimension indicates a negative dimension was requested.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func newInvalidDimension(dim int) error {
	return &ErrInvalidDimension{Dimension: dim, cause: ErrInvalidArgument}
}

// ErrOutOfRange indicates a component that cannot be represented in the
// requested narrower type.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOutOfRange struct {
	Index int
	Value float64
	cause error
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("component %d out of range: %g", e.Index, e.Value)
}

func (e *ErrOutOfRange) Unwrap() error { return e.cause }
