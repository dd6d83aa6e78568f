package linalg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the linalg package.
var (
	// ErrInvalidDimensions indicates a negative or otherwise malformed
	// size was requested for a Vector or Matrix.
	ErrInvalidDimensions = errors.New("linalg: invalid dimensions")

	// ErrDimensionMismatch indicates two operands have incompatible
	// shapes for the requested operation.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrIndexOutOfRange indicates a row/column/element index fell
	// outside the valid bounds of a Vector or Matrix.
	ErrIndexOutOfRange = errors.New("linalg: index out of range")

	// ErrNotSquare indicates a square matrix was required but the
	// operand was not square.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrSingular indicates a matrix inverse was requested for a matrix
	// with no nonzero pivot in some column (determinant zero).
	ErrSingular = errors.New("linalg: singular matrix")
)

func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
