package lagrange

import (
	"errors"
	"fmt"
)

// ErrInterpolation is matched (errors.Is) by every interpolation failure.
// All of them are fatal: without coefficients nothing else can be computed.
var ErrInterpolation = errors.New("interpolation failed")

// DegenerateInputError is returned when no sample is supplied
type DegenerateInputError struct{}

func (e *DegenerateInputError) Error() string {
	return "cannot interpolate an empty sample set"
}

func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrInterpolation
}

// DuplicateXError is returned when two samples share an x-coordinate
type DuplicateXError struct {
	X float64
}

func (e *DuplicateXError) Error() string {
	return fmt.Sprintf("duplicate x-coordinate %v", e.X)
}

func (e *DuplicateXError) Is(target error) bool {
	return target == ErrInterpolation
}

// IllConditionedError is returned when two x-coordinates are closer than
// the precision threshold, making the basis denominator meaningless
type IllConditionedError struct {
	Xi, Xj    float64
	Precision float64
}

func (e *IllConditionedError) Error() string {
	return fmt.Sprintf("x-coordinates %v and %v differ by less than %g", e.Xi, e.Xj, e.Precision)
}

func (e *IllConditionedError) Is(target error) bool {
	return target == ErrInterpolation
}
