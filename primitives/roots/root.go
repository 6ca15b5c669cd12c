package roots

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Root is either a Real root or a ComplexPair of conjugate roots.
// Consumers switch on the concrete type; there are no other variants.
type Root interface {
	fmt.Stringer
	isRoot()
}

// Real is a real root
type Real struct {
	Value float64
}

// ComplexPair represents the conjugate roots Re + i*Im and Re - i*Im.
// Im is always positive, only the upper half is stored.
type ComplexPair struct {
	Re, Im float64
}

func (Real) isRoot()        {}
func (ComplexPair) isRoot() {}

func (r Real) String() string {
	return fmt.Sprintf("%g", r.Value)
}

func (c ComplexPair) String() string {
	return fmt.Sprintf("%g ± %gi", c.Re, c.Im)
}

// Complex returns the root with positive imaginary part
func (c ComplexPair) Complex() complex128 {
	return complex(c.Re, c.Im)
}

// Conjugate returns the root with negative imaginary part
func (c ComplexPair) Conjugate() complex128 {
	return complex(c.Re, -c.Im)
}

// newComplexPair normalizes the imaginary part to be positive
// newComplexPair keeps the positive imaginary part; adding zero turns a -0
// real part (e.g. from -b/2a with b = 0) into 0
func newComplexPair(re, im float64) ComplexPair {
	return ComplexPair{Re: re + 0, Im: math.Abs(im)}
}

// Sort returns a copy of the roots with the real roots first in ascending
// order, followed by the complex pairs ordered by real then imaginary part
func Sort(roots []Root) []Root {
	sorted := slices.Clone(roots)
	slices.SortStableFunc(sorted, func(a, b Root) bool {
		switch a := a.(type) {
		case Real:
			switch b := b.(type) {
			case Real:
				return a.Value < b.Value
			case ComplexPair:
				return true
			}
		case ComplexPair:
			switch b := b.(type) {
			case Real:
				return false
			case ComplexPair:
				if a.Re != b.Re {
					return a.Re < b.Re
				}
				return a.Im < b.Im
			}
		}
		return false
	})
	return sorted
}

// Values returns every root as a complex number, expanding each pair into
// both conjugates
func Values(roots []Root) []complex128 {
	values := make([]complex128, 0, len(roots))
	for _, r := range roots {
		switch r := r.(type) {
		case Real:
			values = append(values, complex(r.Value, 0))
		case ComplexPair:
			values = append(values, r.Complex(), r.Conjugate())
		}
	}
	return values
}

// RealValues returns the real roots only
func RealValues(roots []Root) []float64 {
	var values []float64
	for _, r := range roots {
		if r, ok := r.(Real); ok {
			values = append(values, r.Value)
		}
	}
	return values
}
