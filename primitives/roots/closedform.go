package roots

import "math"

// SolveLinear returns the root of c + b*x
func SolveLinear(c, b float64) Root {
	return Real{Value: -c / b}
}

// SolveQuadratic returns the roots of c + b*x + a*x^2 with a != 0.
// A double root is returned once, complex roots as a single ComplexPair.
func SolveQuadratic(c, b, a, precision float64) []Root {
	d := b*b - 4*a*c

	switch {
	case math.Abs(d) < precision:
		return []Root{Real{Value: -b / (2 * a)}}

	case d > 0:
		// q = -(b + sign(b) sqrt(d)) / 2 never subtracts two close values,
		// the second root comes from the product of the roots c/a
		sign := 1.0
		if b < 0 {
			sign = -1
		}
		q := -0.5 * (b + sign*math.Sqrt(d))
		return []Root{Real{Value: q / a}, Real{Value: c / q}}

	default:
		return []Root{newComplexPair(-b/(2*a), math.Sqrt(-d)/(2*a))}
	}
}
