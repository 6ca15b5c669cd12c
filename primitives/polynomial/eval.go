package polynomial

// Evaluate evaluates the polynomial p at a point x using Horner's method.
// The empty polynomial evaluates to 0.
func Evaluate(p Polynomial, x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// EvaluateDerivative evaluates p'(x) using Horner's method on the
// coefficients i*p[i] without allocating the derivative
func EvaluateDerivative(p Polynomial, x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 1; i-- {
		y = y*x + float64(i)*p[i]
	}
	return y
}

// EvaluateComplex evaluates p at a complex point z
func EvaluateComplex(p Polynomial, z complex128) complex128 {
	var y complex128
	for i := len(p) - 1; i >= 0; i-- {
		y = y*z + complex(p[i], 0)
	}
	return y
}

// Evaluate is the method form of Evaluate
func (p Polynomial) Evaluate(x float64) float64 {
	return Evaluate(p, x)
}
