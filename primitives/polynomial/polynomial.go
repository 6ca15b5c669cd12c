package polynomial

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Polynomial is a representation of a real polynomial by its coefficients.
// Coefficient i multiplies x^i, so p[0] is the constant term.
// Methods never modify the receiver, every result is a fresh slice.
type Polynomial []float64

// Zero returns the polynomial with n zero coefficients
func Zero(n int) Polynomial {
	return make(Polynomial, n)
}

// Constant returns the polynomial c
func Constant(c float64) Polynomial {
	return Polynomial{c}
}

// Clone returns a copy of p
func (p Polynomial) Clone() Polynomial {
	q := make(Polynomial, len(p))
	copy(q, p)
	return q
}

// Degree gets the actual degree of the polynomial, i.e. the highest index
// whose coefficient magnitude exceeds precision.
// The degree of the zero (or empty) polynomial is 0.
func (p Polynomial) Degree(precision float64) int {
	i := len(p) - 1
	for ; i > 0 && math.Abs(p[i]) <= precision; i-- {
	}
	if i < 0 {
		return 0
	}
	return i
}

// Trim drops the trailing coefficients that are numerically zero
func (p Polynomial) Trim(precision float64) Polynomial {
	if len(p) == 0 {
		return Polynomial{}
	}
	return p[:p.Degree(precision)+1].Clone()
}

// Cleanup zeroes every coefficient whose magnitude is below precision.
// The length of the polynomial is preserved.
func (p Polynomial) Cleanup(precision float64) Polynomial {
	q := p.Clone()
	for i := range q {
		if math.Abs(q[i]) < precision {
			q[i] = 0
		}
	}
	return q
}

// Add returns p + q
func (p Polynomial) Add(q Polynomial) Polynomial {
	long, short := p, q
	if len(short) > len(long) {
		long, short = short, long
	}
	r := long.Clone()
	floats.Add(r[:len(short)], short)
	return r
}

// AddScaled returns p + alpha * q
func (p Polynomial) AddScaled(alpha float64, q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := Zero(n)
	copy(r, p)
	floats.AddScaled(r[:len(q)], alpha, q)
	return r
}

// Scale returns c * p
func (p Polynomial) Scale(c float64) Polynomial {
	r := Zero(len(p))
	floats.ScaleTo(r, c, p)
	return r
}

// Mul returns the product p * q
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return Polynomial{}
	}
	r := Zero(len(p) + len(q) - 1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		floats.AddScaled(r[i:i+len(q)], a, q)
	}
	return r
}

// MulLinear returns p * (x - root), i.e. p * [-root, 1]
func (p Polynomial) MulLinear(root float64) Polynomial {
	return p.Mul(Polynomial{-root, 1})
}

// Derivative returns the analytical derivative of p.
// A polynomial of length <= 1 has the zero derivative.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	d := Zero(len(p) - 1)
	for i := 1; i < len(p); i++ {
		d[i-1] = float64(i) * p[i]
	}
	return d
}

// Equal reports whether p and q agree coefficientwise within tol.
// Missing trailing coefficients are treated as zero.
func (p Polynomial) Equal(q Polynomial, tol float64) bool {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		var a, b float64
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		if math.Abs(a-b) > tol {
			return false
		}
	}
	return true
}

// String prints p from the highest power down, skipping zero terms
func (p Polynomial) String() string {
	var sb strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%g", c)
		case 1:
			fmt.Fprintf(&sb, "%gx", c)
		default:
			fmt.Fprintf(&sb, "%gx^%d", c, i)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
