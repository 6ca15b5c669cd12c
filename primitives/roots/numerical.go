package roots

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/polynomial"
)

const (
	// bisectionIterations caps a bisection run; a float64 bracket cannot
	// usefully be halved more often than this
	bisectionIterations = 100

	// startOffsetScale is applied to every starting point to get a second,
	// nearby one in a possibly different basin of attraction
	startOffsetScale = 0.7
)

// SolveNumerical searches the real roots of p, whose actual degree must be
// at least 1, with Newton-Raphson from a spread of starting points.
// The search is best effort: fewer roots than the degree may be returned.
func SolveNumerical(p polynomial.Polynomial, cfg config.Config) []Root {
	p = p.Trim(cfg.Precision)
	degree := len(p) - 1
	if degree < 1 {
		return nil
	}

	bound := CauchyBound(p)
	starts := StartingPoints(bound, degree)

	var found []float64
	for _, x0 := range starts {
		if len(found) >= degree {
			break
		}

		x, ok := Newton(p, x0, cfg)
		if !ok {
			log.Debugf("no root found starting from %g", x0)
			continue
		}
		if isDuplicate(found, x, cfg.DedupDistance()) {
			continue
		}
		found = append(found, x)
	}

	log.WithFields(log.Fields{
		"degree": degree,
		"bound":  bound,
		"found":  len(found),
	}).Debug("numerical root search done")

	roots := make([]Root, len(found))
	for i, x := range found {
		roots[i] = Real{Value: x}
	}
	return roots
}

// CauchyBound returns 1 + max_{i<d} |p[i]| / |p[d]|, every real root of p
// lies in [-bound, bound]. p must be trimmed to its actual degree d.
func CauchyBound(p polynomial.Polynomial) float64 {
	degree := len(p) - 1
	var m float64
	for _, c := range p[:degree] {
		m = math.Max(m, math.Abs(c))
	}
	return 1 + m/math.Abs(p[degree])
}

// StartingPoints returns 0 followed by 2*(degree+5) points spread evenly on
// [-bound, bound], each point being followed by its 0.7 scaled variant
func StartingPoints(bound float64, degree int) []float64 {
	count := 2 * (degree + 5)
	points := make([]float64, 0, 1+2*count)
	points = append(points, 0)

	step := 2 * bound / float64(count-1)
	for i := 0; i < count; i++ {
		x := -bound + float64(i)*step
		points = append(points, x, startOffsetScale*x)
	}
	return points
}

// Newton runs Newton-Raphson from x0.
// On a flat tangent it falls back to bisection on [x-1, x+1].
// ok is false when the run did not converge to a root; this is not an error.
func Newton(p polynomial.Polynomial, x0 float64, cfg config.Config) (root float64, ok bool) {
	x := x0
	for i := 0; i < cfg.MaxIterations; i++ {
		fx := polynomial.Evaluate(p, x)
		if math.Abs(fx) < cfg.Precision {
			return x, true
		}

		dfx := polynomial.EvaluateDerivative(p, x)
		if math.Abs(dfx) < cfg.Precision {
			return Bisection(p, x-1, x+1, cfg)
		}

		xNew := x - fx/dfx
		if math.IsNaN(xNew) || math.IsInf(xNew, 0) {
			return 0, false
		}

		if math.Abs(xNew-x) < cfg.Precision {
			// the steps vanished, make sure this is not a plateau
			if math.Abs(polynomial.Evaluate(p, xNew)) < cfg.Precision {
				return xNew, true
			}
			return 0, false
		}
		x = xNew
	}
	return 0, false
}

// Bisection halves [a, b] until it isolates a root.
// f(a) and f(b) must have opposite signs, otherwise ok is false.
func Bisection(p polynomial.Polynomial, a, b float64, cfg config.Config) (root float64, ok bool) {
	fa := polynomial.Evaluate(p, a)
	fb := polynomial.Evaluate(p, b)
	if fa*fb >= 0 {
		return 0, false
	}

	var mid float64
	for i := 0; i < bisectionIterations; i++ {
		mid = (a + b) / 2
		fm := polynomial.Evaluate(p, mid)
		if math.Abs(fm) < cfg.Precision || b-a < cfg.Precision {
			return mid, true
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return mid, true
}

func isDuplicate(found []float64, x, distance float64) bool {
	for _, y := range found {
		if math.Abs(x-y) < distance {
			return true
		}
	}
	return false
}
