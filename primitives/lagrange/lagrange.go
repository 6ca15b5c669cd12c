package lagrange

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/polynomial"
)

// Sample is a point (x, y) the polynomial must go through
type Sample struct {
	X float64 `codec:"x"`
	Y float64 `codec:"y"`
}

// ComputeCoefficients returns the coefficients of the unique polynomial of
// degree at most n-1 going through the n samples.
// The samples are sorted by x first so that equivalent inputs given in a
// different order produce the same vector.
func ComputeCoefficients(samples []Sample, cfg config.Config) (polynomial.Polynomial, error) {
	sorted, err := prepare(samples)
	if err != nil {
		return nil, err
	}
	if len(sorted) == 1 {
		return polynomial.Constant(sorted[0].Y), nil
	}

	// result = sum_i y_i * L_i(x)
	result := polynomial.Zero(len(sorted))
	for i := range sorted {
		basis, err := Basis(sorted, i, cfg.Precision)
		if err != nil {
			return nil, err
		}
		result = result.AddScaled(sorted[i].Y, basis)
	}

	return result.Cleanup(cfg.Precision), nil
}

// Basis returns the Lagrange basis polynomial L_i of the samples,
// equal to 1 at samples[i].X and 0 at every other x-coordinate:
// L_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j)
func Basis(samples []Sample, i int, precision float64) (polynomial.Polynomial, error) {
	xi := samples[i].X
	basis := polynomial.Constant(1)
	for j := range samples {
		if j == i {
			continue
		}
		xj := samples[j].X
		denom := xi - xj
		if math.Abs(denom) < precision {
			return nil, &IllConditionedError{Xi: xi, Xj: xj, Precision: precision}
		}
		basis = basis.MulLinear(xj).Scale(1 / denom)
	}
	return basis, nil
}

// EvaluateAt evaluates the interpolating polynomial at x directly,
// without computing its coefficients.
// EvaluateAt(samples, 0, cfg) is the constant term.
func EvaluateAt(samples []Sample, x float64, cfg config.Config) (float64, error) {
	sorted, err := prepare(samples)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range sorted {
		term := sorted[i].Y
		for j := range sorted {
			if i == j {
				continue
			}
			denom := sorted[i].X - sorted[j].X
			if math.Abs(denom) < cfg.Precision {
				return 0, &IllConditionedError{Xi: sorted[i].X, Xj: sorted[j].X, Precision: cfg.Precision}
			}
			term *= (x - sorted[j].X) / denom
		}
		sum += term
	}
	return sum, nil
}

// prepare validates the samples and returns a sorted copy
func prepare(samples []Sample) ([]Sample, error) {
	if len(samples) == 0 {
		return nil, &DegenerateInputError{}
	}

	seen := make(map[float64]struct{}, len(samples))
	for _, s := range samples {
		if _, ok := seen[s.X]; ok {
			return nil, &DuplicateXError{X: s.X}
		}
		seen[s.X] = struct{}{}
	}

	sorted := slices.Clone(samples)
	slices.SortFunc(sorted, func(a, b Sample) bool {
		return a.X < b.X
	})
	return sorted, nil
}
