package verify

import (
	"math"
	"math/cmplx"

	"github.com/montanaflynn/stats"

	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/lagrange"
	"github.com/shaih/go-polyroots/primitives/polynomial"
	"github.com/shaih/go-polyroots/primitives/roots"
)

// Check is the outcome of re-evaluating the polynomial at one sample
type Check struct {
	X         float64 `codec:"x"`
	Expected  float64 `codec:"expected"`
	Evaluated float64 `codec:"evaluated"`
	Residual  float64 `codec:"residual"`
}

// Report is the verdict of Samples.
// A failed verification is diagnostic, it is never turned into an error.
type Report struct {
	Passed         bool    `codec:"passed"`
	Tolerance      float64 `codec:"tolerance"`
	Checks         []Check `codec:"checks"`
	MaxResidual    float64 `codec:"max_residual"`
	MeanResidual   float64 `codec:"mean_residual"`
	MedianResidual float64 `codec:"median_residual"`
}

// DefaultTolerance is the residual accepted for a sample
func DefaultTolerance(cfg config.Config) float64 {
	return cfg.Precision * 100
}

// Samples evaluates p at every sample and compares with the expected y
func Samples(p polynomial.Polynomial, samples []lagrange.Sample, tolerance float64) Report {
	report := Report{
		Passed:    true,
		Tolerance: tolerance,
		Checks:    make([]Check, len(samples)),
	}

	residuals := make([]float64, len(samples))
	for i, s := range samples {
		y := polynomial.Evaluate(p, s.X)
		r := math.Abs(y - s.Y)
		report.Checks[i] = Check{X: s.X, Expected: s.Y, Evaluated: y, Residual: r}
		residuals[i] = r
		// NaN residuals fail as well
		if !(r <= tolerance) {
			report.Passed = false
		}
	}

	report.MaxResidual, report.MeanResidual, report.MedianResidual = summarize(residuals)
	return report
}

// RootCheck is |p(r)| for one root; pairs are checked at Re + i*Im
type RootCheck struct {
	Root     string  `codec:"root"`
	Residual float64 `codec:"residual"`
}

// RootReport is the verdict of Roots
type RootReport struct {
	Passed      bool        `codec:"passed"`
	Tolerance   float64     `codec:"tolerance"`
	Checks      []RootCheck `codec:"checks"`
	MaxResidual float64     `codec:"max_residual"`
}

// Roots evaluates p at every root, real or complex.
// The residual of a pair is the one of its upper half, the conjugate has
// the same magnitude for a real polynomial.
func Roots(p polynomial.Polynomial, rs []roots.Root, tolerance float64) RootReport {
	report := RootReport{
		Passed:    true,
		Tolerance: tolerance,
		Checks:    make([]RootCheck, len(rs)),
	}

	for i, root := range rs {
		var r float64
		switch root := root.(type) {
		case roots.Real:
			r = math.Abs(polynomial.Evaluate(p, root.Value))
		case roots.ComplexPair:
			r = cmplx.Abs(polynomial.EvaluateComplex(p, root.Complex()))
		}
		report.Checks[i] = RootCheck{Root: root.String(), Residual: r}
		report.MaxResidual = math.Max(report.MaxResidual, r)
		if !(r <= tolerance) {
			report.Passed = false
		}
	}
	return report
}

func summarize(residuals []float64) (hi, mean, median float64) {
	if len(residuals) == 0 {
		return 0, 0, 0
	}
	// errors only occur on empty input
	hi, _ = stats.Max(residuals)
	mean, _ = stats.Mean(residuals)
	median, _ = stats.Median(residuals)
	return hi, mean, median
}
