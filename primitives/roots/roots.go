package roots

import (
	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/polynomial"
)

// FindRoots returns the roots of p, dispatching on its actual degree:
// closed forms up to degree 2, the numerical search above.
// Degree 3 goes to the numerical search as well.
func FindRoots(p polynomial.Polynomial, cfg config.Config) []Root {
	p = p.Trim(cfg.Precision)
	degree := len(p) - 1

	switch {
	case degree < 1:
		return nil
	case degree == 1:
		return []Root{SolveLinear(p[0], p[1])}
	case degree == 2:
		return SolveQuadratic(p[0], p[1], p[2], cfg.Precision)
	default:
		return SolveNumerical(p, cfg)
	}
}
