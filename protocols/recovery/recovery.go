package recovery

import (
	"encoding/hex"
	"fmt"

	"github.com/algorand/go-algorand-sdk/encoding/msgpack"
	log "github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"

	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/lagrange"
	"github.com/shaih/go-polyroots/primitives/polynomial"
	"github.com/shaih/go-polyroots/primitives/roots"
	"github.com/shaih/go-polyroots/primitives/verify"
)

// Root kinds in a RootRecord
const (
	KindReal    = "real"
	KindComplex = "complex"
)

// RootRecord is the encodable form of a roots.Root.
// For a complex pair, Im is the positive imaginary part.
type RootRecord struct {
	Kind string  `codec:"kind"`
	Re   float64 `codec:"re"`
	Im   float64 `codec:"im,omitempty"`
}

// Result is everything recovered from a sample set
type Result struct {
	Digest       string                `codec:"digest"` // blake3 of the msgpack encoded samples
	Samples      []lagrange.Sample     `codec:"samples"`
	Coefficients polynomial.Polynomial `codec:"coefficients"`
	Degree       int                   `codec:"degree"`
	Constant     float64               `codec:"constant"`

	Roots       []roots.Root `codec:"-"`
	RootRecords []RootRecord `codec:"roots"`
	// Complete is false when the numerical search found fewer roots than the degree
	Complete bool `codec:"complete"`

	Verification     verify.Report     `codec:"verification"`
	RootVerification verify.RootReport `codec:"root_verification"`
}

// Run interpolates the samples, then extracts the constant term and the
// roots and verifies the polynomial against the samples.
// Only interpolation failures (and an invalid config) are returned as errors;
// a short root list or a failed verification are reported in the Result.
func Run(samples []lagrange.Sample, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	digest := Digest(samples)
	myLog := log.WithFields(log.Fields{
		"digest":  digest[:16],
		"samples": len(samples),
	})

	coeffs, err := lagrange.ComputeCoefficients(samples, cfg)
	if err != nil {
		myLog.Errorf("interpolation failed: %v", err)
		return nil, fmt.Errorf("failed to interpolate %d samples: %w", len(samples), err)
	}

	res := &Result{
		Digest:       digest,
		Samples:      samples,
		Coefficients: coeffs,
		Degree:       coeffs.Degree(cfg.Precision),
		Constant:     coeffs[0],
	}
	myLog = myLog.WithField("degree", res.Degree)

	res.Roots = roots.Sort(roots.FindRoots(coeffs, cfg))
	res.RootRecords = Records(res.Roots)
	// the closed forms are exhaustive, a double root being listed once
	res.Complete = res.Degree <= 2 || len(roots.Values(res.Roots)) == res.Degree
	if !res.Complete {
		myLog.Infof("found %d of %d roots", len(roots.Values(res.Roots)), res.Degree)
	}

	tolerance := verify.DefaultTolerance(cfg)
	res.Verification = verify.Samples(coeffs, samples, tolerance)
	if !res.Verification.Passed {
		myLog.Warnf("verification failed: max residual %g above %g",
			res.Verification.MaxResidual, tolerance)
	}
	res.RootVerification = verify.Roots(coeffs, res.Roots, rootTolerance(coeffs, cfg))

	myLog.Debugf("constant term %g, %d roots", res.Constant, len(res.Roots))
	return res, nil
}

// Digest identifies a sample set
func Digest(samples []lagrange.Sample) string {
	sum := blake3.Sum256(msgpack.Encode(samples))
	return hex.EncodeToString(sum[:])
}

// Records converts roots to their encodable form
func Records(rs []roots.Root) []RootRecord {
	records := make([]RootRecord, len(rs))
	for i, r := range rs {
		switch r := r.(type) {
		case roots.Real:
			records[i] = RootRecord{Kind: KindReal, Re: r.Value}
		case roots.ComplexPair:
			records[i] = RootRecord{Kind: KindComplex, Re: r.Re, Im: r.Im}
		}
	}
	return records
}

// rootTolerance scales the precision with the size of the coefficients,
// |p(r)| at a computed root is only as small as the rounding on them
func rootTolerance(p polynomial.Polynomial, cfg config.Config) float64 {
	scale := 1.0
	for _, c := range p {
		if c < 0 {
			c = -c
		}
		if c > scale {
			scale = c
		}
	}
	return verify.DefaultTolerance(cfg) * scale
}
