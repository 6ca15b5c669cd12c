package recovery

import (
	"fmt"
	"io"
	"strings"

	"github.com/algorand/go-algorand-sdk/encoding/msgpack"
	"github.com/ugorji/go/codec"
)

// EncodeJSON writes the result as indented JSON
func EncodeJSON(w io.Writer, res *Result) error {
	h := &codec.JsonHandle{Indent: 2}
	if err := codec.NewEncoder(w, h).Encode(res); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// EncodeMsgpack writes the result as msgpack
func EncodeMsgpack(w io.Writer, res *Result) error {
	_, err := w.Write(msgpack.Encode(res))
	return err
}

// WriteText writes a human readable report of the result
func WriteText(w io.Writer, name string, res *Result) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n%s\n", name, strings.Repeat("=", len(name)))
	fmt.Fprintf(&sb, "digest:       %s\n", res.Digest)
	fmt.Fprintf(&sb, "samples:      %d\n", len(res.Samples))
	fmt.Fprintf(&sb, "polynomial:   %v\n", res.Coefficients)
	fmt.Fprintf(&sb, "coefficients: %v\n", []float64(res.Coefficients))
	fmt.Fprintf(&sb, "degree:       %d\n", res.Degree)
	fmt.Fprintf(&sb, "constant:     %.10g\n", res.Constant)

	if len(res.Roots) == 0 {
		sb.WriteString("roots:        none\n")
	} else {
		sb.WriteString("roots:\n")
		for _, r := range res.Roots {
			fmt.Fprintf(&sb, "  %v\n", r)
		}
	}
	if !res.Complete {
		sb.WriteString("              (partial: not every root was found)\n")
	}

	verdict := "PASSED"
	if !res.Verification.Passed {
		verdict = "FAILED"
	}
	fmt.Fprintf(&sb, "verification: %s (max residual %.3g, tolerance %.3g)\n",
		verdict, res.Verification.MaxResidual, res.Verification.Tolerance)
	for _, c := range res.Verification.Checks {
		fmt.Fprintf(&sb, "  f(%g) = %.10g, expected %.10g, residual %.3g\n",
			c.X, c.Evaluated, c.Expected, c.Residual)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
