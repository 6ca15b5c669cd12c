package shamir

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/lagrange"
	"github.com/shaih/go-polyroots/primitives/polynomial"
)

const (
	// CoefficientBound bounds the magnitude of the random coefficients.
	// Coefficients are integers so that shares stay exact for small n.
	CoefficientBound = 1000

	// SeedLength is the length of seeds generated when none is given
	SeedLength = 32
)

// Share is the value of the sharing polynomial at x = Index
type Share struct {
	Index int     `codec:"i"`
	Y     float64 `codec:"y"`
}

// Message is the shared secret, i.e. the constant term of the polynomial
type Message = float64

// GenerateShares creates shares of t-of-n secret sharing for some secret m.
// The coefficients a_1, ..., a_{t-1} are derived deterministically from the
// seed; a nil seed is replaced by a random one.
// It also returns the sharing polynomial f, with f(0) = m.
func GenerateShares(m Message, t int, n int, seed []byte) (shares []Share, f polynomial.Polynomial, err error) {
	if t < 1 || n < t {
		return nil, nil, fmt.Errorf("invalid threshold: need 1 <= t <= n, got t=%d n=%d", t, n)
	}

	if seed == nil {
		seed = make([]byte, SeedLength)
		if _, err = rand.Read(seed); err != nil {
			return nil, nil, fmt.Errorf("failed to generate seed: %w", err)
		}
	}

	// f(x) = a_0 + a_1 * x + ... + a_{t-1} * x^{t-1} where a_0 = m
	f = polynomial.Zero(t)
	f[0] = m
	coeffs, err := randomCoefficients(seed, t-1)
	if err != nil {
		return nil, nil, err
	}
	copy(f[1:], coeffs)

	// The share of participant i is s_i = f(i)
	shares = make([]Share, n)
	for i := 1; i <= n; i++ {
		shares[i-1] = Share{Index: i, Y: polynomial.Evaluate(f, float64(i))}
	}

	return shares, f, nil
}

// Reconstruct takes in t shares and then does polynomial interpolation
// evaluated at 0 to obtain the original message
func Reconstruct(shares []Share, cfg config.Config) (*Message, error) {
	m, err := lagrange.EvaluateAt(ToSamples(shares), 0, cfg)
	if err != nil {
		return nil, fmt.Errorf("error in polynomial interpolation: %w", err)
	}
	return &m, nil
}

// ToSamples converts shares to interpolation samples
func ToSamples(shares []Share) []lagrange.Sample {
	samples := make([]lagrange.Sample, len(shares))
	for i, s := range shares {
		samples[i] = lagrange.Sample{X: float64(s.Index), Y: s.Y}
	}
	return samples
}

// randomCoefficients expands the seed with HKDF-SHA256 into a ChaCha20 key
// and maps the keystream to integers in [-CoefficientBound, CoefficientBound]
func randomCoefficients(seed []byte, count int) ([]float64, error) {
	key := make([]byte, chacha20.KeySize)
	r := hkdf.New(sha256.New, seed, nil, []byte("shamir coefficients"))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to expand seed: %w", err)
	}

	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 8*count)
	stream.XORKeyStream(buf, buf)

	coeffs := make([]float64, count)
	for i := range coeffs {
		u := binary.LittleEndian.Uint64(buf[8*i:])
		coeffs[i] = float64(int64(u%(2*CoefficientBound+1)) - CoefficientBound)
	}
	return coeffs, nil
}
