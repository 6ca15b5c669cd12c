package shamir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/lagrange"
)

func TestShamirSecretSharing(t *testing.T) {
	cfg := config.Default()
	m := Message(1234)

	shares, f, err := GenerateShares(m, 3, 6, []byte("fixed seed"))
	require.NoError(t, err)
	require.Len(t, shares, 6)
	require.Len(t, f, 3)
	assert.Equal(t, m, f[0])

	reconstruct := []Share{shares[4], shares[1], shares[2]}
	res, err := Reconstruct(reconstruct, cfg)
	require.NoError(t, err)
	assert.InDelta(t, m, *res, 1e-6, "secret is recovered")

	// the coefficients themselves come back through interpolation
	p, err := lagrange.ComputeCoefficients(ToSamples(reconstruct), cfg)
	require.NoError(t, err)
	assert.True(t, f.Equal(p, 1e-6), "want %v got %v", f, p)
}

func TestGenerateSharesDeterministic(t *testing.T) {
	a, fa, err := GenerateShares(7, 4, 5, []byte("seed"))
	require.NoError(t, err)
	b, fb, err := GenerateShares(7, 4, 5, []byte("seed"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, fa, fb)

	_, fc, err := GenerateShares(7, 4, 5, []byte("other seed"))
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc)

	for _, c := range fa[1:] {
		assert.LessOrEqual(t, c, float64(CoefficientBound))
		assert.GreaterOrEqual(t, c, -float64(CoefficientBound))
		assert.Equal(t, float64(int64(c)), c)
	}
}

func TestGenerateSharesRandomSeed(t *testing.T) {
	shares, f, err := GenerateShares(-3, 2, 2, nil)
	require.NoError(t, err)
	res, err := Reconstruct(shares, config.Default())
	require.NoError(t, err)
	assert.InDelta(t, f[0], *res, 1e-9)
}

func TestGenerateSharesInvalid(t *testing.T) {
	_, _, err := GenerateShares(1, 0, 3, nil)
	assert.Error(t, err)
	_, _, err = GenerateShares(1, 4, 3, nil)
	assert.Error(t, err)
}

func TestReconstructErrors(t *testing.T) {
	_, err := Reconstruct(nil, config.Default())
	assert.ErrorIs(t, err, lagrange.ErrInterpolation)

	_, err = Reconstruct([]Share{{Index: 1, Y: 2}, {Index: 1, Y: 3}}, config.Default())
	var dup *lagrange.DuplicateXError
	assert.ErrorAs(t, err, &dup)
}
