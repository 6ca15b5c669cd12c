package lagrange

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/primitives/polynomial"
)

func TestComputeCoefficients(t *testing.T) {
	cfg := config.Default()
	samples := []Sample{{1, 4}, {2, 7}, {3, 12}, {4, 19}}

	p, err := ComputeCoefficients(samples, cfg)
	require.NoError(t, err)
	require.Len(t, p, 4)

	// four points on x^2 + 3: the cubic term cleans up to zero
	want := polynomial.Polynomial{3, 0, 1, 0}
	if diff := cmp.Diff(want, p, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 3.0, p[0], 1e-6)
	assert.Equal(t, 2, p.Degree(cfg.Precision))

	for _, s := range samples {
		assert.InDelta(t, s.Y, polynomial.Evaluate(p, s.X), cfg.Precision*100)
	}
}

func TestComputeCoefficientsCubic(t *testing.T) {
	cfg := config.Default()
	// 1 + 1.5x^2 + 0.5x^3
	samples := []Sample{{1, 3}, {2, 11}, {3, 28}, {4, 57}}

	p, err := ComputeCoefficients(samples, cfg)
	require.NoError(t, err)
	require.Len(t, p, 4)

	want := polynomial.Polynomial{1, 0, 1.5, 0.5}
	if diff := cmp.Diff(want, p, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1.0, p[0], 1e-6)
	assert.Equal(t, 3, p.Degree(cfg.Precision))

	for _, s := range samples {
		assert.InDelta(t, s.Y, polynomial.Evaluate(p, s.X), cfg.Precision*100)
	}
}

func TestComputeCoefficientsOrderIndependent(t *testing.T) {
	cfg := config.Default()
	a, err := ComputeCoefficients([]Sample{{1, 4}, {2, 7}, {3, 12}, {4, 19}}, cfg)
	require.NoError(t, err)

	shuffled := []Sample{{3, 12}, {1, 4}, {4, 19}, {2, 7}}
	b, err := ComputeCoefficients(shuffled, cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	// the caller's slice is left alone
	assert.Equal(t, Sample{3, 12}, shuffled[0])
}

func TestComputeCoefficientsSmallInputs(t *testing.T) {
	cfg := config.Default()

	_, err := ComputeCoefficients(nil, cfg)
	var degenerate *DegenerateInputError
	assert.ErrorAs(t, err, &degenerate)
	assert.True(t, errors.Is(err, ErrInterpolation))

	p, err := ComputeCoefficients([]Sample{{5, -3}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, polynomial.Polynomial{-3}, p)

	// a line through (0, 1) and (2, 5)
	p, err = ComputeCoefficients([]Sample{{2, 5}, {0, 1}}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p[0], 1e-12)
	assert.InDelta(t, 2.0, p[1], 1e-12)
}

func TestDuplicateX(t *testing.T) {
	p, err := ComputeCoefficients([]Sample{{2, 5}, {2, 9}}, config.Default())
	assert.Nil(t, p)

	var dup *DuplicateXError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 2.0, dup.X)
	assert.True(t, errors.Is(err, ErrInterpolation))

	_, err = EvaluateAt([]Sample{{1, 1}, {3, 2}, {1, 0}}, 0, config.Default())
	assert.ErrorAs(t, err, &dup)
}

func TestIllConditioned(t *testing.T) {
	cfg := config.Config{Precision: 1e-6, MaxIterations: 10}
	samples := []Sample{{1, 1}, {1 + 1e-9, 2}, {2, 3}}

	_, err := ComputeCoefficients(samples, cfg)
	var ill *IllConditionedError
	require.ErrorAs(t, err, &ill)
	assert.Equal(t, 1e-6, ill.Precision)
	assert.True(t, errors.Is(err, ErrInterpolation))

	_, err = EvaluateAt(samples, 0, cfg)
	assert.ErrorAs(t, err, &ill)

	// the same points are fine with a finer threshold
	_, err = ComputeCoefficients(samples, config.Config{Precision: 1e-12, MaxIterations: 10})
	assert.NoError(t, err)
}

func TestBasis(t *testing.T) {
	samples := []Sample{{1, 0}, {2, 0}, {4, 0}}
	for i := range samples {
		b, err := Basis(samples, i, 1e-10)
		require.NoError(t, err)
		require.Len(t, b, 3)
		for j := range samples {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, polynomial.Evaluate(b, samples[j].X), 1e-12)
		}
	}
}

func TestEvaluateAt(t *testing.T) {
	cfg := config.Default()
	samples := []Sample{{1, 4}, {2, 7}, {3, 12}, {4, 19}}

	c, err := EvaluateAt(samples, 0, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, c, 1e-9)

	y, err := EvaluateAt(samples, 5, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 28.0, y, 1e-9)

	cubic := []Sample{{1, 3}, {2, 11}, {3, 28}, {4, 57}}
	c, err = EvaluateAt(cubic, 0, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-9)

	y, err = EvaluateAt(cubic, 5, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1+1.5*25+0.5*125, y, 1e-9)

	_, err = EvaluateAt(nil, 0, cfg)
	assert.ErrorIs(t, err, ErrInterpolation)
}

func TestRoundTrip(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(42))

	for degree := 0; degree <= 5; degree++ {
		for trial := 0; trial < 10; trial++ {
			want := make(polynomial.Polynomial, degree+1)
			for i := range want {
				want[i] = rng.Float64()*20 - 10
			}

			samples := make([]Sample, degree+1)
			for i := range samples {
				x := float64(i) - float64(degree)/2
				samples[i] = Sample{X: x, Y: polynomial.Evaluate(want, x)}
			}

			got, err := ComputeCoefficients(samples, cfg)
			require.NoError(t, err)
			assert.True(t, want.Equal(got, cfg.Precision*1e4), "degree %d: want %v got %v", degree, want, got)
		}
	}
}
