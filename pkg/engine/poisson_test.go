package engine_test

import (
	"math/rand"
	"testing"

	"github.com/richard-senior/xgsim/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoissonSampleNegativeLambda(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := engine.PoissonSample(-0.1, rng)
	require.Error(t, err, "negative lambda must be rejected, not clamped")
	assert.ErrorIs(t, err, engine.ErrNegativeLambda)

	_, err = engine.PoissonSamples(-2.0, 10, rng)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrNegativeLambda)
}

func TestPoissonSampleZeroLambda(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		sample, err := engine.PoissonSample(0, rng)
		require.NoError(t, err)
		assert.Equal(t, 0, sample, "lambda 0 must always yield 0 goals")
	}
}

func TestPoissonSampleNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, lambda := range []float64{0.15, 1.1, 2.5, 6.0, 45.0} {
		for i := 0; i < 2000; i++ {
			sample, err := engine.PoissonSample(lambda, rng)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, sample, 0, "lambda %f produced a negative count", lambda)
		}
	}
}

func TestPoissonSampleMeanAndVariance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const lambda = 2.5
	const n = 200000

	samples, err := engine.PoissonSamples(lambda, n, rng)
	require.NoError(t, err)
	require.Len(t, samples, n)

	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	mean := sum / n

	var sumSq float64
	for _, s := range samples {
		d := float64(s) - mean
		sumSq += d * d
	}
	variance := sumSq / n

	// Mean and variance both converge to lambda
	assert.InDelta(t, lambda, mean, 0.05)
	assert.InDelta(t, lambda, variance, 0.1)
}

func TestPoissonSampleNormalApproximation(t *testing.T) {
	// Above the Knuth threshold sampling switches to a normal approximation
	rng := rand.New(rand.NewSource(13))
	const lambda = 45.0
	const n = 50000

	samples, err := engine.PoissonSamples(lambda, n, rng)
	require.NoError(t, err)

	var sum float64
	for _, s := range samples {
		require.GreaterOrEqual(t, s, 0)
		sum += float64(s)
	}
	mean := sum / n

	var sumSq float64
	for _, s := range samples {
		d := float64(s) - mean
		sumSq += d * d
	}
	variance := sumSq / n

	assert.InDelta(t, lambda, mean, 0.3)
	assert.InDelta(t, lambda, variance, 2.0)
}

func TestPoissonSamplesSize(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	samples, err := engine.PoissonSamples(1.5, 0, rng)
	require.NoError(t, err)
	assert.Empty(t, samples)

	samples, err = engine.PoissonSamples(1.5, 250, rng)
	require.NoError(t, err)
	assert.Len(t, samples, 250)
}
