package engine

import (
	"fmt"
	"math"
	"math/rand"
)

// normalApproximationThreshold is the lambda above which the Knuth loop is
// abandoned: exp(-lambda) loses precision and the expected iteration count
// grows linearly with lambda, so large means use a normal approximation
// instead. Expected goals sit in 0-6 so the threshold is rarely reached.
const normalApproximationThreshold = 30.0

// PoissonSample draws a single goal count from a Poisson distribution with
// mean lambda
// Uses Knuth's multiplicative algorithm for small lambda and a normal
// approximation above normalApproximationThreshold
// A negative lambda is a caller error and is rejected, never clamped
// A lambda of exactly zero always yields zero goals
func PoissonSample(lambda float64, rng *rand.Rand) (int, error) {
	if lambda < 0 {
		return 0, fmt.Errorf("poisson sample with lambda %f: %w", lambda, ErrNegativeLambda)
	}
	if lambda == 0 {
		return 0, nil
	}

	if lambda >= normalApproximationThreshold {
		sample := int(math.Round(lambda + math.Sqrt(lambda)*rng.NormFloat64()))
		if sample < 0 {
			sample = 0
		}
		return sample, nil
	}

	// Knuth's algorithm for small lambda
	L := math.Exp(-lambda)
	k := 0
	p := 1.0

	for p > L {
		k++
		p *= rng.Float64()
	}

	return k - 1, nil
}

// PoissonSamples draws size samples from a Poisson distribution with mean
// lambda, for Monte Carlo use
func PoissonSamples(lambda float64, size int, rng *rand.Rand) ([]int, error) {
	if lambda < 0 {
		return nil, fmt.Errorf("poisson samples with lambda %f: %w", lambda, ErrNegativeLambda)
	}

	samples := make([]int, size)
	for i := range samples {
		sample, err := PoissonSample(lambda, rng)
		if err != nil {
			return nil, err
		}
		samples[i] = sample
	}

	return samples, nil
}
