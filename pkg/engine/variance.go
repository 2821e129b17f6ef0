package engine

import (
	"fmt"
	"math/rand"
)

// PerformanceBand is one weighted slice of the match day performance space
type PerformanceBand struct {
	Name   string  // Human readable band name
	Weight int     // Share of totalBandWeight given to this band
	Min    float64 // Inclusive lower bound of the multiplier range
	Max    float64 // Exclusive upper bound of the multiplier range
}

// totalBandWeight is the sum of all band weights
const totalBandWeight = 100

// performanceBands partitions match day performance from total collapse to
// a once a season miracle. The table is fixed configuration and is never
// mutated at runtime; validateBandTable checks its integrity.
var performanceBands = []PerformanceBand{
	{Name: "Disaster", Weight: 1, Min: 0.2, Max: 0.6},
	{Name: "Poor", Weight: 10, Min: 0.6, Max: 0.85},
	{Name: "Normal", Weight: 70, Min: 0.85, Max: 1.15},
	{Name: "Good", Weight: 12, Min: 1.15, Max: 1.4},
	{Name: "Great", Weight: 5, Min: 1.4, Max: 1.8},
	{Name: "Miracle", Weight: 2, Min: 1.8, Max: 2.3},
}

// PerformanceBands returns a copy of the band table
func PerformanceBands() []PerformanceBand {
	bands := make([]PerformanceBand, len(performanceBands))
	copy(bands, performanceBands)
	return bands
}

// PerformanceVariance draws a random match day performance multiplier in
// [0.2, 2.3], simulating variance beyond underlying team quality
// Most draws land in the Normal band around 1.0; the tails cover the days
// when a side collapses or plays far above itself
// Over many draws the fraction landing in each band converges to
// Weight/totalBandWeight, and draws within a band are uniform
func PerformanceVariance(rng *rand.Rand) float64 {
	band := selectBand(rng.Float64() * totalBandWeight)
	return band.Min + rng.Float64()*(band.Max-band.Min)
}

// selectBand picks the band whose cumulative weight first exceeds the draw.
// Selection is exhaustive: the final band owns everything from its lower
// threshold up to totalBandWeight, so a floating point draw at a weight
// boundary can never fall through to an unselected state.
func selectBand(draw float64) PerformanceBand {
	cumulative := 0
	for _, band := range performanceBands[:len(performanceBands)-1] {
		cumulative += band.Weight
		if draw < float64(cumulative) {
			return band
		}
	}
	return performanceBands[len(performanceBands)-1]
}

// validateBandTable checks the band table invariants: at least one band,
// positive weights summing to totalBandWeight, Min < Max within each band
// and contiguous ranges between neighbouring bands
func validateBandTable() error {
	if len(performanceBands) == 0 {
		return fmt.Errorf("no bands defined: %w", ErrBandTable)
	}

	sum := 0
	for i, band := range performanceBands {
		if band.Weight <= 0 {
			return fmt.Errorf("band %s has non-positive weight %d: %w", band.Name, band.Weight, ErrBandTable)
		}
		if band.Min >= band.Max {
			return fmt.Errorf("band %s has empty range [%f, %f): %w", band.Name, band.Min, band.Max, ErrBandTable)
		}
		if i > 0 && performanceBands[i-1].Max != band.Min {
			return fmt.Errorf("gap between bands %s and %s: %w", performanceBands[i-1].Name, band.Name, ErrBandTable)
		}
		sum += band.Weight
	}

	if sum != totalBandWeight {
		return fmt.Errorf("band weights sum to %d, want %d: %w", sum, totalBandWeight, ErrBandTable)
	}

	return nil
}
