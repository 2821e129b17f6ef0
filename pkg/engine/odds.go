package engine

import "math/rand"

// MatchOdds holds the complete scoreline analysis for a single fixture
type MatchOdds struct {
	HomeExpectedGoals       float64
	AwayExpectedGoals       float64
	PredictedHomeGoals      int
	PredictedAwayGoals      int
	HomeWinProbability      float64
	DrawProbability         float64
	AwayWinProbability      float64
	Over1p5GoalsProbability float64
	Over2p5GoalsProbability float64
}

// PredictScoreline performs a Monte Carlo scoreline analysis for a fixture
// whose sides are expected to score homeLambda and awayLambda goals
// Samples Config.Simulations goal counts per side, builds the joint
// scoreline probability matrix and applies the Dixon-Coles correction for
// low-scoring games before reading off the outcome probabilities
// All probabilities in the result are percentages
func PredictScoreline(homeLambda, awayLambda float64, rng *rand.Rand) (*MatchOdds, error) {
	homeSamples, err := PoissonSamples(homeLambda, Config.Simulations, rng)
	if err != nil {
		return nil, err
	}
	awaySamples, err := PoissonSamples(awayLambda, Config.Simulations, rng)
	if err != nil {
		return nil, err
	}

	homeProbs := GoalProbabilities(homeSamples, Config.GoalRange)
	awayProbs := GoalProbabilities(awaySamples, Config.GoalRange)

	matrix := probabilityMatrix(homeProbs, awayProbs)
	corrected := dixonColesCorrection(matrix, homeLambda, awayLambda)

	homeWin, draw, awayWin := outcomeProbabilities(corrected)

	// Over/under probabilities come from the raw samples so goal counts
	// beyond GoalRange still count towards the totals
	over1p5 := overGoalsProbability(homeSamples, awaySamples, Config.Over1p5GoalsThreshold)
	over2p5 := overGoalsProbability(homeSamples, awaySamples, Config.Over2p5GoalsThreshold)

	return &MatchOdds{
		HomeExpectedGoals:       homeLambda,
		AwayExpectedGoals:       awayLambda,
		PredictedHomeGoals:      mostLikelyGoals(corrected, true),
		PredictedAwayGoals:      mostLikelyGoals(corrected, false),
		HomeWinProbability:      homeWin * 100.0,
		DrawProbability:         draw * 100.0,
		AwayWinProbability:      awayWin * 100.0,
		Over1p5GoalsProbability: over1p5 * 100.0,
		Over2p5GoalsProbability: over2p5 * 100.0,
	}, nil
}

// GoalProbabilities calculates the empirical probability of each goal count
// from zero to maxGoals-1 over a set of samples
func GoalProbabilities(samples []int, maxGoals int) []float64 {
	probabilities := make([]float64, maxGoals)
	if len(samples) == 0 {
		return probabilities
	}

	for _, sample := range samples {
		if sample >= 0 && sample < maxGoals {
			probabilities[sample]++
		}
	}

	total := float64(len(samples))
	for goals := range probabilities {
		probabilities[goals] /= total
	}

	return probabilities
}

// probabilityMatrix builds the joint scoreline matrix as the outer product
// of the two goal count distributions, home goals indexing rows
func probabilityMatrix(homeProbs, awayProbs []float64) [][]float64 {
	matrix := make([][]float64, len(homeProbs))

	for i := range homeProbs {
		matrix[i] = make([]float64, len(awayProbs))
		for j := range awayProbs {
			matrix[i][j] = homeProbs[i] * awayProbs[j]
		}
	}

	return matrix
}

// outcomeProbabilities splits the scoreline matrix into win/draw/loss mass:
// lower triangle is a home win, diagonal a draw, upper triangle an away win
func outcomeProbabilities(matrix [][]float64) (homeWin, draw, awayWin float64) {
	for i := range matrix {
		for j := range matrix[i] {
			switch {
			case i > j:
				homeWin += matrix[i][j]
			case i == j:
				draw += matrix[i][j]
			default:
				awayWin += matrix[i][j]
			}
		}
	}

	return homeWin, draw, awayWin
}

// overGoalsProbability calculates the probability of total goals exceeding
// a threshold across paired home and away samples
func overGoalsProbability(homeGoals, awayGoals []int, threshold float64) float64 {
	if len(homeGoals) == 0 {
		return 0
	}

	count := 0
	for i := range homeGoals {
		if float64(homeGoals[i]+awayGoals[i]) > threshold {
			count++
		}
	}

	return float64(count) / float64(len(homeGoals))
}

// dixonColesCorrection adjusts the four low-scoring cells of the matrix for
// the correlation independent Poisson draws miss, then renormalizes
func dixonColesCorrection(matrix [][]float64, homeLambda, awayLambda float64) [][]float64 {
	rho := GetDixonColesRho()

	corrected := make([][]float64, len(matrix))
	for i := range matrix {
		corrected[i] = make([]float64, len(matrix[i]))
		copy(corrected[i], matrix[i])
	}

	if len(corrected) > 1 && len(corrected[0]) > 1 {
		corrected[0][0] *= dixonColesTau(0, 0, homeLambda, awayLambda, rho)
		corrected[1][0] *= dixonColesTau(1, 0, homeLambda, awayLambda, rho)
		corrected[0][1] *= dixonColesTau(0, 1, homeLambda, awayLambda, rho)
		corrected[1][1] *= dixonColesTau(1, 1, homeLambda, awayLambda, rho)
	}

	return renormalizeMatrix(corrected)
}

// dixonColesTau computes the correction factor for a specific scoreline
func dixonColesTau(homeGoals, awayGoals int, lambda1, lambda2, rho float64) float64 {
	switch {
	case homeGoals == 0 && awayGoals == 0:
		return 1 - lambda1*lambda2*rho
	case homeGoals == 0 && awayGoals == 1:
		return 1 + lambda1*rho
	case homeGoals == 1 && awayGoals == 0:
		return 1 + lambda2*rho
	case homeGoals == 1 && awayGoals == 1:
		return 1 - rho
	default:
		return 1.0
	}
}

// renormalizeMatrix scales the matrix so all probabilities sum to 1
func renormalizeMatrix(matrix [][]float64) [][]float64 {
	total := 0.0
	for i := range matrix {
		for j := range matrix[i] {
			total += matrix[i][j]
		}
	}

	if total > 0 {
		for i := range matrix {
			for j := range matrix[i] {
				matrix[i][j] /= total
			}
		}
	}

	return matrix
}

// mostLikelyGoals finds the goal count with the highest marginal probability
// for one side of the corrected matrix
func mostLikelyGoals(matrix [][]float64, isHome bool) int {
	maxProb := 0.0
	mostLikely := 0

	if isHome {
		for homeGoals := range matrix {
			prob := 0.0
			for awayGoals := range matrix[homeGoals] {
				prob += matrix[homeGoals][awayGoals]
			}
			if prob > maxProb {
				maxProb = prob
				mostLikely = homeGoals
			}
		}
		return mostLikely
	}

	for awayGoals := range matrix[0] {
		prob := 0.0
		for homeGoals := range matrix {
			prob += matrix[homeGoals][awayGoals]
		}
		if prob > maxProb {
			maxProb = prob
			mostLikely = awayGoals
		}
	}

	return mostLikely
}
