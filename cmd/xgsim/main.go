package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/richard-senior/xgsim/internal/logger"
	"github.com/richard-senior/xgsim/pkg/engine"
)

func main() {
	// Configure logging
	logger.SetShowDateTime(false)
	logger.SetLogOutput('c')

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Error("Invalid configuration:", err)
		os.Exit(1)
	}
	engine.UpdateConfig(cfg)

	if len(os.Args) < 3 {
		fmt.Println("usage: xgsim <home-strength> <away-strength> [home-form] [away-form]")
		fmt.Println("  strengths are 0-100, form is a string like WWDLL (most recent first)")
		os.Exit(1)
	}

	homeStrength := parseStrength(os.Args[1])
	awayStrength := parseStrength(os.Args[2])

	var homeForm, awayForm []engine.Result
	if len(os.Args) > 3 {
		homeForm = parseForm(os.Args[3])
	}
	if len(os.Args) > 4 {
		awayForm = parseForm(os.Args[4])
	}

	rng := engine.NewRand()

	// Blend recent form into the raw strengths, map through the expected
	// goals curve and apply an independent match day performance draw per
	// side to arrive at each side's Poisson mean
	homeLambda := engine.BaseXG(engine.BlendedStrength(homeStrength, engine.FormScore(homeForm))) * engine.PerformanceVariance(rng)
	awayLambda := engine.BaseXG(engine.BlendedStrength(awayStrength, engine.FormScore(awayForm))) * engine.PerformanceVariance(rng)

	homeGoals, err := engine.PoissonSample(homeLambda, rng)
	if err != nil {
		logger.Error("Failed to sample home goals:", err)
		os.Exit(1)
	}
	awayGoals, err := engine.PoissonSample(awayLambda, rng)
	if err != nil {
		logger.Error("Failed to sample away goals:", err)
		os.Exit(1)
	}

	odds, err := engine.PredictScoreline(homeLambda, awayLambda, rng)
	if err != nil {
		logger.Error("Scoreline prediction failed:", err)
		os.Exit(1)
	}

	logger.Info("Expected goals: home", homeLambda, "away", awayLambda)
	logger.Info("Sampled scoreline:", fmt.Sprintf("%d-%d", homeGoals, awayGoals))
	logger.Info("Most likely scoreline:", fmt.Sprintf("%d-%d", odds.PredictedHomeGoals, odds.PredictedAwayGoals))
	logger.Info("Win probabilities: home", odds.HomeWinProbability, "draw", odds.DrawProbability, "away", odds.AwayWinProbability)
	logger.Info("Over goals: 1.5", odds.Over1p5GoalsProbability, "2.5", odds.Over2p5GoalsProbability)
}

func parseStrength(arg string) float64 {
	strength, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		logger.Error("Invalid strength value:", arg)
		os.Exit(1)
	}
	return strength
}

func parseForm(arg string) []engine.Result {
	results, err := engine.ParseForm(arg)
	if err != nil {
		logger.Error("Invalid form string:", err)
		os.Exit(1)
	}
	return results
}
