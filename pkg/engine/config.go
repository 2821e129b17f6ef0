package engine

import "fmt"

// EngineConfig contains all configurable parameters that influence simulation outcomes
// This centralizes all magic numbers and constants for easy adjustment
type EngineConfig struct {
	// === EXPECTED GOALS CURVE ===

	MaxXG       float64 `koanf:"max_xg"`       // Asymptotic expected goals ceiling (default: 2.2)
	MinXG       float64 `koanf:"min_xg"`       // Expected goals floor (default: 0.15)
	XGMidpoint  float64 `koanf:"xg_midpoint"`  // Strength value giving half of MaxXG (default: 50)
	XGSteepness float64 `koanf:"xg_steepness"` // Logistic growth rate (default: 0.06)

	// === MONTE CARLO SIMULATION SETTINGS ===

	Simulations int `koanf:"simulations"` // Number of Monte Carlo simulations (default: 10000)
	GoalRange   int `koanf:"goal_range"`  // Maximum goals to consider 0-N (default: 9, so 0-8 goals)

	// === DIXON-COLES CORRECTION ===

	// Dixon-Coles correlation parameter for low-scoring games
	DixonColesRho float64 `koanf:"dixon_coles_rho"` // Correlation parameter (default: -0.03, range: -0.1 to 0)

	// === FORM WEIGHTING ===

	FormWeight  float64 `koanf:"form_weight"` // Weight given to form when blending strength (default: 0.3)
	StatsWeight float64 // Weight given to underlying strength (calculated as 1.0 - FormWeight)

	// === OVER/UNDER GOALS THRESHOLDS ===

	Over1p5GoalsThreshold float64 `koanf:"over_1p5_goals_threshold"` // Threshold for over 1.5 goals (default: 1.5)
	Over2p5GoalsThreshold float64 `koanf:"over_2p5_goals_threshold"` // Threshold for over 2.5 goals (default: 2.5)
}

// DefaultEngineConfig returns the default configuration with all standard values
func DefaultEngineConfig() *EngineConfig {
	config := &EngineConfig{
		// === EXPECTED GOALS CURVE ===
		MaxXG:       2.2,
		MinXG:       0.15,
		XGMidpoint:  50.0,
		XGSteepness: 0.06,

		// === MONTE CARLO SIMULATION SETTINGS ===
		Simulations: 10000,
		GoalRange:   9,

		// === DIXON-COLES CORRECTION ===
		DixonColesRho: -0.03,

		// === FORM WEIGHTING ===
		FormWeight:  0.3,
		StatsWeight: 0.7, // Will be recalculated as 1.0 - FormWeight

		// === OVER/UNDER GOALS THRESHOLDS ===
		Over1p5GoalsThreshold: 1.5,
		Over2p5GoalsThreshold: 2.5,
	}

	// Ensure StatsWeight is always calculated correctly
	config.StatsWeight = 1.0 - config.FormWeight

	return config
}

// Global configuration instance
var Config *EngineConfig

// init initializes the global configuration with default values
func init() {
	Config = DefaultEngineConfig()
}

// UpdateConfig allows updating the global configuration
func UpdateConfig(newConfig *EngineConfig) {
	// Ensure StatsWeight is recalculated when FormWeight changes
	newConfig.StatsWeight = 1.0 - newConfig.FormWeight
	Config = newConfig
}

// GetFormWeight returns the current form weight
func GetFormWeight() float64 {
	return Config.FormWeight
}

// GetStatsWeight returns the current stats weight
func GetStatsWeight() float64 {
	return Config.StatsWeight
}

// SetFormWeight updates the form weight and recalculates stats weight
func SetFormWeight(weight float64) {
	Config.FormWeight = weight
	Config.StatsWeight = 1.0 - weight
}

// GetDixonColesRho returns the Dixon-Coles correlation parameter
func GetDixonColesRho() float64 {
	return Config.DixonColesRho
}

// === CONFIGURATION VALIDATION ===

// ValidateConfig ensures all configuration values are within reasonable ranges
// and that the static performance band table is intact
func ValidateConfig(config *EngineConfig) error {
	if config.MinXG <= 0 {
		return fmt.Errorf("MinXG must be positive, got: %f", config.MinXG)
	}

	if config.MaxXG <= config.MinXG {
		return fmt.Errorf("MaxXG must exceed MinXG, got: %f <= %f", config.MaxXG, config.MinXG)
	}

	if config.XGSteepness <= 0 {
		return fmt.Errorf("XGSteepness must be positive, got: %f", config.XGSteepness)
	}

	if config.FormWeight < 0.0 || config.FormWeight > 1.0 {
		return fmt.Errorf("FormWeight must be between 0.0 and 1.0, got: %f", config.FormWeight)
	}

	if config.Simulations < 1000 {
		return fmt.Errorf("Simulations should be at least 1000 for accuracy, got: %d", config.Simulations)
	}

	if config.GoalRange < 3 {
		return fmt.Errorf("GoalRange should be at least 3 to capture realistic scores, got: %d", config.GoalRange)
	}

	if config.DixonColesRho > 0 || config.DixonColesRho < -0.1 {
		return fmt.Errorf("DixonColesRho should be between -0.1 and 0, got: %f", config.DixonColesRho)
	}

	return validateBandTable()
}
