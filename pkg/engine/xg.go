package engine

import "math"

// BaseXG maps a team strength value (conventionally 0-100) onto an expected
// goals figure using a logistic curve
// The curve is steepest around XGMidpoint so mid-table strength differences
// matter most, and saturates towards MaxXG at the top end so a strength 100
// side is never implausibly dominant over a strength 90 one
// The MinXG floor keeps some scoring probability mass for even the weakest
// side. Defined for all finite inputs; values outside 0-100 simply saturate.
func BaseXG(strength float64) float64 {
	logistic := Config.MaxXG / (1.0 + math.Exp(-Config.XGSteepness*(strength-Config.XGMidpoint)))

	if logistic < Config.MinXG {
		return Config.MinXG
	}

	// Once exp underflows the division rounds up to the ceiling itself,
	// so clamp to the largest float below it to keep MaxXG unreachable
	ceiling := math.Nextafter(Config.MaxXG, 0)
	if logistic > ceiling {
		return ceiling
	}
	return logistic
}
