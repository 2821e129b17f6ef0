package engine

import "errors"

var (
	// ErrNegativeLambda is returned when a Poisson mean below zero is supplied.
	// A negative expected goals value is always a caller error and is never
	// silently clamped.
	ErrNegativeLambda = errors.New("lambda must not be negative")

	// ErrBandTable is returned when the performance band table fails its
	// integrity checks
	ErrBandTable = errors.New("performance band table is invalid")
)
