package calculation

import "errors"

var (
	// ErrInvalidRange is returned by the sweeps when the requested range is empty or unbounded.
	ErrInvalidRange = errors.New("invalid sweep range")
	// ErrInvalidSimulation is returned for a Monte Carlo config that cannot run.
	ErrInvalidSimulation = errors.New("invalid simulation config")
)
