package bench

import "errors"

var (
	// ErrNoInstances indicates a config whose grid is empty (no sizes,
	// no probabilities, no algorithms, or zero repetitions).
	ErrNoInstances = errors.New("bench: config enumerates no instances")
	// ErrBadConfig indicates a config field outside its valid range; the
	// wrapping message names the field.
	ErrBadConfig = errors.New("bench: invalid config value")
)
