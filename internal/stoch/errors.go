package stoch

import (
	"errors"
	"fmt"
)

// Domain errors for generation and estimation operations.
var (
	// ErrInvalidArgument indicates malformed shape or size parameters.
	// The more specific argument errors below wrap it, so callers can
	// match either the broad kind or the precise cause with errors.Is.
	ErrInvalidArgument = errors.New("stoch: invalid argument")

	// ErrShortNoise indicates a noise series shorter than the seed
	// length the generator requires.
	ErrShortNoise = fmt.Errorf("%w: noise series too short", ErrInvalidArgument)

	// ErrBadLag indicates a maximum lag outside the valid range for
	// the series length.
	ErrBadLag = fmt.Errorf("%w: max lag out of range", ErrInvalidArgument)

	// ErrZeroVariance indicates a constant series whose correlations
	// are undefined.
	ErrZeroVariance = fmt.Errorf("%w: series has zero variance", ErrInvalidArgument)
)
