package corr

import (
	"fmt"

	"github.com/san-kum/stochlab/internal/stoch"
)

// Difference returns the first differences d[i] = x[i+1] - x[i], one
// shorter than the input. Differencing a random-walk path yields white
// noise, which is the standard stationarity transform before
// re-estimating correlations.
func Difference(x stoch.Series) (stoch.Series, error) {
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples to difference, got %d", stoch.ErrInvalidArgument, n)
	}
	d := make(stoch.Series, n-1)
	for i := 0; i < n-1; i++ {
		d[i] = x[i+1] - x[i]
	}
	return d, nil
}
