package corr

import (
	"fmt"
	"math"

	"github.com/san-kum/stochlab/internal/stoch"
)

// ACF calculates the sample autocorrelation for lags 0..maxLag. The
// autocovariance at lag h is the mean-removed lag product summed over
// the overlapping window and normalized by the lag-0 value, so the
// result at lag 0 is always 1.
func ACF(x stoch.Series, maxLag int) ([]float64, error) {
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", stoch.ErrInvalidArgument, n)
	}
	if maxLag < 0 || maxLag >= n {
		return nil, fmt.Errorf("%w: maxLag %d for series of length %d", stoch.ErrBadLag, maxLag, n)
	}

	mean := x.Mean()
	variance := 0.0
	for _, v := range x {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return nil, fmt.Errorf("%w: autocorrelation undefined", stoch.ErrZeroVariance)
	}

	acf := make([]float64, maxLag+1)
	for h := 0; h <= maxLag; h++ {
		sum := 0.0
		for t := h; t < n; t++ {
			sum += (x[t] - mean) * (x[t-h] - mean)
		}
		acf[h] = sum / variance
	}
	return acf, nil
}

// ACFResult pairs autocorrelation values with their lags and the 95%
// confidence bound (+-1.96/sqrt(n)) for a white-noise null.
type ACFResult struct {
	Lags      []int
	Values    []float64
	ConfBound float64
}

func ACFWithConfidence(x stoch.Series, maxLag int) (*ACFResult, error) {
	values, err := ACF(x, maxLag)
	if err != nil {
		return nil, err
	}

	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}
	return &ACFResult{
		Lags:      lags,
		Values:    values,
		ConfBound: 1.96 / math.Sqrt(float64(len(x))),
	}, nil
}

// SignificantLags returns the lags (excluding 0) whose correlation
// magnitude exceeds the confidence bound.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}
