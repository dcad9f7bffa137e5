package corr

import (
	"fmt"
	"math"

	"github.com/san-kum/stochlab/internal/stoch"
)

// degeneracyEps bounds the Levinson-Durbin denominator below which the
// lag is flagged rather than divided through.
const degeneracyEps = 1e-12

// PACFResult holds partial autocorrelations for lags 0..maxLag
// (Values[0] = 1 by convention) plus the 95% confidence bound. A true
// entry in Degenerate marks a lag where the recursion denominator was
// effectively zero; its value is reported as 0 and should not be
// interpreted.
type PACFResult struct {
	Lags       []int
	Values     []float64
	Degenerate []bool
	ConfBound  float64
}

// PACF calculates the sample partial autocorrelation by the
// Levinson-Durbin recursion over the sample ACF: at each order k the
// last coefficient of the best linear predictor of x[t] from the k
// previous values is the partial autocorrelation at lag k.
func PACF(x stoch.Series, maxLag int) (*PACFResult, error) {
	n := len(x)
	if maxLag < 1 {
		return nil, fmt.Errorf("%w: maxLag must be at least 1, got %d", stoch.ErrBadLag, maxLag)
	}
	if maxLag >= n {
		return nil, fmt.Errorf("%w: maxLag %d for series of length %d", stoch.ErrBadLag, maxLag, n)
	}

	acf, err := ACF(x, maxLag)
	if err != nil {
		return nil, err
	}

	values, degenerate := levinson(acf, maxLag)

	lags := make([]int, maxLag+1)
	for i := range lags {
		lags[i] = i
	}
	return &PACFResult{
		Lags:       lags,
		Values:     values,
		Degenerate: degenerate,
		ConfBound:  1.96 / math.Sqrt(float64(n)),
	}, nil
}

// levinson runs the Durbin-Levinson recursion over autocorrelations
// acf[0..maxLag]. Degenerate lags keep the previous predictor row so
// later orders still have usable coefficients.
func levinson(acf []float64, maxLag int) (values []float64, degenerate []bool) {
	values = make([]float64, maxLag+1)
	degenerate = make([]bool, maxLag+1)
	values[0] = 1.0

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}

	phi[1][1] = acf[1]
	values[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}

		if math.Abs(den) < degeneracyEps {
			degenerate[k] = true
			values[k] = 0
			copy(phi[k], phi[k-1])
			continue
		}

		phi[k][k] = num / den
		values[k] = phi[k][k]

		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}

	return values, degenerate
}

// AnyDegenerate reports whether any lag was flagged.
func (r *PACFResult) AnyDegenerate() bool {
	for _, d := range r.Degenerate {
		if d {
			return true
		}
	}
	return false
}
