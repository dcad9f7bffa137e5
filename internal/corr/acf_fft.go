package corr

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/stochlab/internal/stoch"
)

// ACFFFT computes the same estimator as [ACF] through the Wiener-Khinchin
// route: the inverse transform of the power spectrum of the mean-removed
// series gives the raw lag sums in O(n log n). The series is zero-padded
// to at least twice its length so the circular convolution does not wrap.
func ACFFFT(x stoch.Series, maxLag int) ([]float64, error) {
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", stoch.ErrInvalidArgument, n)
	}
	if maxLag < 0 || maxLag >= n {
		return nil, fmt.Errorf("%w: maxLag %d for series of length %d", stoch.ErrBadLag, maxLag, n)
	}

	mean := x.Mean()
	padded := make([]float64, nextPow2(2*n))
	for i, v := range x {
		padded[i] = v - mean
	}

	f := fft.FFTReal(padded)
	power := make([]complex128, len(f))
	for i, c := range f {
		a := cmplx.Abs(c)
		power[i] = complex(a*a, 0)
	}
	inv := fft.IFFT(power)

	c0 := real(inv[0])
	if c0 == 0 {
		return nil, fmt.Errorf("%w: autocorrelation undefined", stoch.ErrZeroVariance)
	}

	acf := make([]float64, maxLag+1)
	for h := 0; h <= maxLag; h++ {
		acf[h] = real(inv[h]) / c0
	}
	return acf, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
