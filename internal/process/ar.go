package process

import (
	"fmt"

	"github.com/san-kum/stochlab/internal/poly"
	"github.com/san-kum/stochlab/internal/stoch"
)

// AR is an autoregressive process of order p = len(Coeffs), with
// Coeffs[k-1] multiplying the value k steps back.
type AR struct {
	Coeffs []float64
}

func NewAR(coeffs ...float64) *AR {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &AR{Coeffs: c}
}

// WhiteNoise is the degenerate order-0 process: the path is the noise.
func WhiteNoise() *AR {
	return &AR{}
}

func (a *AR) Name() string {
	return "ar"
}

func (a *AR) Order() int {
	return len(a.Coeffs)
}

func (a *AR) MinLen() int {
	return len(a.Coeffs) + 1
}

// Generate seeds the first p values directly from the noise, then runs
// the recursion path[i] = sum_k Coeffs[k-1]*path[i-k] + noise[i].
func (a *AR) Generate(noise stoch.Series) (stoch.Series, error) {
	p := len(a.Coeffs)
	n := len(noise)
	if n < p+1 {
		return nil, fmt.Errorf("%w: AR(%d) needs at least %d samples, got %d",
			stoch.ErrShortNoise, p, p+1, n)
	}

	path := make(stoch.Series, n)
	copy(path[:p], noise[:p])
	for i := p; i < n; i++ {
		v := noise[i]
		for k := 1; k <= p; k++ {
			v += a.Coeffs[k-1] * path[i-k]
		}
		path[i] = v
	}
	return path, nil
}

// Stationary reports whether every root of the characteristic polynomial
// 1 - c1*z - ... - cp*z^p lies strictly outside the unit circle. A root
// on the circle (the random-walk boundary) reports false without error;
// such processes still generate.
func (a *AR) Stationary() (bool, error) {
	if len(a.Coeffs) == 0 {
		return true, nil
	}
	return poly.Stationary(a.Coeffs)
}
