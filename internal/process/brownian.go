package process

import (
	"fmt"

	"github.com/san-kum/stochlab/internal/stoch"
)

type Brownian struct {
	Drift      float64
	Volatility float64
	Dt         float64
}

func NewBrownian() *Brownian {
	return &Brownian{
		Drift:      0.0,
		Volatility: 1.0,
		Dt:         1.0,
	}
}

func (b *Brownian) Name() string {
	return "brownian"
}

func (b *Brownian) MinLen() int {
	return 1
}

// Generate realizes the walk: path[0] = 0 and each later value adds the
// deterministic drift increment plus a scaled noise increment, so
// path[i] = path[i-1] + Drift*Dt + Volatility*noise[i-1].
func (b *Brownian) Generate(noise stoch.Series) (stoch.Series, error) {
	n := len(noise)
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 1 sample, got %d", stoch.ErrShortNoise, n)
	}
	if b.Dt <= 0 {
		return nil, fmt.Errorf("%w: dt must be positive, got %g", stoch.ErrInvalidArgument, b.Dt)
	}
	if b.Volatility < 0 {
		return nil, fmt.Errorf("%w: volatility must be non-negative, got %g", stoch.ErrInvalidArgument, b.Volatility)
	}

	path := make(stoch.Series, n)
	path[0] = 0
	step := b.Drift * b.Dt
	for i := 1; i < n; i++ {
		path[i] = path[i-1] + step + b.Volatility*noise[i-1]
	}
	return path, nil
}

func (b *Brownian) GetParams() map[string]float64 {
	return map[string]float64{
		"drift":      b.Drift,
		"volatility": b.Volatility,
		"dt":         b.Dt,
	}
}

func (b *Brownian) SetParam(name string, value float64) error {
	switch name {
	case "drift":
		b.Drift = value
	case "volatility":
		b.Volatility = value
	case "dt":
		b.Dt = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
