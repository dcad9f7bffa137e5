package process

import (
	"fmt"
	"sort"

	"github.com/san-kum/stochlab/internal/stoch"
)

// Factory builds a generator from scalar params and, for autoregressive
// models, the coefficient list.
type Factory func(params map[string]float64, coeffs []float64) stoch.Generator

type Registry struct {
	models map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[string]Factory)}

	r.models["brownian"] = func(params map[string]float64, _ []float64) stoch.Generator {
		b := NewBrownian()
		for _, name := range []string{"drift", "volatility", "dt"} {
			if v, ok := params[name]; ok {
				b.SetParam(name, v)
			}
		}
		return b
	}
	r.models["ar"] = func(_ map[string]float64, coeffs []float64) stoch.Generator {
		return NewAR(coeffs...)
	}
	r.models["whitenoise"] = func(_ map[string]float64, _ []float64) stoch.Generator {
		return WhiteNoise()
	}

	return r
}

func (r *Registry) Get(name string, params map[string]float64, coeffs []float64) (stoch.Generator, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(params, coeffs), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
