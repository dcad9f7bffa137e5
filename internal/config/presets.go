package config

var Presets = map[string]map[string]*Config{
	"brownian": {
		"standard": {
			Model: "brownian", N: 1000, MaxLag: 20,
			Params: ProcessConfig{Drift: 0.0, Volatility: 1.0, Dt: 1.0},
		},
		"drifting": {
			Model: "brownian", N: 1000, MaxLag: 20,
			Params: ProcessConfig{Drift: 0.05, Volatility: 1.0, Dt: 1.0},
		},
		"calm": {
			Model: "brownian", N: 2000, MaxLag: 30,
			Params: ProcessConfig{Drift: 0.0, Volatility: 0.2, Dt: 1.0},
		},
	},
	"ar": {
		"ar1": {
			Model: "ar", N: 1000, MaxLag: 20,
			Params: ProcessConfig{Coeffs: []float64{0.7}},
		},
		"ar2": {
			Model: "ar", N: 1000, MaxLag: 20,
			Params: ProcessConfig{Coeffs: []float64{0.7, -0.4}},
		},
		"oscillating": {
			Model: "ar", N: 2000, MaxLag: 30,
			Params: ProcessConfig{Coeffs: []float64{1.5, -0.9}},
		},
		"randomwalk": {
			Model: "ar", N: 1000, MaxLag: 20,
			Params: ProcessConfig{Coeffs: []float64{1.0}},
		},
	},
	"whitenoise": {
		"plain": {
			Model: "whitenoise", N: 1000, MaxLag: 20,
		},
	},
}

func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
