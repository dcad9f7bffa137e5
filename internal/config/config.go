package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultN          = 1000
	DefaultMaxLag     = 20
	DefaultDrift      = 0.0
	DefaultVolatility = 1.0
	DefaultDt         = 1.0
)

type Config struct {
	Model  string        `yaml:"model"`
	N      int           `yaml:"n"`
	Seed   int64         `yaml:"seed"`
	MaxLag int           `yaml:"max_lag"`
	Params ProcessConfig `yaml:"params"`
}

type ProcessConfig struct {
	Drift      float64   `yaml:"drift"`
	Volatility float64   `yaml:"volatility"`
	Dt         float64   `yaml:"dt"`
	Coeffs     []float64 `yaml:"coeffs"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  "brownian",
		N:      DefaultN,
		MaxLag: DefaultMaxLag,
		Params: ProcessConfig{
			Drift:      DefaultDrift,
			Volatility: DefaultVolatility,
			Dt:         DefaultDt,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ScalarParams flattens the process parameters into the map form the
// model registry consumes.
func (c *Config) ScalarParams() map[string]float64 {
	return map[string]float64{
		"drift":      c.Params.Drift,
		"volatility": c.Params.Volatility,
		"dt":         c.Params.Dt,
	}
}
