package stoch

import "math"

type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// Variance is the population variance (divisor n), matching the
// normalization used by the autocovariance estimator.
func (s Series) Variance() float64 {
	n := len(s)
	if n == 0 {
		return 0
	}
	mean := s.Mean()
	sum := 0.0
	for _, v := range s {
		d := v - mean
		sum += d * d
	}
	return sum / float64(n)
}

func (s Series) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (s Series) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Generator builds a sample path from a driving noise series. Given the
// same noise, Generate is deterministic; path[i] depends only on earlier
// path values and noise[0..i].
type Generator interface {
	Generate(noise Series) (Series, error)
	MinLen() int
	Name() string
}
