package stoch

import (
	"math"
	"testing"
)

func TestSeriesClone(t *testing.T) {
	s := Series{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Errorf("clone shares backing array with original")
	}
	if len(c) != len(s) {
		t.Errorf("expected clone length %d, got %d", len(s), len(c))
	}
}

func TestSeriesMean(t *testing.T) {
	s := Series{1, 2, 3, 4}
	if got := s.Mean(); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("expected mean 2.5, got %f", got)
	}

	var empty Series
	if got := empty.Mean(); got != 0 {
		t.Errorf("expected 0 mean for empty series, got %f", got)
	}
}

func TestSeriesVariance(t *testing.T) {
	s := Series{1, 2, 3, 4}
	// population variance: sum of squared deviations / n = 5/4
	if got := s.Variance(); math.Abs(got-1.25) > 1e-12 {
		t.Errorf("expected variance 1.25, got %f", got)
	}

	constant := Series{3, 3, 3}
	if got := constant.Variance(); got != 0 {
		t.Errorf("expected zero variance, got %f", got)
	}
}

func TestSeriesIsValid(t *testing.T) {
	if !(Series{1, -2, 0}).IsValid() {
		t.Error("expected finite series to be valid")
	}
	if (Series{1, math.NaN()}).IsValid() {
		t.Error("expected NaN series to be invalid")
	}
	if (Series{math.Inf(1)}).IsValid() {
		t.Error("expected Inf series to be invalid")
	}
}

func TestSeriesMinMax(t *testing.T) {
	s := Series{3, -1, 7, 2}
	if got := s.Min(); got != -1 {
		t.Errorf("expected min -1, got %f", got)
	}
	if got := s.Max(); got != 7 {
		t.Errorf("expected max 7, got %f", got)
	}
}
