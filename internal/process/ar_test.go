package process

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/stochlab/internal/noise"
	"github.com/san-kum/stochlab/internal/stoch"
)

func TestARRecursion(t *testing.T) {
	ar := NewAR(0.5, -0.25)
	w := stoch.Series{1.0, 2.0, 4.0, -1.0}

	path, err := ar.Generate(w)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// seeds: path[0]=1, path[1]=2
	// path[2] = 0.5*2 - 0.25*1 + 4 = 4.75
	// path[3] = 0.5*4.75 - 0.25*2 - 1 = 0.875
	want := []float64{1, 2, 4.75, 0.875}
	for i, w := range want {
		if math.Abs(path[i]-w) > 1e-12 {
			t.Errorf("path[%d]: expected %f, got %f", i, w, path[i])
		}
	}
}

func TestARSeedsFromNoise(t *testing.T) {
	ar := NewAR(0.9, 0.05, -0.1)
	w := stoch.Series{3, -2, 7, 1, 1}

	path, err := ar.Generate(w)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for i := 0; i < ar.Order(); i++ {
		if path[i] != w[i] {
			t.Errorf("path[%d]: expected seed %f, got %f", i, w[i], path[i])
		}
	}
}

func TestAROrderZeroIsWhiteNoise(t *testing.T) {
	wn := WhiteNoise()
	in := stoch.Series{0.1, -0.2, 0.3}

	path, err := wn.Generate(in)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for i := range in {
		if path[i] != in[i] {
			t.Errorf("path[%d]: expected %f, got %f", i, in[i], path[i])
		}
	}

	// fresh allocation, never aliased to the input
	path[0] = 999
	if in[0] != 0.1 {
		t.Error("generated path aliases the input noise")
	}
}

func TestARShortNoise(t *testing.T) {
	ar := NewAR(0.5, 0.2)
	if ar.MinLen() != 3 {
		t.Errorf("expected MinLen 3 for AR(2), got %d", ar.MinLen())
	}
	_, err := ar.Generate(stoch.Series{1, 2})
	if !errors.Is(err, stoch.ErrShortNoise) {
		t.Errorf("expected ErrShortNoise, got %v", err)
	}
	if !errors.Is(err, stoch.ErrInvalidArgument) {
		t.Errorf("expected ErrShortNoise to wrap ErrInvalidArgument, got %v", err)
	}
}

// An AR(1) with coefficient 1 and a zero-drift unit-volatility walk are
// both cumulative sums of the noise; the walk starts from an extra zero,
// so its path lags the AR path by one step.
func TestARRandomWalkEquivalence(t *testing.T) {
	src := noise.NewSource(42)
	w := src.StandardNormal(500)

	arPath, err := NewAR(1.0).Generate(w)
	if err != nil {
		t.Fatalf("ar generate failed: %v", err)
	}
	bPath, err := (&Brownian{Drift: 0, Volatility: 1, Dt: 1}).Generate(w)
	if err != nil {
		t.Fatalf("brownian generate failed: %v", err)
	}

	if bPath[0] != 0 {
		t.Errorf("expected brownian path to start at 0, got %f", bPath[0])
	}
	for i := 0; i < len(w)-1; i++ {
		if arPath[i] != bPath[i+1] {
			t.Fatalf("cumulative sums diverge at %d: ar=%f brownian=%f", i, arPath[i], bPath[i+1])
		}
	}
}

// The non-stationary boundary coefficient must still generate.
func TestARUnitRootStillGenerates(t *testing.T) {
	ar := NewAR(1.0)

	stationary, err := ar.Stationary()
	if err != nil {
		t.Fatalf("stationary check failed: %v", err)
	}
	if stationary {
		t.Error("expected AR(1) with coefficient 1 to be non-stationary")
	}

	src := noise.NewSource(7)
	path, err := ar.Generate(src.StandardNormal(200))
	if err != nil {
		t.Fatalf("generate failed at unit root: %v", err)
	}
	if !path.IsValid() {
		t.Error("expected finite path at unit root")
	}
}

func TestARStationary(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		want   bool
	}{
		{"ar1 stable", []float64{0.7}, true},
		{"ar1 unit root", []float64{1.0}, false},
		{"ar2 stable complex roots", []float64{0.7, -0.4}, true},
		{"ar2 explosive", []float64{1.5, 0.9}, false},
		{"order zero", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAR(tt.coeffs...).Stationary()
			if err != nil {
				t.Fatalf("stationary check failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected stationary=%v for %v, got %v", tt.want, tt.coeffs, got)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	gen, err := r.Get("brownian", map[string]float64{"drift": 0.2, "volatility": 2, "dt": 0.5}, nil)
	if err != nil {
		t.Fatalf("get brownian failed: %v", err)
	}
	b, ok := gen.(*Brownian)
	if !ok {
		t.Fatalf("expected *Brownian, got %T", gen)
	}
	if b.Drift != 0.2 || b.Volatility != 2 || b.Dt != 0.5 {
		t.Errorf("params not applied: %+v", b)
	}

	gen, err = r.Get("ar", nil, []float64{0.7, -0.4})
	if err != nil {
		t.Fatalf("get ar failed: %v", err)
	}
	if ar := gen.(*AR); ar.Order() != 2 {
		t.Errorf("expected order 2, got %d", ar.Order())
	}

	if _, err := r.Get("lorenz", nil, nil); err == nil {
		t.Error("expected error for unknown model")
	}

	names := r.List()
	if len(names) != 3 {
		t.Errorf("expected 3 models, got %v", names)
	}
}
