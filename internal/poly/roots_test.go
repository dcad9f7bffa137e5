package poly

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func TestRootsLinear(t *testing.T) {
	// 1 - z: the AR(1) unit-root boundary
	roots, err := Roots([]float64{1, -1})
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if m := cmplx.Abs(roots[0]); math.Abs(m-1.0) > 1e-12 {
		t.Errorf("expected modulus exactly 1, got %.15f", m)
	}
}

func TestRootsQuadraticReal(t *testing.T) {
	// 2 - 3z + z^2 = (z-1)(z-2)
	roots, err := Roots([]float64{2, -3, 1})
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	re := []float64{real(roots[0]), real(roots[1])}
	sort.Float64s(re)
	if math.Abs(re[0]-1) > 1e-8 || math.Abs(re[1]-2) > 1e-8 {
		t.Errorf("expected roots 1 and 2, got %v", roots)
	}
	for _, r := range roots {
		if math.Abs(imag(r)) > 1e-8 {
			t.Errorf("expected real roots, got %v", r)
		}
	}
}

func TestRootsComplexPair(t *testing.T) {
	// 1 - 0.7z + 0.4z^2: complex conjugate roots with modulus sqrt(1/0.4)
	roots, err := Roots(ARCharacteristic([]float64{0.7, -0.4}))
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	wantMod := math.Sqrt(1 / 0.4)
	for _, r := range roots {
		if math.Abs(cmplx.Abs(r)-wantMod) > 1e-8 {
			t.Errorf("expected modulus %f, got %f", wantMod, cmplx.Abs(r))
		}
	}
}

func TestRootsTrimsHighZeros(t *testing.T) {
	roots, err := Roots([]float64{2, -3, 1, 0, 0})
	if err != nil {
		t.Fatalf("roots failed: %v", err)
	}
	if len(roots) != 2 {
		t.Errorf("expected trailing zeros trimmed to degree 2, got %d roots", len(roots))
	}
}

func TestRootsDegenerate(t *testing.T) {
	for _, coeffs := range [][]float64{nil, {5}, {0, 0}} {
		if _, err := Roots(coeffs); !errors.Is(err, ErrDegenerate) {
			t.Errorf("expected ErrDegenerate for %v, got %v", coeffs, err)
		}
	}
}

func TestARCharacteristic(t *testing.T) {
	got := ARCharacteristic([]float64{0.7, -0.4})
	want := []float64{1, -0.7, 0.4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coeff %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestStationary(t *testing.T) {
	tests := []struct {
		name string
		phi  []float64
		want bool
	}{
		{"stable ar1", []float64{0.7}, true},
		{"unit root", []float64{1.0}, false},
		{"stable ar2", []float64{0.7, -0.4}, true},
		{"explosive ar2", []float64{1.5, 0.9}, false},
		{"near boundary", []float64{0.99}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stationary(tt.phi)
			if err != nil {
				t.Fatalf("stationary failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v for %v, got %v", tt.want, tt.phi, got)
			}
		})
	}
}
