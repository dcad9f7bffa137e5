// Package poly finds roots of real polynomials via the companion-matrix
// eigenvalue method, and applies them to AR stationarity checks.
package poly

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

var ErrDegenerate = errors.New("poly: polynomial degree must be at least 1")

// unitCircleTol guards the strict |root| > 1 comparison against the
// precision of the eigenvalue solve.
const unitCircleTol = 1e-9

// Roots returns all complex roots of c[0] + c[1]x + ... + c[n]x^n.
// Zero high-order coefficients are trimmed first.
func Roots(coeffs []float64) ([]complex128, error) {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	if n <= 1 {
		return nil, ErrDegenerate
	}
	deg := n - 1
	lead := coeffs[deg]

	if deg == 1 {
		return []complex128{complex(-coeffs[0]/lead, 0)}, nil
	}

	// Companion matrix of the monic polynomial: ones on the subdiagonal,
	// negated normalized coefficients in the last column.
	c := mat.NewDense(deg, deg, nil)
	for i := 0; i < deg; i++ {
		c.Set(i, deg-1, -coeffs[i]/lead)
		if i > 0 {
			c.Set(i, i-1, 1)
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, errors.New("poly: eigenvalue decomposition failed")
	}
	return eig.Values(nil), nil
}

// ARCharacteristic builds the characteristic polynomial of an AR(p)
// process, 1 - phi1*z - ... - phip*z^p, as ascending coefficients.
func ARCharacteristic(phi []float64) []float64 {
	coeffs := make([]float64, len(phi)+1)
	coeffs[0] = 1
	for i, p := range phi {
		coeffs[i+1] = -p
	}
	return coeffs
}

// Stationary reports whether all characteristic roots of the AR(p)
// coefficients lie strictly outside the unit circle. A root on the
// circle reports false; the process still generates, it is just not
// stationary.
func Stationary(phi []float64) (bool, error) {
	roots, err := Roots(ARCharacteristic(phi))
	if err != nil {
		return false, err
	}
	for _, r := range roots {
		if cmplx.Abs(r) <= 1+unitCircleTol {
			return false, nil
		}
	}
	return true, nil
}
