// Package corr estimates the temporal dependence structure of a series:
//
//   - [ACF]: sample autocorrelation up to a maximum lag
//   - [PACF]: sample partial autocorrelation via the Levinson-Durbin
//     recursion, with per-lag degeneracy flags
//   - [Difference]: first differences, for whitening non-stationary input
//   - [ACFFFT]: the same autocorrelation estimator through an FFT
//     power-spectrum round trip, preferable for very long series
//
// The estimators are agnostic to how their input was produced; they see
// only a series of reals. For a random walk the ACF decays slowly across
// lags while the PACF spikes once at lag 1; for a stationary AR(p) the
// ACF decays geometrically and the PACF cuts off after lag p.
package corr
