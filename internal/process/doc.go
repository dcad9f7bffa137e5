// Package process provides stochastic process models for path generation.
//
// Each model implements the [stoch.Generator] interface, defining the
// recursion that turns a driving noise series into a sample path:
//
//   - [Brownian]: random walk with drift (cumulative sum of increments)
//   - [AR]: autoregressive process of order p
//
// Both recursions are evaluated literally, value by value, because the
// realized path is what the correlation estimators consume; there is no
// closed-form shortcut.
//
// # Stationarity
//
// An AR(p) process is stationary only if every root of its characteristic
// polynomial lies strictly outside the unit circle. Use [AR.Stationary]
// to check; generation itself never enforces it, so boundary cases such
// as AR(1) with coefficient 1 (the random walk) still run:
//
//	ar := process.NewAR(1.0)
//	path, err := ar.Generate(noise)
package process
