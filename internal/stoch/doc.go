// Package stoch defines the core types shared by process generators and
// correlation estimators:
//
//   - [Series]: an ordered sequence of real values, used for both driving
//     noise and realized sample paths
//   - [Generator]: a stochastic process model that turns a noise series
//     into a sample path
//
// Every operation produces a freshly allocated series; inputs are never
// aliased or mutated across calls.
package stoch
