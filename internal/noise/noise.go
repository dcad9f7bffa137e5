// Package noise provides the seeded standard-normal source that drives
// process generation. The same seed always yields the same series.
package noise

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/stochlab/internal/stoch"
)

type Source struct {
	dist distuv.Normal
}

func NewSource(seed int64) *Source {
	return &Source{
		dist: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewSource(uint64(seed)),
		},
	}
}

// StandardNormal draws n i.i.d. N(0,1) samples into a fresh series.
func (s *Source) StandardNormal(n int) stoch.Series {
	if n <= 0 {
		return stoch.Series{}
	}
	out := make(stoch.Series, n)
	for i := range out {
		out[i] = s.dist.Rand()
	}
	return out
}
