package universe

import (
	"math/rand/v2"
	"time"
)

//NewRNG creates the random source used for seeding.
//seed 0 picks a time based seed, any other value gives a reproducible sequence.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
