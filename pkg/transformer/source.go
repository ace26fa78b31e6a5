package transformer

import (
	"math/rand"
	"time"

	"github.com/Cloud-Pie/EFT/internal/util"
)

//Source of randomness for the emission factors. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

//NewSource returns a source seeded with seed, or with the current time when seed is 0
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

//ResolveSeed replaces the seed 0 with one taken from the current time
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

//Draw a factor uniformly from [MIN_EMISSION_FACTOR, MAX_EMISSION_FACTOR]
func EmissionFactor(rng Source) int {
	return util.MIN_EMISSION_FACTOR + rng.Intn(util.MAX_EMISSION_FACTOR-util.MIN_EMISSION_FACTOR+1)
}
