// Deterministic random sources shared by the weight generators.
//
// Policy:
//   - seed == 0 selects DefaultSeed, so a zero-valued configuration is still
//     reproducible; any other seed is used verbatim.
//   - math/rand.Rand is NOT goroutine-safe. Every generator owns its stream;
//     composite generators take one stream per part from SplitRand.
package semiring

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for seed.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer so that neighbouring streams are decorrelated.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// SplitRand returns n independent streams for the parts of a composite
// generator. Part i is seeded with DeriveSeed(seed, i), so its draws do not
// depend on how many parts there are. seed == 0 selects DefaultSeed.
func SplitRand(seed int64, n int) []*rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewSource(DeriveSeed(seed, uint64(i))))
	}

	return out
}
