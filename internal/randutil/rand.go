// Package randutil provides reproducible random sources for tests, the
// simulator and replays.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand derived from seed. The same seed
// always yields the same shuffles and hand IDs.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Derive returns an independent seed for stream i of a run seeded with
// seed, so parallel tables do not share a sequence.
func Derive(seed int64, i int) int64 {
	return int64(splitmix(uint64(seed) ^ splitmix(uint64(i)+goldenRatio64)))
}

// Sequence replays fixed values in [0, 1), cycling when exhausted.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
