package randutil

// Source is a xorshift32 pseudo-random generator. It is deliberately small
// and deterministic for a given seed; it is not safe for concurrent use, so
// each owner keeps its own Source.
type Source struct {
	seed uint32
}

// New returns a Source seeded with seed. A zero seed is coerced to 1 because
// xorshift32 has a fixed point at zero.
func New(seed uint32) *Source {
	if seed == 0 {
		seed = 1
	}
	return &Source{seed: seed}
}

func (s *Source) next() uint32 {
	s.seed ^= s.seed << 13
	s.seed ^= s.seed >> 17
	s.seed ^= s.seed << 5
	return s.seed
}

// Uniform returns a uniformly distributed value in [0, n).
// Returns 0 when n is not positive.
func (s *Source) Uniform(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return s.next() & uint32(n-1)
	}
	return uint32((uint64(s.next()) * uint64(n)) >> 32)
}

// OneIn reports true with probability 1/n. Returns false when n is not positive.
func (s *Source) OneIn(n int) bool {
	if n <= 0 {
		return false
	}
	return s.Uniform(n) == 0
}

// Skewed returns a value in [0, 2^maxLog) biased toward small values: the
// magnitude is itself drawn uniformly first.
func (s *Source) Skewed(maxLog int) uint32 {
	if maxLog < 0 {
		return 0
	}
	return s.Uniform(1 << s.Uniform(maxLog+1))
}
