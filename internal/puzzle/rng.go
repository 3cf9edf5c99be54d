package puzzle

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
// Generation must be reproducible from a seed, so the core avoids math/rand
// and any process-global randomness.
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Shuffle permutes the coordinate slice in place (Fisher-Yates).
func (r *SimpleRNG) Shuffle(coords []Coord) {
	for i := len(coords) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}
}
