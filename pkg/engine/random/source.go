// Package random supplies the uniform index selection consumed by the maze
// algorithms. Every draw goes through a Source so runs are reproducible.
package random

import "math/rand/v2"

// Source picks one index uniformly from a non-empty sequence of length n.
// Implementations must return a value in [0, n) for n > 0.
type Source interface {
	Intn(n int) int
}

// PCG is a deterministic Source seeded through math/rand/v2's PCG generator.
type PCG struct {
	r *rand.Rand
}

// NewPCG creates a deterministic Source using the provided seed.
func NewPCG(seed int64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Intn returns a random int in [0, n). It returns 0 when n <= 0.
func (p *PCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return p.r.IntN(n)
}

// Sequence replays a fixed list of draws, each reduced modulo n, and then
// repeats from the start. An empty Sequence always returns 0.
type Sequence struct {
	draws []int
	pos   int
}

// NewSequence creates a Sequence that replays draws in order.
func NewSequence(draws ...int) *Sequence {
	return &Sequence{draws: draws}
}

// Intn returns the next scripted draw reduced into [0, n).
func (s *Sequence) Intn(n int) int {
	if n <= 0 || len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Pick returns a uniformly chosen element of items and its index.
// The second result is -1 for an empty slice.
func Pick[T any](src Source, items []T) (T, int) {
	var zero T
	if len(items) == 0 {
		return zero, -1
	}
	i := src.Intn(len(items))
	return items[i], i
}
