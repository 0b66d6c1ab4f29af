package noise

import "math/rand"

// Source produces uniform random samples on [-1, 1].
type Source interface {
	Bipolar() float64
}

// SourceFunc adapts a function returning uniform samples on [-1, 1] to
// a Source.
type SourceFunc func() float64

// Bipolar calls f.
func (f SourceFunc) Bipolar() float64 { return f() }

// Shared is a seeded random source meant to be shared by all generators of
// one engine. It is not safe for concurrent use.
type Shared struct {
	seed int64
	rng  *rand.Rand
}

// NewShared returns a Shared source seeded with seed.
func NewShared(seed int64) *Shared {
	return &Shared{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Bipolar returns a uniform sample on [-1, 1).
func (s *Shared) Bipolar() float64 {
	return 2*s.rng.Float64() - 1
}

// Unipolar returns a uniform sample on [0, 1).
func (s *Shared) Unipolar() float64 {
	return s.rng.Float64()
}

// Seed restarts the sequence from seed.
func (s *Shared) Seed(seed int64) {
	s.seed = seed
	s.rng.Seed(seed)
}

// Restart replays the sequence from the last seed.
func (s *Shared) Restart() {
	s.rng.Seed(s.seed)
}

func drawFunc(src Source) func() float64 {
	if s, ok := src.(*Shared); ok && s == nil {
		src = nil
	}

	if src == nil {
		return NewShared(1).Bipolar
	}

	if f, ok := src.(SourceFunc); ok {
		return f
	}

	return src.Bipolar
}
