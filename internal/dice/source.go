package dice

//go:generate mockgen -destination=mock/mock_source.go -package=mockdice -source=source.go

import (
	"math/rand"
)

// Source provides the randomness behind every die sample.
// This allows us to inject deterministic implementations for testing
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// randomSource implements Source using the math/rand global generator
type randomSource struct{}

// NewRandomSource creates a source drawing from the shared math/rand generator
func NewRandomSource() Source {
	return &randomSource{}
}

// Intn implements Source.Intn
func (r *randomSource) Intn(n int) int {
	return rand.Intn(n)
}

// seededSource implements Source with a private, seeded generator
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source. Two sources built from the
// same seed produce the same sequence.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn implements Source.Intn
func (s *seededSource) Intn(n int) int {
	return s.rng.Intn(n)
}

var defaultSource = NewRandomSource()

// DefaultSource returns the source used by Die.Roll
func DefaultSource() Source {
	return defaultSource
}

// SetDefaultSource replaces the source used by Die.Roll and returns a func
// restoring the previous one. A nil src restores the random source.
func SetDefaultSource(src Source) (restore func()) {
	previous := defaultSource
	if src == nil {
		src = NewRandomSource()
	}
	defaultSource = src
	return func() {
		defaultSource = previous
	}
}
