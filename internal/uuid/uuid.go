// Package uuid generates creature ids behind an interface tests can swap
package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is an interface for generating creature ids
type Generator interface {
	New() string
}

// RandomGenerator yields random (v4) UUIDs
type RandomGenerator struct{}

// NewRandomGenerator creates the production id generator
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) New() string {
	return uuid.NewString()
}

// SequentialGenerator generates predictable ids for tests
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequentialGenerator creates a generator yielding prefix_1, prefix_2, ...
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New generates the next sequential id
func (g *SequentialGenerator) New() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
