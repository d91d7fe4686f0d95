package mockdice

import (
	"fmt"
	"sync"
)

// ManualSource implements dice.Source for testing with predetermined results.
// Values are die faces (1-based), not the raw [0, n) draw.
type ManualSource struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualSource creates a source that replays the given faces in order
func NewManualSource(rolls ...int) *ManualSource {
	return &ManualSource{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll queues another face value
func (m *ManualSource) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued face values
func (m *ManualSource) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append([]int{}, rolls...)
	m.rollIndex = 0
}

// Remaining returns how many queued values are unused
func (m *ManualSource) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Intn implements dice.Source. It panics when the queue is exhausted or the
// queued face doesn't fit the die, since a test asked for a roll it didn't set up.
func (m *ManualSource) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		panic(fmt.Sprintf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls)))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > n {
		panic(fmt.Sprintf("invalid roll %d for d%d", roll, n))
	}
	m.rollIndex++

	return roll - 1
}
