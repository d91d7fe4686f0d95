package dice

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

// Die is an n-sided die. It carries no state beyond its side count, so two
// dice with the same sides are interchangeable.
type Die struct {
	sides int
}

// Standard dice
var (
	D4   = Die{sides: 4}
	D6   = Die{sides: 6}
	D8   = Die{sides: 8}
	D10  = Die{sides: 10}
	D12  = Die{sides: 12}
	D20  = Die{sides: 20}
	D100 = Die{sides: 100}
)

// New creates an n-sided die
func New(sides int) (Die, error) {
	if sides < 1 {
		return Die{}, errors.InvalidDie(sides)
	}
	return Die{sides: sides}, nil
}

// MustNew is like New but panics on an invalid side count
func MustNew(sides int) Die {
	d, err := New(sides)
	if err != nil {
		panic(err)
	}
	return d
}

// Sides returns how many sides this die has
func (d Die) Sides() int {
	return d.sides
}

func (d Die) String() string {
	return fmt.Sprintf("d%d", d.sides)
}

// Sample draws one value in [1, sides] from src
func (d Die) Sample(src Source) int {
	if d.sides < 1 {
		panic(errors.InvalidDie(d.sides))
	}
	return src.Intn(d.sides) + 1
}

// Roll rolls this die the given number of times using the default source.
// A count below one rolls once.
func (d Die) Roll(times int) *RollSet {
	return d.RollWith(defaultSource, times)
}

// RollWith rolls this die the given number of times using src
func (d Die) RollWith(src Source, times int) *RollSet {
	if times < 1 {
		times = 1
	}

	values := make([]int, times)
	for i := range values {
		values[i] = d.Sample(src)
	}

	slog.Debug("Rolled dice",
		"die", d.String(),
		"count", times,
		"values", values)

	return NewRollSet().AddValues(d, values...)
}
