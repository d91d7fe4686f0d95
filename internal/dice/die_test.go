package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-rules/internal/dice"
	mockdice "github.com/KirkDiggler/dnd-rules/internal/dice/mock"
	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		sides   int
		wantErr bool
	}{
		{name: "coin", sides: 2},
		{name: "one sided", sides: 1},
		{name: "odd custom die", sides: 123},
		{name: "zero sides", sides: 0, wantErr: true},
		{name: "negative sides", sides: -4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := dice.New(tt.sides)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidDie(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.sides, d.Sides())
		})
	}
}

func TestMustNewPanicsOnInvalidDie(t *testing.T) {
	assert.Panics(t, func() { dice.MustNew(0) })
	assert.Equal(t, 8, dice.MustNew(8).Sides())
}

func TestStandardDice(t *testing.T) {
	assert.Equal(t, "d4", dice.D4.String())
	assert.Equal(t, "d20", dice.D20.String())
	assert.Equal(t, 100, dice.D100.Sides())
	assert.Equal(t, dice.D20, dice.MustNew(20), "dice with the same sides are interchangeable")
}

func TestSampleStaysInRange(t *testing.T) {
	src := dice.NewSeededSource(42)

	for sides := 1; sides <= 30; sides++ {
		d := dice.MustNew(sides)
		for i := 0; i < 500; i++ {
			v := d.Sample(src)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, sides)
		}
	}
}

func TestSampleIsUniform(t *testing.T) {
	const trials = 60000
	src := dice.NewSeededSource(7)
	counts := make(map[int]int)

	for i := 0; i < trials; i++ {
		counts[dice.D6.Sample(src)]++
	}

	require.Len(t, counts, 6)
	expected := trials / 6
	for face := 1; face <= 6; face++ {
		assert.InDelta(t, expected, counts[face], float64(expected)/10, "face %d", face)
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	first := dice.D20.RollWith(dice.NewSeededSource(99), 10)
	second := dice.D20.RollWith(dice.NewSeededSource(99), 10)

	assert.Equal(t, first.Get(dice.D20), second.Get(dice.D20))
}

func TestRollWithManualSource(t *testing.T) {
	src := mockdice.NewManualSource(4, 5)

	set := dice.D6.RollWith(src, 2)

	assert.Equal(t, []dice.Roll{dice.NewRoll(4), dice.NewRoll(5)}, set.Get(dice.D6))
	assert.Equal(t, 9, set.Total())
	assert.Equal(t, 0, src.Remaining())
}

func TestRollWithMockSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mockdice.NewMockSource(ctrl)

	src.EXPECT().Intn(20).Return(16)

	set := dice.D20.RollWith(src, 1)

	assert.Equal(t, 17, set.Total())
}

func TestRollBelowOneRollsOnce(t *testing.T) {
	src := mockdice.NewManualSource(3)

	set := dice.D8.RollWith(src, 0)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 3, set.Total())
}

func TestSetDefaultSource(t *testing.T) {
	restore := dice.SetDefaultSource(mockdice.NewManualSource(11, 2))
	defer restore()

	set := dice.D20.Roll(2)

	assert.Equal(t, 13, set.Total())
}

func TestManualSourceRejectsImpossibleFace(t *testing.T) {
	src := mockdice.NewManualSource(7)

	assert.Panics(t, func() { dice.D6.Sample(src) })
}
