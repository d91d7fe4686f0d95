package creature

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dnd-rules/internal/dice"
	"github.com/KirkDiggler/dnd-rules/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

// Breakdown explains the bonus added to a check or save
type Breakdown struct {
	Metric          rulebook.Check
	AbilityModifier int

	// Proficiency is nil when the creature is not proficient
	Proficiency      ProficiencyType
	ProficiencyBonus int

	Total int
}

func (b *Breakdown) String() string {
	s := fmt.Sprintf("%+d (%s)", b.AbilityModifier, b.Metric.Base().Short())
	if b.Proficiency != nil {
		s += fmt.Sprintf(" %+d (%s)", b.ProficiencyBonus, proficiencyLabel(b.Proficiency))
	}
	return fmt.Sprintf("%s = %+d", s, b.Total)
}

type rollOptions struct {
	advantage    bool
	disadvantage bool
}

// RollOption changes how the d20 of a check or save is rolled
type RollOption func(*rollOptions)

// WithAdvantage rolls two d20 and keeps the higher
func WithAdvantage() RollOption {
	return func(o *rollOptions) {
		o.advantage = true
	}
}

// WithDisadvantage rolls two d20 and keeps the lower
func WithDisadvantage() RollOption {
	return func(o *rollOptions) {
		o.disadvantage = true
	}
}

// CheckBonus computes the bonus for a check of an ability or skill
func (c *Creature) CheckBonus(metric rulebook.Check) (*Breakdown, error) {
	if metric == nil {
		return nil, errors.InvalidArgument("check is required")
	}
	return c.bonus(metric, c.namespace.Checks(metric))
}

// SaveBonus computes the bonus for a saving throw. The ability modifier
// applies to saves as well as checks.
func (c *Creature) SaveBonus(ability *rulebook.Ability) (*Breakdown, error) {
	if ability == nil {
		return nil, errors.InvalidArgument("ability is required")
	}
	return c.bonus(ability, c.namespace.Saves(ability))
}

func (c *Creature) bonus(metric rulebook.Check, prof rulebook.Proficiency) (*Breakdown, error) {
	if metric.Base() == nil {
		return nil, errors.InvalidArgumentf("%s has no base ability", metric.ID())
	}

	mod, err := c.Modifier(metric.Base())
	if err != nil {
		return nil, err
	}

	b := &Breakdown{
		Metric:          metric,
		AbilityModifier: mod,
	}

	if t, ok := c.Proficient(prof); ok {
		b.Proficiency = t
		b.ProficiencyBonus = t.Bonus(c, c.ProficiencyBonus())
	}

	b.Total = b.AbilityModifier + b.ProficiencyBonus
	return b, nil
}

// Check rolls a d20 check. The bonus is carried by a single Add (or Sub) so
// it applies even though the first scalar modifier ends the chain. It is
// attached even at +0, so Apply always resolves.
func (c *Creature) Check(metric rulebook.Check, opts ...RollOption) (*dice.RollSet, error) {
	if metric == nil {
		return nil, errors.InvalidArgument("check is required")
	}

	b, err := c.CheckBonus(metric)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s check", metric.Name())
	}
	return c.roll("check", b, opts), nil
}

// Save rolls a d20 saving throw
func (c *Creature) Save(ability *rulebook.Ability, opts ...RollOption) (*dice.RollSet, error) {
	if ability == nil {
		return nil, errors.InvalidArgument("ability is required")
	}

	b, err := c.SaveBonus(ability)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s save", ability.Name())
	}
	return c.roll("save", b, opts), nil
}

func (c *Creature) roll(kind string, b *Breakdown, opts []RollOption) *dice.RollSet {
	o := &rollOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var set *dice.RollSet
	switch {
	case o.advantage && !o.disadvantage:
		set = dice.D20.RollWith(c.diceSource(), 2).Then(dice.Advantage(dice.D20))
	case o.disadvantage && !o.advantage:
		set = dice.D20.RollWith(c.diceSource(), 2).Then(dice.Disadvantage(dice.D20))
	default:
		set = dice.D20.RollWith(c.diceSource(), 1)
	}

	if b.Total < 0 {
		set.Then(dice.Sub(-b.Total))
	} else {
		set.Then(dice.Add(b.Total))
	}

	slog.Debug("Rolled "+kind,
		"creature", c.id,
		"metric", b.Metric.ID(),
		"ability_modifier", b.AbilityModifier,
		"proficiency_bonus", b.ProficiencyBonus,
		"rolls", set.String())

	return set
}
