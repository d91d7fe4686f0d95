package creature

import (
	"github.com/KirkDiggler/dnd-rules/internal/dice"
	"github.com/KirkDiggler/dnd-rules/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-rules/internal/errors"
	"github.com/KirkDiggler/dnd-rules/internal/pkg/intmath"
	"github.com/KirkDiggler/dnd-rules/internal/uuid"
)

// Config holds the configuration for a creature
type Config struct {
	ID    string
	Name  string
	Level int

	// ProficiencyBonus overrides the level derived bonus when positive
	ProficiencyBonus int

	// Namespace the creature's proficiency categories live in, defaults to 5E
	Namespace rulebook.Namespace

	// Source rolls the creature's dice, defaults to dice.DefaultSource at roll time
	Source dice.Source

	IDGenerator uuid.Generator
}

// Creature is the stat store checks and saves are rolled against
type Creature struct {
	id               string
	name             string
	level            int
	proficiencyBonus int
	namespace        rulebook.Namespace
	source           dice.Source

	scores        map[string]int
	proficiencies *Proficiencies
}

// New creates a creature
func New(cfg *Config) (*Creature, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("creature config is required")
	}
	if cfg.Level < 0 {
		return nil, errors.InvalidArgumentf("level must not be negative, got %d", cfg.Level)
	}
	if cfg.ProficiencyBonus < 0 {
		return nil, errors.InvalidArgumentf("proficiency bonus must not be negative, got %d", cfg.ProficiencyBonus)
	}

	id := cfg.ID
	if id == "" {
		gen := cfg.IDGenerator
		if gen == nil {
			gen = uuid.NewRandomGenerator()
		}
		id = gen.New()
	}

	ns := cfg.Namespace
	if ns == "" {
		ns = rulebook.NamespaceSRD
	}

	return &Creature{
		id:               id,
		name:             cfg.Name,
		level:            cfg.Level,
		proficiencyBonus: cfg.ProficiencyBonus,
		namespace:        ns,
		source:           cfg.Source,
		scores:           make(map[string]int),
		proficiencies:    NewProficiencies(),
	}, nil
}

func (c *Creature) ID() string {
	return c.id
}

func (c *Creature) Name() string {
	return c.name
}

func (c *Creature) Level() int {
	return c.level
}

func (c *Creature) Namespace() rulebook.Namespace {
	return c.namespace
}

// SetScore stores the raw score of an ability
func (c *Creature) SetScore(ability *rulebook.Ability, score int) error {
	if ability == nil {
		return errors.InvalidArgument("ability is required")
	}
	c.scores[ability.ID()] = score
	return nil
}

// Score returns the raw score of an ability. A nil ability has no score.
func (c *Creature) Score(ability *rulebook.Ability) (int, bool) {
	if ability == nil {
		return 0, false
	}
	score, ok := c.scores[ability.ID()]
	return score, ok
}

// Modifier returns the ability modifier for a stored score
func (c *Creature) Modifier(ability *rulebook.Ability) (int, error) {
	if ability == nil {
		return 0, errors.InvalidArgument("ability is required")
	}
	score, ok := c.Score(ability)
	if !ok {
		return 0, errors.MissingAbilityScore(ability.ID())
	}
	return AbilityModifier(score), nil
}

// AbilityModifier converts a score to its modifier, rounding down: 7 -> -2
func AbilityModifier(score int) int {
	return intmath.FloorDiv(score-10, 2)
}

// ProficiencyBonusForLevel is 2 at levels 1-4, 3 at 5-8 and so on
func ProficiencyBonusForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// ProficiencyBonus returns the creature's base proficiency bonus
func (c *Creature) ProficiencyBonus() int {
	if c.proficiencyBonus > 0 {
		return c.proficiencyBonus
	}
	return ProficiencyBonusForLevel(c.level)
}

// AddProficiency grants proficiency of type t (nil means Full)
func (c *Creature) AddProficiency(prof rulebook.Proficiency, t ProficiencyType) error {
	return c.proficiencies.Insert(prof, t)
}

// RemoveProficiency revokes a proficiency
func (c *Creature) RemoveProficiency(prof rulebook.Proficiency) bool {
	return c.proficiencies.Remove(prof)
}

// Proficient reports the proficiency type held for prof
func (c *Creature) Proficient(prof rulebook.Proficiency) (ProficiencyType, bool) {
	return c.proficiencies.Has(prof)
}

// Proficiencies exposes the creature's proficiency set
func (c *Creature) Proficiencies() *Proficiencies {
	return c.proficiencies
}

func (c *Creature) diceSource() dice.Source {
	if c.source != nil {
		return c.source
	}
	return dice.DefaultSource()
}
