package testutils

import (
	"fmt"

	"github.com/KirkDiggler/dnd-rules/internal/dice"
	"github.com/KirkDiggler/dnd-rules/internal/domain/creature"
	"github.com/KirkDiggler/dnd-rules/internal/domain/rulebook"
)

// RogueSheetYAML is the sheet form of CreateTestRogue
const RogueSheetYAML = `name: Vex
level: 1
abilities:
  strength: 8
  dexterity: 20
  constitution: 12
  intelligence: 13
  wisdom: 10
  charisma: 14
proficiencies:
  checks:
    stealth: expertise
    acrobatics: full
    perception: half
  saves:
    dexterity: full
    intelligence: full
`

// CreateTestCreature creates a creature with every SRD ability at 10
func CreateTestCreature(id, name string, level int, src dice.Source) *creature.Creature {
	c, err := creature.New(&creature.Config{
		ID:     id,
		Name:   name,
		Level:  level,
		Source: src,
	})
	if err != nil {
		panic(fmt.Sprintf("test creature: %v", err))
	}

	for _, a := range rulebook.SRD(rulebook.NamespaceSRD).Abilities() {
		if err := c.SetScore(a, 10); err != nil {
			panic(err)
		}
	}
	return c
}

// CreateTestRogue creates a level 1 rogue with expertise in Stealth
func CreateTestRogue(reg *rulebook.Registry, src dice.Source) *creature.Creature {
	c, err := creature.New(&creature.Config{
		ID:        "rogue",
		Name:      "Vex",
		Level:     1,
		Namespace: reg.Namespace(),
		Source:    src,
	})
	if err != nil {
		panic(fmt.Sprintf("test rogue: %v", err))
	}

	scores := map[string]int{
		"strength":     8,
		"dexterity":    20,
		"constitution": 12,
		"intelligence": 13,
		"wisdom":       10,
		"charisma":     14,
	}
	for ref, score := range scores {
		if err := c.SetScore(mustAbility(reg, ref), score); err != nil {
			panic(err)
		}
	}

	ns := reg.Namespace()
	mustAdd(c, ns.Checks(mustCheck(reg, "stealth")), creature.Expertise)
	mustAdd(c, ns.Checks(mustCheck(reg, "acrobatics")), creature.Full)
	mustAdd(c, ns.Checks(mustCheck(reg, "perception")), creature.Half)
	mustAdd(c, ns.Saves(mustAbility(reg, "dexterity")), creature.Full)
	mustAdd(c, ns.Saves(mustAbility(reg, "intelligence")), creature.Full)

	return c
}

func mustCheck(reg *rulebook.Registry, ref string) rulebook.Check {
	check, err := reg.Check(ref)
	if err != nil {
		panic(err)
	}
	return check
}

func mustAbility(reg *rulebook.Registry, ref string) *rulebook.Ability {
	ability, err := reg.Ability(ref)
	if err != nil {
		panic(err)
	}
	return ability
}

func mustAdd(c *creature.Creature, prof rulebook.Proficiency, t creature.ProficiencyType) {
	if err := c.AddProficiency(prof, t); err != nil {
		panic(err)
	}
}
