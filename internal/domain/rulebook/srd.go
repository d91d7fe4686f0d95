package rulebook

import "fmt"

// The SRD rule pack as data. Short names follow the familiar sheet
// abbreviations.
var srdAbilities = []struct {
	key   string
	short string
}{
	{key: "strength", short: "Str"},
	{key: "dexterity", short: "Dex"},
	{key: "constitution", short: "Con"},
	{key: "intelligence", short: "Int"},
	{key: "wisdom", short: "Wis"},
	{key: "charisma", short: "Cha"},
}

var srdSkills = []struct {
	key     string
	ability string
}{
	{key: "athletics", ability: "strength"},
	{key: "acrobatics", ability: "dexterity"},
	{key: "sleight-of-hand", ability: "dexterity"},
	{key: "stealth", ability: "dexterity"},
	{key: "arcana", ability: "intelligence"},
	{key: "history", ability: "intelligence"},
	{key: "investigation", ability: "intelligence"},
	{key: "nature", ability: "intelligence"},
	{key: "religion", ability: "intelligence"},
	{key: "animal-handling", ability: "wisdom"},
	{key: "insight", ability: "wisdom"},
	{key: "medicine", ability: "wisdom"},
	{key: "perception", ability: "wisdom"},
	{key: "survival", ability: "wisdom"},
	{key: "deception", ability: "charisma"},
	{key: "intimidation", ability: "charisma"},
	{key: "performance", ability: "charisma"},
	{key: "persuasion", ability: "charisma"},
}

// SRD builds a registry with the six abilities and eighteen skills of the
// System Reference Document under the given namespace
func SRD(ns Namespace) *Registry {
	r := NewRegistry(ns)

	for _, a := range srdAbilities {
		if _, err := r.RegisterAbility(a.key, a.short); err != nil {
			panic(fmt.Sprintf("srd ability %s: %v", a.key, err))
		}
	}

	for _, s := range srdSkills {
		if _, err := r.RegisterSkill(s.key, s.ability); err != nil {
			panic(fmt.Sprintf("srd skill %s: %v", s.key, err))
		}
	}

	return r
}
