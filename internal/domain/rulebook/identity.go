package rulebook

import (
	"fmt"
	"strings"
)

// Identity is a rule entity with a stable, globally unique id.
// Ids are only ever compared, never parsed.
type Identity interface {
	ID() string
}

// Namespace prefixes the ids of a rule pack, e.g. "5E"
type Namespace string

// NamespaceSRD is the namespace of the System Reference Document rules
const NamespaceSRD Namespace = "5E"

// Kind is the category of rule entity embedded in an id
type Kind string

const (
	KindAbility         Kind = "ABILITY"
	KindSkill           Kind = "SKILL"
	KindProficiency     Kind = "PROFICIENCY"
	KindProficiencyType Kind = "PROFICIENCY_TYPE"
)

var keyReplacer = strings.NewReplacer("-", "_", " ", "_")

// Key builds the id of an entity, e.g. 5E::SKILL::SLEIGHT_OF_HAND
func (n Namespace) Key(kind Kind, name string) string {
	return fmt.Sprintf("%s::%s::%s", n, kind, strings.ToUpper(keyReplacer.Replace(name)))
}

// Proficiency categories
const (
	categoryChecks = "checks"
	categorySaves  = "saves"
)

// ChecksCategory is the id of the ability/skill check proficiency category
func (n Namespace) ChecksCategory() string {
	return n.Key(KindProficiency, categoryChecks)
}

// SavesCategory is the id of the saving throw proficiency category
func (n Namespace) SavesCategory() string {
	return n.Key(KindProficiency, categorySaves)
}

// Checks is proficiency in checks of the given ability or skill
func (n Namespace) Checks(metric Check) Proficiency {
	return Proficiency{Category: n.ChecksCategory(), Subject: metric}
}

// Saves is proficiency in saving throws of the given ability
func (n Namespace) Saves(ability *Ability) Proficiency {
	return Proficiency{Category: n.SavesCategory(), Subject: ability}
}

// Proficiency binds a category to the entity a creature may be proficient in
type Proficiency struct {
	Category string
	Subject  Identity
}

func (p Proficiency) String() string {
	if p.Subject == nil {
		return p.Category
	}
	return fmt.Sprintf("%s(%s)", p.Category, p.Subject.ID())
}
