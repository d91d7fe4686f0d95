package creature

import (
	"strings"

	"github.com/KirkDiggler/dnd-rules/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-rules/internal/errors"
	"github.com/KirkDiggler/dnd-rules/internal/pkg/intmath"
)

// ProficiencyType scales a creature's base proficiency bonus
type ProficiencyType interface {
	ID() string
	Bonus(c *Creature, base int) int
}

type builtinType struct {
	id    string
	name  string
	scale func(base int) int
}

func (t *builtinType) ID() string {
	return t.id
}

func (t *builtinType) Bonus(_ *Creature, base int) int {
	return t.scale(base)
}

func (t *builtinType) String() string {
	return t.name
}

var (
	// Full adds the proficiency bonus as is
	Full ProficiencyType = &builtinType{
		id:    rulebook.NamespaceSRD.Key(rulebook.KindProficiencyType, "full"),
		name:  "full",
		scale: func(base int) int { return base },
	}

	// Half adds half the bonus rounded down
	Half ProficiencyType = &builtinType{
		id:    rulebook.NamespaceSRD.Key(rulebook.KindProficiencyType, "half"),
		name:  "half",
		scale: func(base int) int { return intmath.FloorDiv(base, 2) },
	}

	// Expertise doubles the bonus
	Expertise ProficiencyType = &builtinType{
		id:    rulebook.NamespaceSRD.Key(rulebook.KindProficiencyType, "expertise"),
		name:  "expertise",
		scale: func(base int) int { return base * 2 },
	}
)

var builtinTypes = []ProficiencyType{Full, Half, Expertise}

// ProficiencyTypeByName finds a builtin type by short name ("half") or id
func ProficiencyTypeByName(name string) (ProficiencyType, bool) {
	name = strings.TrimSpace(name)
	for _, t := range builtinTypes {
		if strings.EqualFold(t.ID(), name) || strings.EqualFold(t.(*builtinType).name, name) {
			return t, true
		}
	}
	return nil, false
}

// ProficiencyTypeFunc is a user supplied proficiency type, e.g. a feature
// that grants a flat bonus instead of scaling the base
type ProficiencyTypeFunc struct {
	id string
	fn func(c *Creature, base int) int
}

// NewProficiencyType creates a custom proficiency type
func NewProficiencyType(id string, fn func(c *Creature, base int) int) (*ProficiencyTypeFunc, error) {
	if id == "" {
		return nil, errors.InvalidArgument("proficiency type id is required")
	}
	if fn == nil {
		return nil, errors.InvalidArgumentf("proficiency type %s has no bonus function", id)
	}
	return &ProficiencyTypeFunc{id: id, fn: fn}, nil
}

func (t *ProficiencyTypeFunc) ID() string {
	return t.id
}

func (t *ProficiencyTypeFunc) Bonus(c *Creature, base int) int {
	return t.fn(c, base)
}

func (t *ProficiencyTypeFunc) String() string {
	return t.id
}

// Proficiencies maps category -> subject -> proficiency type. At most one type
// is held per pair; inserting again replaces it.
type Proficiencies struct {
	categories map[string]map[string]ProficiencyType
}

// NewProficiencies creates an empty set
func NewProficiencies() *Proficiencies {
	return &Proficiencies{
		categories: make(map[string]map[string]ProficiencyType),
	}
}

// Insert records proficiency in prof. A nil type means Full.
func (p *Proficiencies) Insert(prof rulebook.Proficiency, t ProficiencyType) error {
	if prof.Category == "" || prof.Subject == nil {
		return errors.InvalidArgumentf("invalid proficiency %s", prof)
	}
	if t == nil {
		t = Full
	}

	subjects, ok := p.categories[prof.Category]
	if !ok {
		subjects = make(map[string]ProficiencyType)
		p.categories[prof.Category] = subjects
	}
	subjects[prof.Subject.ID()] = t
	return nil
}

// Has returns the proficiency type held for prof
func (p *Proficiencies) Has(prof rulebook.Proficiency) (ProficiencyType, bool) {
	if prof.Subject == nil {
		return nil, false
	}
	t, ok := p.categories[prof.Category][prof.Subject.ID()]
	return t, ok
}

// Remove drops prof, reporting whether it was held
func (p *Proficiencies) Remove(prof rulebook.Proficiency) bool {
	if prof.Subject == nil {
		return false
	}
	subjects, ok := p.categories[prof.Category]
	if !ok {
		return false
	}
	if _, ok := subjects[prof.Subject.ID()]; !ok {
		return false
	}
	delete(subjects, prof.Subject.ID())
	if len(subjects) == 0 {
		delete(p.categories, prof.Category)
	}
	return true
}

// Len counts the held proficiencies across categories
func (p *Proficiencies) Len() int {
	n := 0
	for _, subjects := range p.categories {
		n += len(subjects)
	}
	return n
}

func proficiencyLabel(t ProficiencyType) string {
	if s, ok := t.(interface{ String() string }); ok {
		return s.String()
	}
	return t.ID()
}
