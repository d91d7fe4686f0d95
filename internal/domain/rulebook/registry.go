package rulebook

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

// Registry holds the abilities and skills of one rule pack. Entities are
// registered once at startup and looked up by id, key, display name or
// abbreviation, case-insensitively.
type Registry struct {
	namespace Namespace
	abilities []*Ability
	skills    []*Skill
	byRef     map[string]Check
}

// NewRegistry creates an empty registry for the namespace
func NewRegistry(ns Namespace) *Registry {
	return &Registry{
		namespace: ns,
		byRef:     make(map[string]Check),
	}
}

// Namespace returns the namespace ids are built in
func (r *Registry) Namespace() Namespace {
	return r.namespace
}

// RegisterAbility adds an ability. key is the lowercase name ("strength"),
// short its abbreviation ("Str").
func (r *Registry) RegisterAbility(key, short string) (*Ability, error) {
	key = normalizeKey(key)
	if key == "" {
		return nil, errors.InvalidArgument("ability key is required")
	}

	ability := &Ability{
		id:    r.namespace.Key(KindAbility, key),
		key:   key,
		name:  displayName(key),
		short: short,
	}

	if err := r.index(ability, ability.id, ability.key, ability.name, ability.short); err != nil {
		return nil, err
	}

	r.abilities = append(r.abilities, ability)
	return ability, nil
}

// RegisterSkill adds a skill backed by a registered ability
func (r *Registry) RegisterSkill(key, abilityRef string) (*Skill, error) {
	key = normalizeKey(key)
	if key == "" {
		return nil, errors.InvalidArgument("skill key is required")
	}

	base, err := r.Ability(abilityRef)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to register skill %s", key)
	}

	skill := &Skill{
		id:   r.namespace.Key(KindSkill, key),
		key:  key,
		name: displayName(key),
		base: base,
	}

	if err := r.index(skill, skill.id, skill.key, skill.name); err != nil {
		return nil, err
	}

	r.skills = append(r.skills, skill)
	return skill, nil
}

// Check finds an ability or skill
func (r *Registry) Check(ref string) (Check, error) {
	check, ok := r.byRef[normalizeRef(ref)]
	if !ok {
		return nil, errors.NotFoundf("no ability or skill named %q in %s", ref, r.namespace)
	}
	return check, nil
}

// Ability finds an ability
func (r *Registry) Ability(ref string) (*Ability, error) {
	check, err := r.Check(ref)
	if err != nil {
		return nil, err
	}

	ability, ok := check.(*Ability)
	if !ok {
		return nil, errors.NotFoundf("%q is a skill, not an ability", ref)
	}
	return ability, nil
}

// Skill finds a skill
func (r *Registry) Skill(ref string) (*Skill, error) {
	check, err := r.Check(ref)
	if err != nil {
		return nil, err
	}

	skill, ok := check.(*Skill)
	if !ok {
		return nil, errors.NotFoundf("%q is an ability, not a skill", ref)
	}
	return skill, nil
}

// Abilities returns the abilities in registration order
func (r *Registry) Abilities() []*Ability {
	abilities := make([]*Ability, len(r.abilities))
	copy(abilities, r.abilities)
	return abilities
}

// Skills returns the skills in registration order
func (r *Registry) Skills() []*Skill {
	skills := make([]*Skill, len(r.skills))
	copy(skills, r.skills)
	return skills
}

// SkillsFor returns the skills backed by ability
func (r *Registry) SkillsFor(ability *Ability) ([]*Skill, error) {
	if ability == nil {
		return nil, errors.InvalidArgument("ability is required")
	}

	var skills []*Skill
	for _, s := range r.skills {
		if s.base.ID() == ability.ID() {
			skills = append(skills, s)
		}
	}
	return skills, nil
}

func (r *Registry) index(check Check, refs ...string) error {
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		existing, ok := r.byRef[normalizeRef(ref)]
		if !ok || existing == check {
			continue
		}
		if existing.ID() == check.ID() {
			return errors.AlreadyExistsf("%s is already registered", check.ID())
		}
		return errors.AlreadyExistsf("%q already refers to %s", ref, existing.ID())
	}

	for _, ref := range refs {
		if ref != "" {
			r.byRef[normalizeRef(ref)] = check
		}
	}
	return nil
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "-")
}

func normalizeRef(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

func displayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "-", " "))
}
