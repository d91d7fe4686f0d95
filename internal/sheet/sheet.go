// Package sheet loads creature sheets from YAML
package sheet

import (
	stderrors "errors"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-rules/internal/dice"
	"github.com/KirkDiggler/dnd-rules/internal/domain/creature"
	"github.com/KirkDiggler/dnd-rules/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

// Sheet is the on-disk form of a creature. Abilities and proficiencies are
// keyed by anything the registry resolves: key, name, abbreviation or id.
type Sheet struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Level            int            `yaml:"level"`
	ProficiencyBonus int            `yaml:"proficiency_bonus"`
	Abilities        map[string]int `yaml:"abilities"`
	Proficiencies    Proficiencies  `yaml:"proficiencies"`
}

// Proficiencies maps a check or ability to a proficiency type name
// (full, half, expertise). A blank type means full.
type Proficiencies struct {
	Checks map[string]string `yaml:"checks"`
	Saves  map[string]string `yaml:"saves"`
}

// Load decodes a sheet, rejecting unknown fields
func Load(r io.Reader) (*Sheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Sheet
	if err := dec.Decode(&s); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.InvalidArgument("sheet is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse sheet")
	}
	return &s, nil
}

// LoadFile reads and decodes the sheet at path
func LoadFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "sheet not found")
		}
		return nil, errors.Wrapf(err, "failed to open sheet %s", path)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "sheet %s", path)
	}
	return s, nil
}

// Build resolves the sheet against reg into a creature rolling with src
func (s *Sheet) Build(reg *rulebook.Registry, src dice.Source) (*creature.Creature, error) {
	c, err := creature.New(&creature.Config{
		ID:               s.ID,
		Name:             s.Name,
		Level:            s.Level,
		ProficiencyBonus: s.ProficiencyBonus,
		Namespace:        reg.Namespace(),
		Source:           src,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sheet %s", s.Name)
	}

	for _, ref := range sortedKeys(s.Abilities) {
		ability, err := reg.Ability(ref)
		if err != nil {
			return nil, errors.Wrapf(err, "abilities.%s", ref)
		}
		if _, ok := c.Score(ability); ok {
			return nil, errors.AlreadyExistsf("abilities.%s: %s is listed twice", ref, ability.Name())
		}
		if err := c.SetScore(ability, s.Abilities[ref]); err != nil {
			return nil, errors.Wrapf(err, "abilities.%s", ref)
		}
	}

	ns := reg.Namespace()
	for _, ref := range sortedKeys(s.Proficiencies.Checks) {
		check, err := reg.Check(ref)
		if err != nil {
			return nil, errors.Wrapf(err, "proficiencies.checks.%s", ref)
		}
		if err := addProficiency(c, ns.Checks(check), s.Proficiencies.Checks[ref]); err != nil {
			return nil, errors.Wrapf(err, "proficiencies.checks.%s", ref)
		}
	}

	for _, ref := range sortedKeys(s.Proficiencies.Saves) {
		ability, err := reg.Ability(ref)
		if err != nil {
			return nil, errors.Wrapf(err, "proficiencies.saves.%s", ref)
		}
		if err := addProficiency(c, ns.Saves(ability), s.Proficiencies.Saves[ref]); err != nil {
			return nil, errors.Wrapf(err, "proficiencies.saves.%s", ref)
		}
	}

	return c, nil
}

func addProficiency(c *creature.Creature, prof rulebook.Proficiency, typeName string) error {
	if typeName == "" {
		return c.AddProficiency(prof, creature.Full)
	}

	t, ok := creature.ProficiencyTypeByName(typeName)
	if !ok {
		return errors.InvalidArgumentf("unknown proficiency type %q", typeName)
	}
	return c.AddProficiency(prof, t)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
