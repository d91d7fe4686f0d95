package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-rules/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

func TestNamespaceKey(t *testing.T) {
	ns := rulebook.NamespaceSRD

	assert.Equal(t, "5E::SKILL::SLEIGHT_OF_HAND", ns.Key(rulebook.KindSkill, "sleight-of-hand"))
	assert.Equal(t, "5E::ABILITY::STRENGTH", ns.Key(rulebook.KindAbility, "strength"))
	assert.Equal(t, "5E::PROFICIENCY::CHECKS", ns.ChecksCategory())
	assert.Equal(t, "HOMEBREW::PROFICIENCY::SAVES", rulebook.Namespace("HOMEBREW").SavesCategory())
}

func TestSRDContents(t *testing.T) {
	reg := rulebook.SRD(rulebook.NamespaceSRD)

	abilities := reg.Abilities()
	require.Len(t, abilities, 6)
	assert.Equal(t, "Strength", abilities[0].Name())
	assert.Equal(t, "Cha", abilities[5].Short())

	skills := reg.Skills()
	require.Len(t, skills, 18)
	assert.Equal(t, "Athletics", skills[0].Name())

	dex, err := reg.Ability("dexterity")
	require.NoError(t, err)

	dexSkills, err := reg.SkillsFor(dex)
	require.NoError(t, err)
	require.Len(t, dexSkills, 3)
	assert.Equal(t, "Sleight Of Hand", dexSkills[1].Name())
	assert.Equal(t, "5E::SKILL::SLEIGHT_OF_HAND", dexSkills[1].ID())
	assert.Same(t, dex, dexSkills[1].Base())
}

func TestLookupRefs(t *testing.T) {
	reg := rulebook.SRD(rulebook.NamespaceSRD)

	tests := []struct {
		name   string
		ref    string
		wantID string
	}{
		{name: "by key", ref: "stealth", wantID: "5E::SKILL::STEALTH"},
		{name: "by display name", ref: "Animal Handling", wantID: "5E::SKILL::ANIMAL_HANDLING"},
		{name: "by hyphenated key", ref: "animal-handling", wantID: "5E::SKILL::ANIMAL_HANDLING"},
		{name: "by id", ref: "5E::ABILITY::WISDOM", wantID: "5E::ABILITY::WISDOM"},
		{name: "by abbreviation", ref: "DEX", wantID: "5E::ABILITY::DEXTERITY"},
		{name: "padded", ref: "  persuasion ", wantID: "5E::SKILL::PERSUASION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := reg.Check(tt.ref)

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, check.ID())
		})
	}
}

func TestAbilityIsItsOwnBase(t *testing.T) {
	reg := rulebook.SRD(rulebook.NamespaceSRD)

	str, err := reg.Ability("str")
	require.NoError(t, err)
	assert.Same(t, str, str.Base())

	athletics, err := reg.Skill("athletics")
	require.NoError(t, err)
	assert.Same(t, str, athletics.Base())
}

func TestLookupErrors(t *testing.T) {
	reg := rulebook.SRD(rulebook.NamespaceSRD)

	_, err := reg.Check("lockpicking")
	assert.True(t, errors.IsNotFound(err))

	_, err = reg.Ability("stealth")
	assert.True(t, errors.IsNotFound(err))

	_, err = reg.Skill("wisdom")
	assert.True(t, errors.IsNotFound(err))

	_, err = reg.SkillsFor(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRegisterErrors(t *testing.T) {
	reg := rulebook.NewRegistry("TEST")

	_, err := reg.RegisterAbility("might", "Mgt")
	require.NoError(t, err)

	_, err = reg.RegisterAbility("might", "Mig")
	assert.True(t, errors.IsAlreadyExists(err))

	_, err = reg.RegisterSkill("mgt", "might")
	assert.True(t, errors.IsAlreadyExists(err), "abbreviation is already taken")

	_, err = reg.RegisterSkill("brawling", "agility")
	assert.True(t, errors.IsNotFound(err))

	_, err = reg.RegisterAbility(" ", "")
	assert.True(t, errors.IsInvalidArgument(err))

	skill, err := reg.RegisterSkill("Arm Wrestling", "Mgt")
	require.NoError(t, err)
	assert.Equal(t, "arm-wrestling", skill.Key())
	assert.Equal(t, "Arm Wrestling", skill.Name())
	assert.Equal(t, "TEST::SKILL::ARM_WRESTLING", skill.ID())
}

func TestProficiencyHelpers(t *testing.T) {
	reg := rulebook.SRD(rulebook.NamespaceSRD)
	stealth, err := reg.Skill("stealth")
	require.NoError(t, err)
	dex, err := reg.Ability("dex")
	require.NoError(t, err)

	checks := reg.Namespace().Checks(stealth)
	saves := reg.Namespace().Saves(dex)

	assert.Equal(t, "5E::PROFICIENCY::CHECKS", checks.Category)
	assert.Equal(t, "5E::PROFICIENCY::CHECKS(5E::SKILL::STEALTH)", checks.String())
	assert.Equal(t, "5E::PROFICIENCY::SAVES(5E::ABILITY::DEXTERITY)", saves.String())
}
