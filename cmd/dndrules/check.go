package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-rules/internal/dice"
	"github.com/KirkDiggler/dnd-rules/internal/domain/creature"
	"github.com/KirkDiggler/dnd-rules/internal/sheet"
)

func newCheckCmd(a *app) *cobra.Command {
	var advantage, disadvantage bool

	cmd := &cobra.Command{
		Use:   "check <sheet.yaml> <ability|skill>",
		Short: "Roll an ability or skill check for a creature sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCreature(args[0])
			if err != nil {
				return err
			}

			metric, err := a.reg.Check(args[1])
			if err != nil {
				return err
			}

			bonus, err := c.CheckBonus(metric)
			if err != nil {
				return err
			}
			set, err := c.Check(metric, rollOptions(advantage, disadvantage)...)
			if err != nil {
				return err
			}

			report(cmd.OutOrStdout(), fmt.Sprintf("%s %s check", c.Name(), metric.Name()), bonus, set)
			return nil
		},
	}

	keepFlags(cmd, &advantage, &disadvantage)
	return cmd
}

func newSaveCmd(a *app) *cobra.Command {
	var advantage, disadvantage bool

	cmd := &cobra.Command{
		Use:   "save <sheet.yaml> <ability>",
		Short: "Roll a saving throw for a creature sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCreature(args[0])
			if err != nil {
				return err
			}

			ability, err := a.reg.Ability(args[1])
			if err != nil {
				return err
			}

			bonus, err := c.SaveBonus(ability)
			if err != nil {
				return err
			}
			set, err := c.Save(ability, rollOptions(advantage, disadvantage)...)
			if err != nil {
				return err
			}

			report(cmd.OutOrStdout(), fmt.Sprintf("%s %s save", c.Name(), ability.Name()), bonus, set)
			return nil
		},
	}

	keepFlags(cmd, &advantage, &disadvantage)
	return cmd
}

func (a *app) loadCreature(path string) (*creature.Creature, error) {
	s, err := sheet.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if s.ProficiencyBonus == 0 {
		s.ProficiencyBonus = a.cfg.Rules.ProficiencyBonus
	}
	return s.Build(a.reg, a.src)
}

func rollOptions(advantage, disadvantage bool) []creature.RollOption {
	var opts []creature.RollOption
	if advantage {
		opts = append(opts, creature.WithAdvantage())
	}
	if disadvantage {
		opts = append(opts, creature.WithDisadvantage())
	}
	return opts
}

func report(w io.Writer, title string, bonus *creature.Breakdown, set *dice.RollSet) {
	total := resolve(set)

	note := ""
	switch {
	case set.Critical():
		note = " (natural 20)"
	case set.Fumble():
		note = " (natural 1)"
	}

	fmt.Fprintf(w, "%s: %d%s\n", title, total, note)
	fmt.Fprintf(w, "  rolls: %s\n", set)
	fmt.Fprintf(w, "  bonus: %s\n", bonus)
}
