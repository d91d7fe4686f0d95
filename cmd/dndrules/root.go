package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-rules/internal/config"
	"github.com/KirkDiggler/dnd-rules/internal/dice"
	"github.com/KirkDiggler/dnd-rules/internal/domain/rulebook"
)

// app carries what every command needs. src may be preset by tests.
type app struct {
	cfg  *config.Config
	seed int64
	reg  *rulebook.Registry
	src  dice.Source
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dndrules",
		Short: "Roll dice, checks and saves with 5E rules",
		Long: `dndrules rolls dice notation and resolves ability checks, skill checks and
saving throws for creatures described in YAML sheets.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setup()
		},
	}

	root.PersistentFlags().Int64Var(&a.seed, "seed", a.cfg.Dice.Seed, "seed for reproducible rolls (0 is random)")

	root.AddCommand(newRollCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newSaveCmd(a))
	root.AddCommand(newSkillsCmd(a))

	return root
}

func (a *app) setup() {
	a.reg = rulebook.SRD(rulebook.Namespace(a.cfg.Rules.Namespace))

	if a.src != nil {
		return
	}
	if a.seed != 0 {
		slog.Debug("Using seeded dice", "seed", a.seed)
		a.src = dice.NewSeededSource(a.seed)
		return
	}
	a.src = dice.NewToolkitSource(nil)
}

// keepFlags registers --advantage and --disadvantage on cmd
func keepFlags(cmd *cobra.Command, advantage, disadvantage *bool) {
	cmd.Flags().BoolVar(advantage, "advantage", false, "roll two d20 and keep the higher")
	cmd.Flags().BoolVar(disadvantage, "disadvantage", false, "roll two d20 and keep the lower")
}
