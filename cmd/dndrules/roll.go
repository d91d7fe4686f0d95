package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-rules/internal/dice"
	"github.com/KirkDiggler/dnd-rules/internal/errors"
)

func newRollCmd(a *app) *cobra.Command {
	var advantage, disadvantage bool

	cmd := &cobra.Command{
		Use:   "roll <notation>",
		Short: "Roll dice notation such as 2d6+3",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := dice.Parse(args[0])
			if err != nil {
				return err
			}

			set, err := rollExpression(a.src, expr, advantage, disadvantage)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s = %d\n", expr, set, resolve(set))
			return nil
		},
	}

	keepFlags(cmd, &advantage, &disadvantage)
	cmd.MarkFlagsMutuallyExclusive("advantage", "disadvantage")

	return cmd
}

// rollExpression rolls expr. Advantage and disadvantage only make sense for
// a lone d20, since keeping one d20 hides every other die in the set.
func rollExpression(src dice.Source, expr *dice.Expression, advantage, disadvantage bool) (*dice.RollSet, error) {
	if !advantage && !disadvantage {
		return expr.Roll(src), nil
	}

	if len(expr.Terms) != 1 || expr.Terms[0].Die != dice.D20 || expr.Terms[0].Count != 1 {
		return nil, errors.InvalidArgumentf("advantage needs a single d20, got %s", expr)
	}

	keep := dice.Advantage(dice.D20)
	if disadvantage {
		keep = dice.Disadvantage(dice.D20)
	}

	set := dice.D20.RollWith(src, 2).Then(keep)
	switch {
	case expr.Bonus > 0:
		set.Then(dice.Add(expr.Bonus))
	case expr.Bonus < 0:
		set.Then(dice.Sub(-expr.Bonus))
	}
	return set, nil
}

// resolve applies the set, falling back to the visible sum
func resolve(set *dice.RollSet) int {
	total, err := set.Apply()
	if err != nil {
		return set.Total()
	}
	return total
}
