package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSkillsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List abilities and the skills they back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, ability := range a.reg.Abilities() {
				skills, err := a.reg.SkillsFor(ability)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s (%s)\n", ability.Name(), ability.Short())
				for _, skill := range skills {
					fmt.Fprintf(out, "  %s\n", skill.Name())
				}
			}
			return nil
		},
	}
}
