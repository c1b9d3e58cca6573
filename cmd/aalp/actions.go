package main

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/cli"
	"github.com/drdebit/aalp-sub001/internal/sim"
	"github.com/spf13/cobra"
)

func actionsCmd() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List simulation actions and their availability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			simulator, c, cleanup, err := initSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := simulator.State(cmd.Context(), learnerID())
			if err != nil {
				return err
			}

			available := sim.AvailableActions(c, level, state)
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderState(state))
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderActions(available))
			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "difficulty level (gates available actions)")

	return cmd
}
