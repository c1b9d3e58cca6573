package main

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/cli"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the learner's simulation",
		Long: `Reset deletes the learner's business state, pending transaction, and
entire ledger, and starts the simulation over from the initial state.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			learner := learnerID()

			if !force {
				fmt.Fprintf(cmd.OutOrStdout(), "This will erase %q's business and ledger.\nAre you sure? [y/N]: ", learner)
				var response string
				if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil || (response != "y" && response != "Y") {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset canceled.")
					return nil
				}
			}

			simulator, _, cleanup, err := initSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := simulator.Reset(cmd.Context(), learner)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Simulation reset."))
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderState(state))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
