package main

import (
	"github.com/drdebit/aalp-sub001/internal/cli"
	"github.com/spf13/cobra"
)

func simulateCmd() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the print-shop business simulation",
		Long: `Simulate runs an interactive business: pick actions (buy inventory,
print shirts, sell them, pay the rent), classify the transaction each
action generates, and watch the ledger and statements grow.

An action only takes effect once you classify its transaction correctly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			simulator, c, cleanup, err := initSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			session := cli.NewSession(c, simulator, learnerID(), level, cmd.InOrStdin(), cmd.OutOrStdout())
			return session.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "difficulty level (gates available actions)")

	return cmd
}
