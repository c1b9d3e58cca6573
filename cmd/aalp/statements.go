package main

import (
	"encoding/json"
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/cli"
	"github.com/spf13/cobra"
)

func statementsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Derive financial statements from the learner's ledger",
		Long: `Statements folds the full ledger into a balance sheet and income
statement. Nothing is stored: every run derives fresh statements, so
they always reflect exactly what has been journalized.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			simulator, _, cleanup, err := initSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			statements, err := simulator.Statements(cmd.Context(), learnerID())
			if err != nil {
				return err
			}

			if asJSON {
				out, jerr := json.MarshalIndent(statements, "", "  ")
				if jerr != nil {
					return jerr
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderStatements(statements))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit statements as JSON")

	return cmd
}
