package main

import (
	"encoding/json"
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/cli"
	"github.com/spf13/cobra"
)

func ledgerCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the learner's general ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			simulator, _, cleanup, err := initSimulator(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := simulator.Ledger(cmd.Context(), learnerID())
			if err != nil {
				return err
			}

			if asJSON {
				out, jerr := json.MarshalIndent(entries, "", "  ")
				if jerr != nil {
					return jerr
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderLedger(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit entries as JSON")

	return cmd
}
