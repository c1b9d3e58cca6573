package main

import (
	"encoding/json"
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/problem"
	"github.com/spf13/cobra"
)

func problemCmd() *cobra.Command {
	var (
		level          int
		mode           string
		showAssertions bool
	)

	cmd := &cobra.Command{
		Use:   "problem",
		Short: "Generate one practice problem as JSON",
		Long: `Problem emits a single generated problem to stdout as JSON, for
front ends that drive the engine themselves rather than using the
interactive drill.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			c, err := catalog.Default()
			if err != nil {
				return err
			}

			p, err := problem.NewGenerator(c, nil).Generate(level, m, showAssertions)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "difficulty level")
	cmd.Flags().StringVarP(&mode, "mode", "m", "forward", "problem mode (forward, reverse, construct)")
	cmd.Flags().BoolVar(&showAssertions, "show-assertions", false, "include the correct assertion set")

	return cmd
}
