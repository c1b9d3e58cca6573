package main

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/cli"
	"github.com/drdebit/aalp-sub001/internal/problem"
	"github.com/spf13/cobra"
)

func drillCmd() *cobra.Command {
	var (
		level int
		count int
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Practice classifying transactions",
		Long: `Drill generates practice problems and scores your answers interactively.

Modes:
  forward    read a narrative, supply the assertions that describe it
  reverse    read a narrative and its journal entry, name the pattern
  construct  read a narrative and its assertions, build the journal entry`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			c, err := catalog.Default()
			if err != nil {
				return err
			}

			prompter := cli.NewDrillPrompter(c, cmd.InOrStdin(), cmd.OutOrStdout(), nil)
			return prompter.Run(cmd.Context(), level, count, m)
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "difficulty level (gates assertions, patterns, and accounts)")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of problems")
	cmd.Flags().StringVarP(&mode, "mode", "m", "forward", "problem mode (forward, reverse, construct)")

	return cmd
}

func parseMode(mode string) (problem.Mode, error) {
	switch problem.Mode(mode) {
	case problem.ModeForward, problem.ModeReverse, problem.ModeConstruct:
		return problem.Mode(mode), nil
	default:
		return "", fmt.Errorf("invalid mode: %q (want forward, reverse, or construct)", mode)
	}
}
