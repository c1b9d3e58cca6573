package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/classify"
	"github.com/drdebit/aalp-sub001/internal/cli"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var (
		answer string
		jsonIn string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "classify [assertions]",
		Short: "Classify an assertion set against the pattern catalog",
		Long: `Classify scores an assertion set in one shot and prints the result.

Assertions come either as a drill-style string argument:

  aalp classify "provides unit=monetary-unit, receives unit=physical-unit"

or as JSON on --json-input. With --answer the result is graded against
that pattern and includes hints; without it the engine reports whichever
patterns match exactly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := inputAssertions(args, jsonIn)
			if err != nil {
				return err
			}

			c, err := catalog.Default()
			if err != nil {
				return err
			}

			result, err := classify.NewEngine(c).Classify(set, answer)
			if err != nil {
				return err
			}

			if asJSON {
				out, jerr := json.MarshalIndent(result, "", "  ")
				if jerr != nil {
					return jerr
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&answer, "answer", "a", "", "grade against this pattern key")
	cmd.Flags().StringVar(&jsonIn, "json-input", "", "assertion set as JSON instead of a string argument")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")

	return cmd
}

func inputAssertions(args []string, jsonIn string) (model.AssertionSet, error) {
	if jsonIn != "" {
		var set model.AssertionSet
		if err := json.Unmarshal([]byte(jsonIn), &set); err != nil {
			return nil, fmt.Errorf("failed to parse --json-input: %w", err)
		}
		return set, nil
	}
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return nil, fmt.Errorf("provide assertions as an argument or via --json-input")
	}
	return cli.ParseAssertions(args[0])
}

func printResult(cmd *cobra.Command, result model.ClassificationResult) {
	out := cmd.OutOrStdout()

	switch {
	case result.Correct():
		fmt.Fprintln(out, cli.FormatSuccess(result.Feedback.Message))
	case result.Feedback.Status == model.StatusIndeterminate:
		fmt.Fprintln(out, cli.FormatWarning(result.Feedback.Message))
	default:
		fmt.Fprintln(out, cli.FormatError(result.Feedback.Message))
	}

	if len(result.ExactMatches) > 0 {
		fmt.Fprintf(out, "Matches: %s\n", strings.Join(result.ExactMatches, ", "))
	}
	if result.Nearest != nil {
		fmt.Fprintf(out, "Nearest pattern: %s (distance %.1f)\n", result.Nearest.Key, result.Nearest.Distance)
	}
	for _, hint := range result.Feedback.Hints {
		fmt.Fprintf(out, "  %s\n", hint)
	}
	for _, linkage := range result.Feedback.Linkages {
		fmt.Fprintf(out, "  %s → %s (%s)\n", linkage.Assertion, linkage.Account, linkage.Side)
	}
	for _, leg := range result.JournalEntry {
		fmt.Fprintf(out, "  Dr  %s\n      Cr  %s\n", leg.Debit, leg.Credit)
	}
}
