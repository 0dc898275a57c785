package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"draftsmith/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the environment is ready for builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			fmt.Fprintln(cmd.OutOrStdout(), renderPreflightTable(results))

			if !preflight.AllPassed(results) {
				return fmt.Errorf("one or more checks failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ready to build")
			return nil
		},
	}
}

func renderPreflightTable(results []preflight.Result) string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{result.Name, statusLabel(result.Passed), result.Detail})
	}
	return renderTable(
		[]string{"Check", "Status", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	)
}
