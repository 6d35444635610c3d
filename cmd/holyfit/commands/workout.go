package commands

import (
	"fmt"

	"github.com/holyfit/holyfit-api/pkg/export"
	"github.com/spf13/cobra"
)

func workoutCmd() *cobra.Command {
	var (
		difficulty string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Print a workout routine for a difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := provider.Workout(cmd.Context(), difficulty, provider.DefaultLanguage())
			if result.Degraded {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: showing the fallback routine (%s)\n", result.Reason)
			}

			if out != "" {
				f, err := export.WorkoutWorkbook(result.Routine)
				if err != nil {
					return err
				}
				return saveWorkbook(cmd, f, out)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "Intermediate", "Beginner, Intermediate or Advanced")
	cmd.Flags().StringVarP(&out, "export", "o", "", "write an .xlsx workbook to this path instead of printing JSON")
	return cmd
}
