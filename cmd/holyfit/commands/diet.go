package commands

import (
	"fmt"
	"os"

	"github.com/holyfit/holyfit-api/pkg/export"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

func dietCmd() *cobra.Command {
	var (
		goal     string
		consumed int
		out      string
	)

	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Print a diet plan for a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := provider.DietPlan(cmd.Context(), goal, consumed, provider.DefaultLanguage())
			if result.Degraded {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: showing the fallback plan (%s)\n", result.Reason)
			}

			if out != "" {
				f, err := export.DietPlanWorkbook(result.Plan)
				if err != nil {
					return err
				}
				return saveWorkbook(cmd, f, out)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "Maintenance", "Weight Loss, Muscle Gain, Maintenance, Keto or Vegan")
	cmd.Flags().IntVarP(&consumed, "consumed", "c", 0, "calories eaten so far today")
	cmd.Flags().StringVarP(&out, "export", "o", "", "write an .xlsx workbook to this path instead of printing JSON")
	return cmd
}

func saveWorkbook(cmd *cobra.Command, f *excelize.File, path string) error {
	defer f.Close()

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
