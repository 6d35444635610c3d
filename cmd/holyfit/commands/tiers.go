package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/holyfit/holyfit-api/pkg/billing"
	"github.com/spf13/cobra"
)

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List subscription tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, t := range billing.Tiers() {
				marker := ""
				if t.Recommended {
					marker = " *"
				}
				fmt.Fprintf(w, "%-6s %-4s %8s%s\n", t.ID, t.Name, t.Price, marker)
				fmt.Fprintf(w, "       %s\n", strings.Join(t.Features, ", "))
			}
			return nil
		},
	}
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the configured content model is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if client == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no remote model to probe\n", provider.Backend())
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			if err := client.Ping(ctx); err != nil {
				return fmt.Errorf("%s unreachable: %w", client.Name(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", client.Name())
			return nil
		},
	}
}
