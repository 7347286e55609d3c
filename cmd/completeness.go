package cmd

import (
	"github.com/energy-modelling-hub/water-value-database/internal/completeness"
	"github.com/spf13/cobra"
)

var completenessCmd = &cobra.Command{
	Use:   "completeness",
	Short: "Generate the data completeness heatmap (PNG + PDF + caption)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return completeness.Run(cmd.Context(), activeConfig())
	},
}

func init() {
	rootCmd.AddCommand(completenessCmd)
}
