package cmd

import (
	"github.com/energy-modelling-hub/water-value-database/internal/charts"
	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Generate the five analytical charts (PNG + PDF + captions)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return charts.Run(cmd.Context(), activeConfig())
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}
