package cmd

import (
	"github.com/energy-modelling-hub/water-value-database/internal/tables"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Generate the six summary statistics tables (CSV + formatted text)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tables.Run(cmd.Context(), activeConfig())
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
