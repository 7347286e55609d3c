package cmd

import (
	"github.com/energy-modelling-hub/water-value-database/internal/pipeline"
	"github.com/spf13/cobra"
)

var flagStep int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis pipeline (tables, completeness, charts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.New(activeConfig()).Run(cmd.Context(), flagStep)
	},
}

func init() {
	runCmd.Flags().IntVar(&flagStep, "step", 0, "run only this step number (0 = all steps)")
	rootCmd.AddCommand(runCmd)
}
