package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/energy-modelling-hub/water-value-database/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper in loadConfig)
	cfgFile        string
	flagDatabase   string
	flagTablesDir  string
	flagFiguresDir string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "wvdb",
	Short: "Water Value Database reporting pipeline",
	Long: `wvdb reads the clean SQLite database of the water value literature
review and regenerates all publication artifacts: summary tables,
analytical charts, and the data completeness heatmap.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./wvdb.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "path to the SQLite database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTablesDir, "tables-dir", "", "output directory for table CSVs (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagFiguresDir, "figures-dir", "", "output directory for figures and reports (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so commands can still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("database") && flagDatabase != "" {
		cfg.DatabasePath = flagDatabase
	}
	if f.Changed("tables-dir") && flagTablesDir != "" {
		cfg.TablesDir = flagTablesDir
	}
	if f.Changed("figures-dir") && flagFiguresDir != "" {
		cfg.FiguresDir = flagFiguresDir
	}
}

// activeConfig returns the loaded configuration, falling back to the
// defaults when initialization never ran (e.g. in tests).
func activeConfig() *cfgpkg.Global {
	if cfg == nil {
		cfg = cfgpkg.Default()
	}
	return cfg
}
