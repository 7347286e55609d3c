package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/energy-modelling-hub/water-value-database/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "wvdb.yaml"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or initialize wvdb configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := cfgpkg.YAML(activeConfig())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default wvdb.yaml in the working directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			return fmt.Errorf("config file already exists: %s", defaultConfigFile)
		}
		if err := cfgpkg.Save(cfgpkg.Default(), defaultConfigFile); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", defaultConfigFile)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
