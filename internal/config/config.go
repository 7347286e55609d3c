package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DatabasePath   string `mapstructure:"database_path" yaml:"database_path"`
	TablesDir      string `mapstructure:"tables_dir" yaml:"tables_dir"`
	FiguresDir     string `mapstructure:"figures_dir" yaml:"figures_dir"`
	StepTimeoutSec int    `mapstructure:"step_timeout_sec" yaml:"step_timeout_sec"`
	FigureDPI      int    `mapstructure:"figure_dpi" yaml:"figure_dpi"`
}

// Default returns the built-in configuration.
func Default() *Global {
	return &Global{
		DatabasePath:   "data/water_value_database.db",
		TablesDir:      "tables",
		FiguresDir:     "figures",
		StepTimeoutSec: 300,
		FigureDPI:      300,
	}
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WVDB")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("database_path", def.DatabasePath)
	v.SetDefault("tables_dir", def.TablesDir)
	v.SetDefault("figures_dir", def.FiguresDir)
	v.SetDefault("step_timeout_sec", def.StepTimeoutSec)
	v.SetDefault("figure_dpi", def.FigureDPI)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("wvdb")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to the given path as YAML.
func Save(c *Global, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// YAML renders the configuration as YAML for display.
func YAML(c *Global) (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return string(b), nil
}
