package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "CERIALIZE"

// Config holds the settings shared by the commands. Flags win over
// environment variables, which win over the config file.
type Config struct {
	From    string `mapstructure:"from"`
	To      string `mapstructure:"to"`
	Keys    string `mapstructure:"keys"`
	Indent  int    `mapstructure:"indent"`
	Output  string `mapstructure:"output"`
	Verbose bool   `mapstructure:"verbose"`

	Packages []string `mapstructure:"package"`
}

// initConfig reads the config file, if any, and binds the flags of cmd.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetDefault("to", "json")
	v.SetDefault("keys", "none")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".cerialize")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v.BindPFlags(cmd.Flags())
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}
