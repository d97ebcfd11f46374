package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/weichx/cerialize/internal/analyze"
	"github.com/weichx/cerialize/schema"
)

func newScaffoldCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold <package>...",
		Short: "Write a schema file for the struct types of Go packages",
		Long: `Load the given packages from source and write a schema declaring every
exported field of every exported struct type, with the shapes struct tags
would infer. Keys come from cerialize or json tags. Edit the result and
load it with schema.LoadFile and schema.Apply.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			graph, err := analyze.NewAnalyzer(analyze.WithLogger(logger)).LoadPackages(args...)
			if err != nil {
				return err
			}

			f := graph.Scaffold()

			logger.Debug("schema scaffolded", zap.Strings("packages", args), zap.Int("types", len(f.Types)))

			if cfg.Output != "" {
				return schema.WriteFile(f, cfg.Output)
			}

			data, err := schema.Marshal(f)
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	return cmd
}
