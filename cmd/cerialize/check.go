package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/weichx/cerialize/internal/analyze"
	"github.com/weichx/cerialize/schema"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <schema.yaml>",
		Short: "Validate a schema file",
		Long: `Parse a schema file and report structural problems: missing names,
duplicate declarations, unknown modes or shapes, shapes missing their of or
using, and inheritance cycles.

With --package, type, member and of names are also resolved against the
struct types of the given Go packages, loaded from source. Converter names
only exist in the program that registers them and are never resolved.`,
		Args: cobra.ExactArgs(1),
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

			f, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := schema.Validate(f, nil)

			if len(cfg.Packages) > 0 {
				graph, err := analyze.NewAnalyzer(analyze.WithLogger(logger)).LoadPackages(cfg.Packages...)
				if err != nil {
					return err
				}

				diags.Merge(*analyze.Check(f, graph))
			}

			out := cmd.OutOrStdout()

			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			logger.Debug("schema checked",
				zap.String("path", args[0]),
				zap.Int("types", len(f.Types)),
				zap.Int("errors", len(diags.Errors)),
				zap.Int("warnings", len(diags.Warnings)),
			)

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(diags.Errors))
			}

			fmt.Fprintf(out, "%s: ok (%d types)\n", args[0], len(f.Types))

			return nil
		},
	}

	cmd.Flags().StringSliceP("package", "p", nil, "Go package patterns to resolve names against")

	return cmd
}
