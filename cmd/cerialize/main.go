// Package main provides the cerialize command.
//
// cerialize converts data trees between JSON, YAML and CBOR, renaming
// object keys on the way, and writes and checks schema files:
//
//	cerialize convert --from yaml --to json --keys camel config.yaml
//	cerialize scaffold ./models > types.yaml
//	cerialize check --package ./models types.yaml
//
// Flags can also be set in .cerialize.yaml or through CERIALIZE_*
// environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version information, set at build time.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "cerialize",
		Short: "Convert data trees and check schema files",
		Long: `cerialize moves data between JSON, YAML and CBOR, optionally renaming
object keys (camel, snake, underscore or dash case), and scaffolds and
validates the YAML schema files that declare serialized members.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default is ./.cerialize.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")

	root.AddCommand(newConvertCmd(v))
	root.AddCommand(newCheckCmd(v))
	root.AddCommand(newScaffoldCmd(v))
	root.AddCommand(newVersionCmd())

	return root
}
