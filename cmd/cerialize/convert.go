package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/weichx/cerialize"
	"github.com/weichx/cerialize/codec"
	"github.com/weichx/cerialize/strcase"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a data file between json, yaml and cbor",
		Long: `Decode the input, deep-copy it with keys renamed by --keys and encode it
in the --to format. Without a file, or with "-", input is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			return runConvert(cmd, cfg, args)
		},
	}

	f := cmd.Flags()
	f.String("from", "", "input format: json, yaml or cbor (default from the file extension, else json)")
	f.String("to", "json", "output format: json, yaml or cbor")
	f.String("keys", "none", "key transform: camel, snake, underscore, dash or none")
	f.Int("indent", 0, "spaces per indentation level (0 writes compact json)")
	f.StringP("output", "o", "", "output file (default stdout)")

	return cmd
}

func runConvert(cmd *cobra.Command, cfg *Config, args []string) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}

	from, err := inputFormat(cfg.From, path)
	if err != nil {
		return err
	}

	to, err := codec.ParseFormat(cfg.To)
	if err != nil {
		return err
	}

	rename, ok := strcase.Lookup(cfg.Keys)
	if !ok {
		return fmt.Errorf("unknown key transform %q", cfg.Keys)
	}

	input, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	tree, err := codec.Decode(from, input)
	if err != nil {
		return err
	}

	m := cerialize.NewMapper(
		cerialize.WithLogger(logger),
		cerialize.WithSerializeKeyTransform(rename),
	)

	out, err := codec.Encode(to, m.SerializeJSON(tree, true), codec.Options{Indent: cfg.Indent})
	if err != nil {
		return err
	}

	if to != codec.CBOR && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	logger.Debug("converted",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("keys", cfg.Keys),
		zap.Int("bytes", len(out)),
	)

	if cfg.Output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	if err := os.WriteFile(cfg.Output, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	return nil
}

func inputFormat(name, path string) (codec.Format, error) {
	if name != "" {
		return codec.ParseFormat(name)
	}

	if path != "" {
		if f, err := codec.FormatOf(path); err == nil {
			return f, nil
		}
	}

	return codec.JSON, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}
