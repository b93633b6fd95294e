// Command esparse parses JavaScript files into an ESTree AST and prints it.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tdewolff/esparse/js"
)

var version = "dev"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		report(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "esparse [files...]",
		Short:         "Parse JavaScript into an ESTree AST",
		Long:          "Parse JavaScript scripts or modules into an ESTree AST, reporting the first syntax or early error of each file. Reads stdin when no files are given.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v); err != nil {
				return err
			}
			cfg, err := newConfig(v, cmd)
			if err != nil {
				return err
			}
			setupLogger(cmd.ErrOrStderr(), cfg.logLevel)
			return cfg.run(args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (default is .esparse.yaml)")
	flags.BoolP("module", "m", false, "parse with the module goal")
	flags.Bool("loc", false, "add start, end and loc to every node")
	flags.Bool("raw", false, "keep the raw source text of literals")
	flags.Bool("directives", false, "mark directive prologue statements")
	flags.Bool("global-return", false, "allow return outside of functions")
	flags.Bool("disable-web-compat", false, "disable the web compatibility allowances of sloppy mode")
	flags.Bool("implied-strict", false, "parse as if the source started with \"use strict\"")
	flags.Int("max-depth", js.DefaultMaxDepth, "maximum nesting depth")
	flags.StringP("format", "f", "json", "output format: json, go or none")
	flags.IntP("repeat", "n", 1, "parse every file N times and print timing statistics")
	flags.Bool("stats", false, "print the number of nodes per type")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	// flag errors only occur for duplicate names
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("ESPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

// loadConfig reads the config file given by --config, or .esparse.yaml in the working directory if it exists.
func loadConfig(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
		return nil
	}

	v.SetConfigName(".esparse")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "read config")
		}
	}
	return nil
}
