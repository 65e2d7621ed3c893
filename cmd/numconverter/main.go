// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the numconverter CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/numconverter/internal/convert"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the numconverter command tree. Each tree owns its viper
// instance so flags, env, and config files resolve independently.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "numconverter <number> [bases...]",
		Short: "Convert an unsigned integer between bases 2 through 32",
		Long: `numconverter converts one unsigned integer of up to 128 bits into one or
more target bases. The number is read in the input base (--base, default 10)
and each target base is written in base 10. Without target bases the number
is shown in bases 2, 8, 10, and 16.

Digits above 9 use the letters A through V. Output is grouped with a
separator every --sep-length digits, counted from the right.

Settings can also come from numconverter.yaml (in . or
~/.config/numconverter/) or NUMCONVERTER_* environment variables.`,
		Example: `  numconverter 187 2 16
  numconverter --base 16 ff
  numconverter --pad 16 --sep-char ' ' 42 2`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./numconverter.yaml or ~/.config/numconverter/numconverter.yaml)")
	pf.String("history-dir", "", "directory for the history database (default: ~/.config/numconverter)")
	pf.CountP("verbosity", "v", "verbosity (repeat for more)")

	f := rootCmd.Flags()
	f.IntP("base", "b", 10, "input base (2-32)")
	f.IntP("pad", "p", 0, "left-pad each result with zeros to this many digits")
	f.IntP("sep-length", "s", 4, "put a separator every N digits (0 disables)")
	f.String("sep-char", "_", "separator character")
	f.Bool("no-sep", false, "do not insert separators")
	f.Bool("silent", false, "do not print output")
	f.Bool("bare", false, `omit the "Base NN: " label`)
	f.StringP("output", "o", "text", "output format: text, json, or yaml")
	f.Bool("history", false, "record this conversion in the history database")

	bindFlags(v, pf, "history-dir", "verbosity")
	bindFlags(v, f, "base", "pad", "sep-length", "sep-char", "no-sep", "silent", "bare", "output", "history")

	rootCmd.AddCommand(newVersionCmd(), newHistoryCmd(v))
	return rootCmd
}

// bindFlags binds each named flag to the viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	verbosity, _ := cmd.Flags().GetCount("verbosity")
	level := slog.LevelWarn
	if verbosity > 0 {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("numconverter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "numconverter"))
		}
	}

	v.SetEnvPrefix("NUMCONVERTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return &convert.Error{Kind: convert.KindConfig, Value: cfgFile, Err: fmt.Errorf("reading config: %w", err)}
	}
	slog.Info("using config file", "path", v.ConfigFileUsed())
	return nil
}

// execute runs cmd, reports any error on its stderr, and returns the process
// exit status.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err)

	var cerr *convert.Error
	if errors.As(err, &cerr) {
		return cerr.ExitCode()
	}
	return 1
}

func main() {
	os.Exit(execute(newRootCmd()))
}
