package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/numconverter/internal/convert"
	"github.com/pdiddy/numconverter/internal/history"
	"github.com/pdiddy/numconverter/pkg/types"
)

func runConvert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := loadConfig(v, args)
	if err != nil {
		return err
	}

	if cfg.Verbosity > 0 {
		if err := convert.EncodeYAML(cmd.ErrOrStderr(), cfg); err != nil {
			return err
		}
	}

	report, err := convert.Run(cfg.Convert)
	if err != nil {
		return err
	}

	if err := convert.Write(cmd.OutOrStdout(), report, cfg.Output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !cfg.History.Enabled {
		return nil
	}
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(cmd.Context(), report)
	if err != nil {
		return fmt.Errorf("recording history: %w", err)
	}
	slog.Debug("recorded history", "id", id, "dir", cfg.History.Dir)
	return nil
}

// loadConfig resolves flags, environment, and config file into a Config.
// args[0] is the number; any remaining args are target bases, falling back
// to the "bases" config key.
func loadConfig(v *viper.Viper, args []string) (types.Config, error) {
	format, err := convert.ParseFormat(v.GetString("output"))
	if err != nil {
		return types.Config{}, err
	}

	targets := args[1:]
	if len(targets) == 0 {
		targets = v.GetStringSlice("bases")
	}

	return types.Config{
		Convert: types.ConvertConfig{
			Number:    args[0],
			InputBase: v.GetInt("base"),
			Targets:   targets,
			Pad:       v.GetInt("pad"),
			Separator: types.SeparatorConfig{
				Length:   v.GetInt("sep-length"),
				Char:     v.GetString("sep-char"),
				Disabled: v.GetBool("no-sep"),
			},
		},
		Output: types.OutputConfig{
			Format: format,
			Silent: v.GetBool("silent"),
			Bare:   v.GetBool("bare"),
		},
		History:   historyConfig(v),
		Verbosity: v.GetInt("verbosity"),
	}, nil
}

func historyConfig(v *viper.Viper) types.HistoryConfig {
	dir := v.GetString("history-dir")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".config", "numconverter")
		}
	}
	return types.HistoryConfig{
		Enabled:    v.GetBool("history"),
		Dir:        dir,
		MaxResults: v.GetInt("history-limit"),
	}
}
