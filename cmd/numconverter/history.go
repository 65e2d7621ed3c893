package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/numconverter/internal/convert"
	"github.com/pdiddy/numconverter/internal/history"
	"github.com/pdiddy/numconverter/pkg/types"
)

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or clear recorded conversions",
		Long: `History lists conversions recorded with --history, newest first.
Entries live in a SQLite database under --history-dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("output")
			format, err := convert.ParseFormat(name)
			if err != nil {
				return err
			}

			store, err := history.NewStore(historyConfig(v))
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if clearAll, _ := cmd.Flags().GetBool("clear"); clearAll {
				n, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Cleared %d entries.\n", n)
				return nil
			}

			entries, err := store.Recent(cmd.Context(), 0)
			if err != nil {
				return err
			}

			switch format {
			case types.OutputJSON:
				if entries == nil {
					entries = []types.HistoryEntry{}
				}
				return convert.EncodeJSON(out, entries)
			case types.OutputYAML:
				return convert.EncodeYAML(out, entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No conversions recorded.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%d  %s  %s (base %d)\n", e.ID, e.CreatedAt.Local().Format(time.DateTime), e.Input, e.InputBase)
				for _, c := range e.Conversions {
					fmt.Fprintf(out, "    Base %02d: %s\n", c.Base, c.Formatted)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "maximum number of entries to list")
	cmd.Flags().Bool("clear", false, "delete all recorded conversions")
	cmd.Flags().StringP("output", "o", "text", "output format: text, json, or yaml")

	if err := v.BindPFlag("history-limit", cmd.Flags().Lookup("limit")); err != nil {
		panic(err)
	}

	return cmd
}
