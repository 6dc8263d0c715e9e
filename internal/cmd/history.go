package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prixlens/prixlens/internal/core/store"
	"github.com/prixlens/prixlens/internal/output"
)

var (
	historyOutput  string
	historyLimit   int
	historyLibrary string
	historyClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the local search journal",
	Long:  "Show recent searches recorded in the local journal, or clear them with --clear.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(historyOutput)
		if err != nil {
			return err
		}

		db, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup

		library := strings.TrimSpace(historyLibrary)

		if historyClear {
			removed, err := db.ClearHistory(cmd.Context(), library)
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d journal entries.\n", removed)
			return nil
		}

		entries, err := db.RecentSearches(cmd.Context(), store.HistoryQuery{
			Library: library,
			Limit:   historyLimit,
		})
		if err != nil {
			return err
		}

		if len(entries) == 0 && format == output.FormatTable {
			fmt.Println("Journal is empty.")
			return nil
		}

		formatter := output.NewFormatter(format)
		rendered, err := formatter.FormatHistory(entries)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyOutput, "output", "table", "Output format: table, json, markdown")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
	historyCmd.Flags().StringVar(&historyLibrary, "library", "", "Only show searches against this library")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Remove journal entries instead of listing them")
}
