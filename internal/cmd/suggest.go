package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prixlens/prixlens/internal/config"
	"github.com/prixlens/prixlens/internal/core"
	"github.com/prixlens/prixlens/internal/observability"
	"github.com/prixlens/prixlens/internal/output"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Look up price suggestions for a free-text query",
	Long:  "Query the suggestion service for ranked candidate records matching a free-text designation.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().String("library", "", "Price library to search (defaults to service.default_library)")
	suggestCmd.Flags().String("price-type", "", "Price column: Minimum, Moyen, Maximum (defaults to service.default_price_type)")
	suggestCmd.Flags().String("output", "table", "Output format: table, json, markdown")
	suggestCmd.Flags().Bool("no-journal", false, "Skip writing this search to the local journal")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return errors.New("query is required")
	}

	library, err := cmd.Flags().GetString("library")
	if err != nil {
		return err
	}
	priceType, err := cmd.Flags().GetString("price-type")
	if err != nil {
		return err
	}
	formatValue, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	noJournal, err := cmd.Flags().GetBool("no-journal")
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(formatValue)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	library = strings.TrimSpace(library)
	if library == "" {
		library = strings.TrimSpace(cfg.Service.DefaultLibrary)
	}
	// The service tolerates an empty library, but the result is never useful,
	// so catch it here before spending a round trip.
	if library == "" {
		return errors.New("library is required (use --library or set service.default_library)")
	}

	priceType = strings.TrimSpace(priceType)
	if priceType == "" {
		priceType = strings.TrimSpace(cfg.Service.DefaultPriceType)
	}
	if !core.KnownPriceType(priceType) {
		observability.CLILogger.Warn("Unrecognized price type, sending as-is",
			zap.String("price_type", priceType))
	}

	ctx := cmd.Context()
	startedAt := time.Now()

	db, err := openStore(ctx)
	if err != nil {
		// The journal is diagnostics, not a dependency; a broken local store
		// must not block a lookup.
		observability.CLILogger.Warn("Search journal unavailable", zap.Error(err))
		db = nil
	}
	if db != nil {
		defer db.Close() // nolint:errcheck // best-effort cleanup
	}
	if noJournal {
		db = nil
	}

	service := buildService(cfg, db)

	params := core.Params{Query: query, Library: library, PriceType: priceType}
	records, found := service.GetSuggestions(ctx, params)
	if !found {
		fmt.Println("No suggestions found.")
		return nil
	}

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatSuggestions(records)
	if err != nil {
		return err
	}
	fmt.Println(rendered)

	if format != output.FormatJSON {
		observability.CLILogger.Debug("Suggestion lookup complete",
			zap.Int("results", len(records)),
			zap.Duration("took", time.Since(startedAt)))
	}
	return nil
}
