package output

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/prixlens/prixlens/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatSuggestions renders a suggestion list as a table, preserving source
// order. Empty field values render as-is; the scanner already guarantees
// they are empty strings rather than placeholders.
func (f *TableFormatter) FormatSuggestions(records []core.Suggestion) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	// Keep the footer text as written; StyleRounded uppercases it by default.
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Désignation", "Prix", "Unité", "Score", "Match"})

	for _, r := range records {
		t.AppendRow(table.Row{
			r.Designation,
			r.Prix,
			r.Unite,
			r.Score,
			r.MatchType,
		})
	}

	t.AppendFooter(table.Row{
		"",
		"",
		"",
		fmt.Sprintf("%d result(s)", len(records)),
		"",
	})

	return t.Render(), nil
}

// FormatHistory renders journal entries as a table, newest first as stored.
func (f *TableFormatter) FormatHistory(entries []core.HistoryEntry) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"When", "Query", "Library", "Price", "Results", "Took"})

	for _, entry := range entries {
		t.AppendRow(table.Row{
			entry.CreatedAt.Format(time.RFC3339),
			entry.Query,
			entry.Library,
			entry.PriceType,
			historyOutcome(entry),
			entry.Duration.Round(time.Millisecond).String(),
		})
	}

	return t.Render(), nil
}

func historyOutcome(entry core.HistoryEntry) string {
	if entry.Message != "" {
		return fmt.Sprintf("error (%s)", entry.Message)
	}
	return fmt.Sprintf("%d", entry.ResultCount)
}
