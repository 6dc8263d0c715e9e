package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/prixlens/prixlens/internal/core"
)

// MarkdownFormatter renders results as a markdown table.
type MarkdownFormatter struct{}

// FormatSuggestions renders a suggestion list as Markdown.
func (f *MarkdownFormatter) FormatSuggestions(records []core.Suggestion) (string, error) {
	var sb strings.Builder
	sb.WriteString("| Désignation | Prix | Unité | Score | Match |\n")
	sb.WriteString("|-------------|------|-------|-------|-------|\n")

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			escapeMarkdownCell(r.Designation),
			escapeMarkdownCell(r.Prix),
			escapeMarkdownCell(r.Unite),
			escapeMarkdownCell(r.Score),
			escapeMarkdownCell(r.MatchType),
		))
	}

	sb.WriteString(fmt.Sprintf("\n**Results**: %d\n", len(records)))
	return sb.String(), nil
}

// FormatHistory renders journal entries as Markdown.
func (f *MarkdownFormatter) FormatHistory(entries []core.HistoryEntry) (string, error) {
	var sb strings.Builder
	sb.WriteString("| When | Query | Library | Price | Results | Took |\n")
	sb.WriteString("|------|-------|---------|-------|---------|------|\n")

	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			entry.CreatedAt.Format(time.RFC3339),
			escapeMarkdownCell(entry.Query),
			escapeMarkdownCell(entry.Library),
			escapeMarkdownCell(entry.PriceType),
			escapeMarkdownCell(historyOutcome(entry)),
			entry.Duration.Round(time.Millisecond).String(),
		))
	}

	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	replacer := strings.NewReplacer("|", "\\|", "\n", " ")
	return replacer.Replace(value)
}
