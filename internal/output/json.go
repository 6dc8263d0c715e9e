package output

import (
	"encoding/json"

	"github.com/prixlens/prixlens/internal/core"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatSuggestions renders a suggestion list as JSON.
func (f *JSONFormatter) FormatSuggestions(records []core.Suggestion) (string, error) {
	return f.marshal(records)
}

// FormatHistory renders journal entries as JSON.
func (f *JSONFormatter) FormatHistory(entries []core.HistoryEntry) (string, error) {
	return f.marshal(entries)
}

func (f *JSONFormatter) marshal(value any) (string, error) {
	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
