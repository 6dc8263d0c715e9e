package core

import (
	"strings"
	"time"
)

// PriceType selects which price column of a library the service quotes from.
type PriceType string

const (
	PriceTypeMinimum PriceType = "Minimum"
	PriceTypeMoyen   PriceType = "Moyen"
	PriceTypeMaximum PriceType = "Maximum"
)

// KnownPriceType reports whether value is one of the price columns the
// upstream service understands. Unknown values are still sent as-is; the
// server is authoritative.
func KnownPriceType(value string) bool {
	switch PriceType(strings.TrimSpace(value)) {
	case PriceTypeMinimum, PriceTypeMoyen, PriceTypeMaximum:
		return true
	}
	return false
}

// Params carries one suggestion request. Library must be non-empty; callers
// are expected to reject an empty library before invoking the service, but
// the pipeline tolerates it and simply encodes an empty segment.
type Params struct {
	Query     string
	Library   string
	PriceType string
}

// Suggestion is one candidate record returned by the suggestion service.
// All fields are carried verbatim as wire strings; a field absent from the
// source object is the empty string, never an error. Score is server-computed
// and opaque to this client.
type Suggestion struct {
	Designation string `json:"designation"`
	Prix        string `json:"prix"`
	Unite       string `json:"unite"`
	Score       string `json:"score"`
	MatchType   string `json:"match_type"`
}

// LibraryList is the `/csv_files` payload: the price libraries the server
// currently has loaded.
type LibraryList struct {
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// ServerStatus is the `/status` payload.
type ServerStatus struct {
	Status             string   `json:"status"`
	CurrentLibrary     string   `json:"current_library"`
	AvailableLibraries []string `json:"available_libraries"`
	CachedLibraries    []string `json:"cached_libraries"`
	DictionaryEntries  int      `json:"dictionary_entries"`
}

// HistoryEntry is one journaled search. The journal is a local diagnostic
// log, not a response cache; it never feeds answers back into the pipeline.
type HistoryEntry struct {
	ID          string        `json:"id"`
	Query       string        `json:"query"`
	Library     string        `json:"library"`
	PriceType   string        `json:"price_type"`
	ResultCount int           `json:"result_count"`
	StatusCode  int           `json:"status_code,omitempty"`
	Message     string        `json:"message,omitempty"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"created_at"`
}
