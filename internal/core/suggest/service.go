package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fulmenhq/gofulmen/logging"

	"github.com/prixlens/prixlens/internal/core"
)

// HistoryStore journals completed searches for the `history` command. It is
// write-mostly from the service's point of view and never read back during a
// lookup.
type HistoryStore interface {
	RecordSearch(ctx context.Context, entry core.HistoryEntry) error
}

// Service composes the transport and the record scanner into the
// caller-facing suggestion pipeline. Each call is independent and stateless
// apart from the immutable client configuration; at most one request is in
// flight per invocation.
type Service struct {
	Client  *Client
	History HistoryStore
	Logger  *logging.Logger
	Clock   func() time.Time
}

// GetSuggestions runs one fetch-and-parse cycle. The bool result
// distinguishes "here are records" from "no suggestions": any fetch failure,
// scan yielding nothing, or empty body collapses to (nil, false). Failures
// are logged for diagnostics but never surfaced to the caller.
func (s *Service) GetSuggestions(ctx context.Context, params core.Params) ([]core.Suggestion, bool) {
	if s == nil || s.Client == nil {
		return nil, false
	}
	if ctx == nil {
		ctx = context.Background()
	}

	startedAt := s.now()

	text, err := s.Client.Fetch(ctx, params)
	if err != nil {
		s.journal(ctx, params, 0, fetchStatusCode(err), err.Error(), s.now().Sub(startedAt))
		s.logDebug("suggestion fetch failed", zap.Error(err))
		return nil, false
	}

	records, err := ParseSuggestions(text)
	if err != nil {
		s.journal(ctx, params, 0, 0, err.Error(), s.now().Sub(startedAt))
		s.logDebug("suggestion parse failed", zap.Error(err))
		return nil, false
	}

	s.journal(ctx, params, len(records), 200, "", s.now().Sub(startedAt))

	if len(records) == 0 {
		return nil, false
	}
	return records, true
}

// Libraries lists the price libraries currently loaded on the server. Unlike
// `/search`, the `/csv_files` payload is well-formed JSON, so it goes through
// a typed decode.
func (s *Service) Libraries(ctx context.Context) (*core.LibraryList, error) {
	if s == nil || s.Client == nil {
		return nil, errors.New("suggestion service is not configured")
	}

	text, err := s.Client.FetchLibraries(ctx)
	if err != nil {
		return nil, err
	}

	var list core.LibraryList
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil, &ParseError{Reason: "library list is not valid JSON"}
	}
	return &list, nil
}

// Status reports the server's own view of its state.
func (s *Service) Status(ctx context.Context) (*core.ServerStatus, error) {
	if s == nil || s.Client == nil {
		return nil, errors.New("suggestion service is not configured")
	}

	text, err := s.Client.FetchStatus(ctx)
	if err != nil {
		return nil, err
	}

	var status core.ServerStatus
	if err := json.Unmarshal([]byte(text), &status); err != nil {
		return nil, &ParseError{Reason: "status payload is not valid JSON"}
	}
	return &status, nil
}

func (s *Service) journal(ctx context.Context, params core.Params, count, statusCode int, message string, took time.Duration) {
	if s.History == nil {
		return
	}

	entry := core.HistoryEntry{
		ID:          uuid.New().String(),
		Query:       params.Query,
		Library:     params.Library,
		PriceType:   params.PriceType,
		ResultCount: count,
		StatusCode:  statusCode,
		Message:     message,
		Duration:    took,
		CreatedAt:   s.now(),
	}

	if err := s.History.RecordSearch(ctx, entry); err != nil {
		s.logDebug("search journal write failed", zap.Error(err))
	}
}

func (s *Service) logDebug(msg string, fields ...zap.Field) {
	if s == nil || s.Logger == nil {
		return
	}
	s.Logger.Debug(msg, fields...)
}

func (s *Service) now() time.Time {
	if s != nil && s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

func fetchStatusCode(err error) int {
	if fe, ok := AsFetchError(err); ok {
		return fe.StatusCode
	}
	return 0
}
