package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prixlens/prixlens/internal/core"
)

// HistoryQuery scopes a journal listing.
type HistoryQuery struct {
	Library string
	Limit   int
}

const defaultHistoryLimit = 20

// RecordSearch appends one completed search to the journal.
func (s *Store) RecordSearch(ctx context.Context, entry core.HistoryEntry) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if strings.TrimSpace(entry.ID) == "" {
		return errors.New("history entry id is required")
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO search_history (id, query, library, price_type, result_count, status_code, message, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Query, entry.Library, entry.PriceType, entry.ResultCount,
		entry.StatusCode, entry.Message, entry.Duration.Milliseconds(), createdAt.Unix())
	if err != nil {
		return fmt.Errorf("record search: %w", err)
	}

	return nil
}

// RecentSearches lists journal entries, newest first.
func (s *Store) RecentSearches(ctx context.Context, query HistoryQuery) ([]core.HistoryEntry, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var (
		rows *sql.Rows
		err  error
	)

	library := strings.TrimSpace(query.Library)
	if library != "" {
		rows, err = s.DB.QueryContext(ctx, `
			SELECT id, query, library, price_type, result_count, status_code, message, duration_ms, created_at
			FROM search_history
			WHERE library = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		`, library, limit)
	} else {
		rows, err = s.DB.QueryContext(ctx, `
			SELECT id, query, library, price_type, result_count, status_code, message, duration_ms, created_at
			FROM search_history
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	defer rows.Close() // nolint:errcheck // read-only cursor

	entries := make([]core.HistoryEntry, 0, limit)
	for rows.Next() {
		var (
			entry      core.HistoryEntry
			statusCode sql.NullInt64
			message    sql.NullString
			durationMS int64
			createdAt  int64
		)
		if err := rows.Scan(&entry.ID, &entry.Query, &entry.Library, &entry.PriceType,
			&entry.ResultCount, &statusCode, &message, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan search history: %w", err)
		}
		entry.StatusCode = int(statusCode.Int64)
		entry.Message = message.String
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		entry.CreatedAt = time.Unix(createdAt, 0).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}

	return entries, nil
}

// ClearHistory removes journal entries, optionally scoped to one library.
// It returns the number of removed rows.
func (s *Store) ClearHistory(ctx context.Context, library string) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var (
		result sql.Result
		err    error
	)

	library = strings.TrimSpace(library)
	if library != "" {
		result, err = s.DB.ExecContext(ctx, `DELETE FROM search_history WHERE library = ?`, library)
	} else {
		result, err = s.DB.ExecContext(ctx, `DELETE FROM search_history`)
	}
	if err != nil {
		return 0, fmt.Errorf("clear search history: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return removed, nil
}

// CountHistory returns the number of journal entries.
func (s *Store) CountHistory(ctx context.Context) (int, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM search_history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count search history: %w", err)
	}

	return count, nil
}
