package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
)

// SessionStore persists the single displayed result.
type SessionStore interface {
	SaveLastResult(ctx context.Context, r result.DisplayedResult) error
	LoadLastResult(ctx context.Context) (result.DisplayedResult, error)
	ClearLastResult(ctx context.Context) error
}

var _ SessionStore = (*SQLiteStorage)(nil)

// SaveLastResult replaces the stored result. Only the request, the raw
// text and the timestamp are stored; the outcome is parsed again on load.
func (s *SQLiteStorage) SaveLastResult(ctx context.Context, r result.DisplayedResult) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO last_result (id, description, supplier, raw, classified_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			description = excluded.description,
			supplier = excluded.supplier,
			raw = excluded.raw,
			classified_at = excluded.classified_at
	`, r.Request.Description, r.Request.Supplier, r.Raw, r.ClassifiedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save last result: %w", err)
	}
	return nil
}

// LoadLastResult returns the stored result or common.ErrNotFound.
func (s *SQLiteStorage) LoadLastResult(ctx context.Context) (result.DisplayedResult, error) {
	if err := validateContext(ctx); err != nil {
		return result.DisplayedResult{}, err
	}

	var (
		req          model.ClassificationRequest
		raw          string
		classifiedAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT description, supplier, raw, classified_at
		FROM last_result
		WHERE id = 1
	`).Scan(&req.Description, &req.Supplier, &raw, &classifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return result.DisplayedResult{}, common.ErrNotFound
	}
	if err != nil {
		return result.DisplayedResult{}, fmt.Errorf("failed to load last result: %w", err)
	}

	at, err := time.Parse(time.RFC3339Nano, classifiedAt)
	if err != nil {
		return result.DisplayedResult{}, fmt.Errorf("failed to parse classified_at %q: %w", classifiedAt, err)
	}

	return result.NewDisplayedResult(req, raw, at), nil
}

// ClearLastResult removes the stored result. Clearing an empty store is not an error.
func (s *SQLiteStorage) ClearLastResult(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM last_result`); err != nil {
		return fmt.Errorf("failed to clear last result: %w", err)
	}
	return nil
}
