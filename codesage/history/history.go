package history

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// stored code is capped so oversized submissions don't bloat the table
	maxStoredCodeLength = 5000
	maxPreviewLength    = 1000

	defaultListLimit = 50
	maxListLimit     = 200
)

// creates a new history repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// shortens s to at most limit bytes without splitting a rune; Postgres
// rejects invalid UTF-8, so a byte-boundary cut would fail the insert
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}

	return s[:limit]
}

// records an assist operation, truncating oversized fields
func (r *Repository) Save(
	ctx context.Context,
	userID, action, language, code, resultPreview string,
) (*Entry, error) {
	code = truncate(code, maxStoredCodeLength)
	resultPreview = truncate(resultPreview, maxPreviewLength)

	var entry Entry

	err := r.db.QueryRow(
		ctx,
		querySave,
		userID,
		action,
		language,
		code,
		resultPreview,
	).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Action,
		&entry.Language,
		&entry.Code,
		&entry.ResultPreview,
		&entry.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// lists a user's entries newest first
func (r *Repository) List(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := r.db.Query(ctx, queryList, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}

	for rows.Next() {
		var entry Entry

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Language,
			&entry.Code,
			&entry.ResultPreview,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// deletes one entry owned by the user
func (r *Repository) Delete(ctx context.Context, entryID, userID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, entryID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("history entry not found")
	}

	return nil
}

// deletes all of a user's entries and returns how many were removed
func (r *Repository) Clear(ctx context.Context, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx, queryClear, userID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
