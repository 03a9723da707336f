package snippets

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSnippetNotFound = errors.New("snippet not found")

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(
	ctx context.Context,
	userID string,
	req CreateSnippetRequest,
) (*Snippet, error) {
	var snippet Snippet

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		req.Title,
		req.Code,
		req.Language,
		req.Folder,
	).Scan(
		&snippet.ID,
		&snippet.UserID,
		&snippet.Title,
		&snippet.Code,
		&snippet.Language,
		&snippet.Folder,
		&snippet.CreatedAt,
		&snippet.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &snippet, nil
}

func (r *Repository) Get(ctx context.Context, snippetID, userID string) (*Snippet, error) {
	var snippet Snippet

	err := r.db.QueryRow(ctx, queryGet, snippetID, userID).Scan(
		&snippet.ID,
		&snippet.UserID,
		&snippet.Title,
		&snippet.Code,
		&snippet.Language,
		&snippet.Folder,
		&snippet.CreatedAt,
		&snippet.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &snippet, nil
}

// lists a user's snippets, optionally restricted to one folder
func (r *Repository) List(ctx context.Context, userID, folder string) ([]Snippet, error) {
	var rows pgx.Rows

	var err error

	if folder == "" {
		rows, err = r.db.Query(ctx, queryList, userID)
	} else {
		rows, err = r.db.Query(ctx, queryListByFolder, userID, folder)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snippets := []Snippet{}

	for rows.Next() {
		var s Snippet

		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Title,
			&s.Code,
			&s.Language,
			&s.Folder,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		snippets = append(snippets, s)
	}

	return snippets, rows.Err()
}

// lists the distinct non-empty folder names a user has
func (r *Repository) ListFolders(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListFolders, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := []string{}

	for rows.Next() {
		var folder string

		if err := rows.Scan(&folder); err != nil {
			return nil, err
		}

		folders = append(folders, folder)
	}

	return folders, rows.Err()
}

func (r *Repository) Update(
	ctx context.Context,
	snippetID, userID string,
	req UpdateSnippetRequest,
) (*Snippet, error) {
	var snippet Snippet

	err := r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Title,
		req.Code,
		req.Language,
		req.Folder,
		snippetID,
		userID,
	).Scan(
		&snippet.ID,
		&snippet.UserID,
		&snippet.Title,
		&snippet.Code,
		&snippet.Language,
		&snippet.Folder,
		&snippet.CreatedAt,
		&snippet.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &snippet, nil
}

func (r *Repository) Delete(ctx context.Context, snippetID, userID string) error {
	result, err := r.db.Exec(ctx, queryDelete, snippetID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrSnippetNotFound
	}

	return nil
}
