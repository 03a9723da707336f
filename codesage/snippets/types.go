package snippets

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles snippet database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a saved piece of code
type Snippet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	Folder    string    `json:"folder"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// contains data for creating a snippet
type CreateSnippetRequest struct {
	Title    string `json:"title" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
	Folder   string `json:"folder"`
}

// contains data for updating a snippet
type UpdateSnippetRequest struct {
	Title    string `json:"title" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
	Folder   string `json:"folder"`
}
