package history

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles analysis history database operations
type Repository struct {
	db *pgxpool.Pool
}

// records one assist operation performed by a user
type Entry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	Action        string    `json:"action"`
	Language      string    `json:"language"`
	Code          string    `json:"code"`
	ResultPreview string    `json:"result_preview"`
	CreatedAt     time.Time `json:"created_at"`
}
