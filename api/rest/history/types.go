package history

import "codeberg.org/codesage/server/codesage/history"

// wraps a page of history entries
type ListResponse struct {
	Entries []history.Entry `json:"entries"`
}

// reports how many entries a clear removed
type ClearResponse struct {
	Deleted int64 `json:"deleted"`
}
