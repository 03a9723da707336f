package history

const (
	querySave = `
		INSERT INTO history_entries (user_id, action, language, code, result_preview)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, action, language, code, result_preview, created_at
	`

	queryList = `
		SELECT id, user_id, action, language, code, result_preview, created_at
		FROM history_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryDelete = `
		DELETE FROM history_entries
		WHERE id = $1 AND user_id = $2
	`

	queryClear = `
		DELETE FROM history_entries
		WHERE user_id = $1
	`
)
