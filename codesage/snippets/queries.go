package snippets

const (
	queryCreate = `
		INSERT INTO snippets (user_id, title, code, language, folder)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, code, language, folder, created_at, updated_at
	`

	queryGet = `
		SELECT id, user_id, title, code, language, folder, created_at, updated_at
		FROM snippets
		WHERE id = $1 AND user_id = $2
	`

	queryList = `
		SELECT id, user_id, title, code, language, folder, created_at, updated_at
		FROM snippets
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	queryListByFolder = `
		SELECT id, user_id, title, code, language, folder, created_at, updated_at
		FROM snippets
		WHERE user_id = $1 AND folder = $2
		ORDER BY updated_at DESC
	`

	queryListFolders = `
		SELECT DISTINCT folder
		FROM snippets
		WHERE user_id = $1 AND folder <> ''
		ORDER BY folder
	`

	queryUpdate = `
		UPDATE snippets
		SET title = $1, code = $2, language = $3, folder = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, title, code, language, folder, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM snippets
		WHERE id = $1 AND user_id = $2
	`
)
