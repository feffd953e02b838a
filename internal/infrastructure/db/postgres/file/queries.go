package file

// Listing uses IS NOT DISTINCT FROM so a NULL parent argument selects
// root-level records with the same query.
const (
	SelectFileByID = `
		SELECT id, user_id, name, type, parent_id, is_public, storage_key, created_at
		FROM files
		WHERE id = $1
	`
	SelectUserFileByID = `
		SELECT id, user_id, name, type, parent_id, is_public, storage_key, created_at
		FROM files
		WHERE id = $1 AND user_id = $2
	`
	SelectUserFiles = `
		SELECT id, user_id, name, type, parent_id, is_public, storage_key, created_at
		FROM files
		WHERE user_id = $1 AND parent_id IS NOT DISTINCT FROM $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	InsertFile = `
		INSERT INTO files (user_id, name, type, parent_id, is_public, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, type, parent_id, is_public, storage_key, created_at
	`
	UpdateFileVisibility = `
		UPDATE files
		SET is_public = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, type, parent_id, is_public, storage_key, created_at
	`
	CountFiles = `SELECT count(*) FROM files`
)
