package session

// SelectSession filters expired rows in SQL so the caller cannot tell
// an expired token from one that never existed.
const (
	InsertSession = `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	SelectSession = `
		SELECT token, user_id, expires_at
		FROM sessions
		WHERE token = $1 AND expires_at > now()
	`
	DeleteSession = `DELETE FROM sessions WHERE token = $1`
	DeleteExpired = `DELETE FROM sessions WHERE expires_at <= now()`
)
