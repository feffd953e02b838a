package session

import (
	"time"

	"files-manager-api/internal/domain/user"
)

// TTL is fixed at creation and never refreshed on use.
const TTL = 24 * time.Hour

type Session struct {
	Token     string
	UserID    user.ID
	ExpiresAt time.Time
}
