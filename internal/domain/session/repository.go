package session

import (
	"context"
)

type Repository interface {
	CreateSession(ctx context.Context, req Session) error
	// FetchSession returns nil for tokens that are absent or expired;
	// the two cases are indistinguishable to callers.
	FetchSession(ctx context.Context, token string) (*Session, error)
	// DeleteSession reports whether a mapping existed. Deleting twice is
	// not an error.
	DeleteSession(ctx context.Context, token string) (bool, error)
	// PurgeExpired removes expired rows and returns how many went away.
	PurgeExpired(ctx context.Context) (int64, error)
}
