package ports

import (
	"context"

	"files-manager-api/internal/domain/user"
)

type Auth interface {
	// Connect checks credentials and mints an opaque session token.
	Connect(ctx context.Context, email, password string) (string, error)
	// Disconnect revokes the session behind the token.
	Disconnect(ctx context.Context, token string) error
	// Resolve maps a token to its user; absent and expired tokens are
	// both unauthenticated.
	Resolve(ctx context.Context, token string) (user.ID, error)
}
