package ports

import (
	"context"

	"files-manager-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, email, password string) (*user.User, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	CountUsers(ctx context.Context) (uint64, error)
}
