package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/mq"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		var stored domain.User
		rmq := NewFakeRabbitMQ()
		us := NewUserService(&FakeUserRepo{
			CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				stored = req
				out := req
				out.ID = uuid.New()
				return &out, nil
			},
		}, rmq, testCounter())

		u, err := us.CreateUser(ctx, "bob@example.com", "secret")
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.NotEqual(t, "secret", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))

		require.Len(t, rmq.In, 1)
		job := <-rmq.In
		assert.Equal(t, mq.KindWelcome, job.Kind)
		assert.Equal(t, u.ID, job.UserID)
	})

	t.Run("repo error means no job", func(t *testing.T) {
		rmq := NewFakeRabbitMQ()
		dbErr := errors.New("db down")
		us := NewUserService(&FakeUserRepo{
			CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				return nil, dbErr
			},
		}, rmq, testCounter())

		_, err := us.CreateUser(ctx, "bob@example.com", "secret")
		assert.ErrorIs(t, err, dbErr)
		assert.Empty(t, rmq.In)
	})
}

func TestUserService_FindUserByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	us := NewUserService(&FakeUserRepo{
		FetchUserByIDFunc: func(ctx context.Context, got domain.ID) (*domain.User, error) {
			assert.Equal(t, id, got)
			return &domain.User{ID: got, Email: "bob@example.com"}, nil
		},
	}, NewFakeRabbitMQ(), testCounter())

	u, err := us.FindUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)
}
