package session

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "files-manager-api/internal/domain/session"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_CreateSession(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	s := domain.Session{
		Token:     uuid.New().String(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(domain.TTL),
	}

	mock.ExpectExec(regexp.QuoteMeta(InsertSession)).
		WithArgs(s.Token, s.UserID, s.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.CreateSession(context.Background(), s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchSession(t *testing.T) {
	ctx := context.Background()

	t.Run("live session", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		token := uuid.New().String()
		userID := uuid.New()
		expiresAt := time.Now().Add(time.Hour)

		mock.ExpectQuery(regexp.QuoteMeta(SelectSession)).
			WithArgs(token).
			WillReturnRows(pgxmock.NewRows([]string{"token", "user_id", "expires_at"}).
				AddRow(token, userID, expiresAt))

		s, err := repo.FetchSession(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, userID, s.UserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent or expired rows both come back nil", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(SelectSession)).
			WithArgs("nope").
			WillReturnRows(pgxmock.NewRows([]string{"token", "user_id", "expires_at"}))

		s, err := repo.FetchSession(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, s)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error propagates", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		dbErr := errors.New("connection reset")
		mock.ExpectQuery(regexp.QuoteMeta(SelectSession)).
			WithArgs("t").
			WillReturnError(dbErr)

		_, err := repo.FetchSession(ctx, "t")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestRepository_DeleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("existing mapping", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectExec(regexp.QuoteMeta(DeleteSession)).
			WithArgs("tok").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		existed, err := repo.DeleteSession(ctx, "tok")
		require.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("deleting twice is not an error", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectExec(regexp.QuoteMeta(DeleteSession)).
			WithArgs("tok").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		existed, err := repo.DeleteSession(ctx, "tok")
		require.NoError(t, err)
		assert.False(t, existed)
	})
}

func TestRepository_PurgeExpired(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(DeleteExpired)).
		WillReturnResult(pgxmock.NewResult("DELETE", 7))

	n, err := repo.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
