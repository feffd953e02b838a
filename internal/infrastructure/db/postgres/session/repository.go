package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"files-manager-api/internal/domain/session"
	"files-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) session.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSession(ctx context.Context, req session.Session) error {
	_, err := r.db.Exec(ctx, InsertSession, req.Token, req.UserID, req.ExpiresAt)
	return err
}

func (r *Repository) FetchSession(ctx context.Context, token string) (*session.Session, error) {
	s := new(Session)
	err := r.db.QueryRow(ctx, SelectSession, token).Scan(
		&s.Token,
		&s.UserID,
		&s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &session.Session{
		Token:     s.Token,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteSession, token)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, DeleteExpired)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
