package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/domain/session"
	"files-manager-api/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

type AuthService struct {
	userRepository    user.Repository
	sessionRepository session.Repository
}

func NewAuthService(
	userRepository user.Repository,
	sessionRepository session.Repository,
) ports.Auth {
	return &AuthService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
	}
}

func (as *AuthService) Connect(ctx context.Context, email, password string) (string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// uuid v4 comes from crypto/rand, which makes the token opaque and
	// unguessable
	token := uuid.New().String()
	s := session.Session{
		Token:     token,
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(session.TTL),
	}
	if err = as.sessionRepository.CreateSession(ctx, s); err != nil {
		return "", err
	}

	return token, nil
}

func (as *AuthService) Disconnect(ctx context.Context, token string) error {
	// resolve first so an expired token answers exactly like an unknown one
	s, err := as.sessionRepository.FetchSession(ctx, token)
	if err != nil {
		return err
	}
	if s == nil {
		return ErrUnauthorized
	}

	if _, err = as.sessionRepository.DeleteSession(ctx, token); err != nil {
		return err
	}

	return nil
}

func (as *AuthService) Resolve(ctx context.Context, token string) (user.ID, error) {
	if token == "" {
		return uuid.Nil, ErrUnauthorized
	}

	s, err := as.sessionRepository.FetchSession(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	if s == nil {
		return uuid.Nil, ErrUnauthorized
	}

	return s.UserID, nil
}
