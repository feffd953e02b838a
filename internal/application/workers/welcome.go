package workers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/mq"
)

// WelcomeWorker greets freshly registered users. Kept deliberately thin;
// a mail sender would slot in here.
type WelcomeWorker struct {
	logger         *zap.Logger
	userRepository user.Repository
}

func NewWelcomeWorker(logger *zap.Logger, userRepository user.Repository) *WelcomeWorker {
	return &WelcomeWorker{
		logger:         logger,
		userRepository: userRepository,
	}
}

func (w *WelcomeWorker) Handle(ctx context.Context, job mq.Job) error {
	if job.UserID == uuid.Nil {
		return fmt.Errorf("%w: missing user_id", ErrTerminal)
	}

	u, err := w.userRepository.FetchUserByID(ctx, job.UserID)
	if err != nil {
		return fmt.Errorf("fetch user %s: %w", job.UserID, err)
	}
	if u == nil {
		return fmt.Errorf("%w: user %s not found", ErrTerminal, job.UserID)
	}

	w.logger.Info("Welcome " + u.Email + "!")

	return nil
}
