package ports

import (
	"context"

	"files-manager-api/internal/infrastructure/mq"
)

// JobHandler consumes one queue delivery. Implementations must be
// idempotent: deliveries are at-least-once and may repeat after a crash.
// Terminal failures are reported by wrapping workers.ErrTerminal.
type JobHandler interface {
	Handle(ctx context.Context, job mq.Job) error
}
