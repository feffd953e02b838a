package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"files-manager-api/internal/infrastructure/mq"
)

type RabbitMQ interface {
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	GetInputChan() chan mq.Job
	GetConn() *amqp091.Connection
}
