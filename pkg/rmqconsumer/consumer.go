package rmqconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"files-manager-api/config"
	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/application/workers"
	"files-manager-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

const (
	retryBase  = 500 * time.Millisecond
	maxRetries = 4
)

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	handlers   map[string]ports.JobHandler
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, handlers map[string]ports.JobHandler) *Consumer {
	return &Consumer{
		cfg:      cfg,
		log:      logger,
		handlers: handlers,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range mq.Kinds() {
		if err = c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	// manual acks: a job is gone from the queue only once its handler
	// finished, so a crashed worker's job is redelivered
	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			c.handle(ctx, msg)
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

// handle settles one delivery. Transient failures get in-process backoff
// retries and then a requeue; a delivery that already failed once before
// (Redelivered) is dropped so a poisoned job cannot loop forever.
// Terminal failures are acked away immediately.
func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	err := c.delivery(ctx, msg)
	if err == nil {
		if ackErr := msg.Ack(false); ackErr != nil {
			c.log.Error("mq ack error", zap.Error(ackErr))
		}
		return
	}

	if errors.Is(err, workers.ErrTerminal) {
		c.log.Error("dropping job after terminal failure",
			zap.String("routing_key", msg.RoutingKey),
			zap.Error(err),
		)
		if ackErr := msg.Ack(false); ackErr != nil {
			c.log.Error("mq ack error", zap.Error(ackErr))
		}
		return
	}

	requeue := !msg.Redelivered
	c.log.Error("job failed",
		zap.String("routing_key", msg.RoutingKey),
		zap.Bool("requeue", requeue),
		zap.Error(err),
	)
	if nackErr := msg.Nack(false, requeue); nackErr != nil {
		c.log.Error("mq nack error", zap.Error(nackErr))
	}
}

func (c *Consumer) delivery(ctx context.Context, msg amqp091.Delivery) error {
	var job mq.Job
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return fmt.Errorf("%w: bad job payload: %v", workers.ErrTerminal, err)
	}

	h, ok := c.handlers[msg.RoutingKey]
	if !ok {
		return fmt.Errorf("%w: no handler for routing key %q", workers.ErrTerminal, msg.RoutingKey)
	}

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		job.Attempt++
		if err := h.Handle(ctx, job); err != nil {
			if errors.Is(err, workers.ErrTerminal) {
				return err
			}
			return retry.RetryableError(err)
		}
		return nil
	})
}
