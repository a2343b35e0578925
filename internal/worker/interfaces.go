package worker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// JobHandler runs one pipeline job to completion.
type JobHandler interface {
	Handle(ctx context.Context, job queue.Job) error
}

// PendingStream is the consumer group's list of delivered but unacked messages.
type PendingStream interface {
	Pending(ctx context.Context, minIdle time.Duration, count int64) ([]PendingMessage, error)
	// Claim takes the message over; ok is false when another consumer already did.
	Claim(ctx context.Context, id string, minIdle time.Duration) (msg redis.XMessage, ok bool, err error)
}

type PendingMessage struct {
	ID         string
	Consumer   string
	Idle       time.Duration
	Deliveries int64
}
