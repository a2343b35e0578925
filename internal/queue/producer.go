package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Enqueue(ctx context.Context, job Job) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if job.Attempt <= 0 {
		job.Attempt = 1
	}

	fields := jobValues(job)
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued job", "job_type", job.Type, "company_id", job.CompanyID, "attempt", job.Attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

func jobValues(job Job) map[string]any {
	values := map[string]any{
		"job_type":   string(job.Type),
		"company_id": job.CompanyID,
		"attempt":    job.Attempt,
	}
	if job.AssessmentID != nil {
		values["assessment_id"] = *job.AssessmentID
	}
	if job.TraceID != nil && *job.TraceID != "" {
		values["trace_id"] = *job.TraceID
	}
	return values
}
