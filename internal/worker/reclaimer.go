package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
)

type ReclaimerConfig struct {
	MinIdle   time.Duration
	Interval  time.Duration
	BatchSize int64
	// MaxDeliveries dead-letters a job delivered this many times without an
	// ack, such as one that kills every worker reading it. Zero disables it.
	MaxDeliveries int64
}

// Reclaimer runs jobs left pending by a worker that died between reading a
// message and acking it.
type Reclaimer struct {
	stream    PendingStream
	cfg       ReclaimerConfig
	consumer  Consumer
	processor queue.MessageProcessor

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewReclaimer(stream PendingStream, cfg ReclaimerConfig, consumer Consumer, processor queue.MessageProcessor) *Reclaimer {
	if cfg.MinIdle <= 0 {
		cfg.MinIdle = 5 * time.Minute
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	return &Reclaimer{
		stream:    stream,
		cfg:       cfg,
		consumer:  consumer,
		processor: processor,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run blocks until Stop is called or ctx is done.
func (r *Reclaimer) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "exitosx.worker.reclaimer",
	})

	defer close(r.stoppedCh)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "reclaimer started",
		"interval", r.cfg.Interval,
		"min_idle", r.cfg.MinIdle,
		"max_deliveries", r.cfg.MaxDeliveries)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			slog.InfoContext(ctx, "reclaimer stopping")
			return
		case <-ticker.C:
			if _, err := r.ReclaimOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "reclaim cycle error", "error", err)
			}
		}
	}
}

func (r *Reclaimer) Stop() {
	close(r.stopCh)
	<-r.stoppedCh
}

// ReclaimOnce handles one page of stale jobs and returns how many it took over.
// A failure on one job is logged and does not stop the others.
func (r *Reclaimer) ReclaimOnce(ctx context.Context) (int, error) {
	pending, err := r.stream.Pending(ctx, r.cfg.MinIdle, r.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("listing pending jobs: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	slog.InfoContext(ctx, "found stale pending jobs", "count", len(pending))

	claimed := 0
	for _, p := range pending {
		ok, err := r.reclaim(ctx, p)
		if err != nil {
			slog.ErrorContext(ctx, "failed to reclaim job",
				"error", err,
				"message_id", p.ID,
				"original_consumer", p.Consumer,
				"idle_time", p.Idle)
		}
		if ok {
			claimed++
		}
	}
	return claimed, nil
}

func (r *Reclaimer) reclaim(ctx context.Context, p PendingMessage) (bool, error) {
	msgID := p.ID
	ctx = logger.WithLogFields(ctx, logger.LogFields{MessageID: &msgID})

	raw, ok, err := r.stream.Claim(ctx, p.ID, r.cfg.MinIdle)
	if err != nil {
		return false, fmt.Errorf("claiming: %w", err)
	}
	if !ok {
		slog.DebugContext(ctx, "job already reclaimed by another worker")
		return false, nil
	}

	msg, err := queue.ParseMessage(raw)
	if err != nil {
		// Nothing can run it; ack so it stops coming back.
		slog.ErrorContext(ctx, "unparseable reclaimed job, acknowledging", "error", err)
		if err := r.consumer.Ack(ctx, queue.Message{ID: raw.ID, Raw: raw}); err != nil {
			return true, fmt.Errorf("acking unparseable job: %w", err)
		}
		return true, nil
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: logger.Ptr(msg.CompanyID),
		JobType:   logger.Ptr(string(msg.JobType)),
	})

	if r.cfg.MaxDeliveries > 0 && p.Deliveries >= r.cfg.MaxDeliveries {
		reason := fmt.Sprintf("abandoned after %d deliveries without ack", p.Deliveries)
		if err := r.consumer.SendDLQ(ctx, msg, reason); err != nil {
			return true, fmt.Errorf("dead-lettering job: %w", err)
		}
		return true, nil
	}

	slog.InfoContext(ctx, "reclaiming stale job",
		"original_consumer", p.Consumer,
		"idle_time", p.Idle,
		"deliveries", p.Deliveries)

	start := time.Now()
	if err := r.processor(ctx, msg); err != nil {
		return true, fmt.Errorf("processing reclaimed job: %w", err)
	}
	slog.InfoContext(ctx, "reclaimed job processed",
		"duration_ms", time.Since(start).Milliseconds())
	return true, nil
}

type redisPendingStream struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
}

// NewRedisPendingStream reads the pending list of group on stream and claims
// entries for consumer.
func NewRedisPendingStream(client *redis.Client, stream, group, consumer string) PendingStream {
	return &redisPendingStream{client: client, stream: stream, group: group, consumer: consumer}
}

func (s *redisPendingStream) Pending(ctx context.Context, minIdle time.Duration, count int64) ([]PendingMessage, error) {
	pending, err := s.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: s.stream,
		Group:  s.group,
		Idle:   minIdle,
		Start:  "-",
		End:    "+",
		Count:  count,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("xpending: %w", err)
	}

	out := make([]PendingMessage, 0, len(pending))
	for _, p := range pending {
		out = append(out, PendingMessage{ID: p.ID, Consumer: p.Consumer, Idle: p.Idle, Deliveries: p.RetryCount})
	}
	return out, nil
}

func (s *redisPendingStream) Claim(ctx context.Context, id string, minIdle time.Duration) (redis.XMessage, bool, error) {
	messages, err := s.client.XClaim(ctx, &redis.XClaimArgs{
		Stream:   s.stream,
		Group:    s.group,
		Consumer: s.consumer,
		MinIdle:  minIdle,
		Messages: []string{id},
	}).Result()
	if err != nil {
		return redis.XMessage{}, false, fmt.Errorf("xclaim: %w", err)
	}
	if len(messages) == 0 {
		return redis.XMessage{}, false, nil
	}
	return messages[0], true, nil
}
