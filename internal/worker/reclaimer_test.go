package worker_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/worker"
)

func jobMessage(id string) redis.XMessage {
	return redis.XMessage{ID: id, Values: map[string]any{
		"job_type":   "generate_tasks",
		"company_id": "7",
		"attempt":    "1",
	}}
}

var _ = Describe("Reclaimer", func() {
	var (
		ctx       context.Context
		stream    *mockPendingStream
		consumer  *mockConsumer
		processed []queue.Message
		procErr   error
		reclaimer *worker.Reclaimer
	)

	BeforeEach(func() {
		ctx = context.Background()
		stream = &mockPendingStream{}
		consumer = &mockConsumer{}
		processed = nil
		procErr = nil
		reclaimer = worker.NewReclaimer(stream, worker.ReclaimerConfig{
			MinIdle:       time.Minute,
			BatchSize:     5,
			MaxDeliveries: 4,
		}, consumer, func(_ context.Context, msg queue.Message) error {
			processed = append(processed, msg)
			return procErr
		})
	})

	It("asks for stale entries with the configured idle time and page size", func() {
		var gotIdle time.Duration
		var gotCount int64
		stream.pendingFn = func(_ context.Context, minIdle time.Duration, count int64) ([]worker.PendingMessage, error) {
			gotIdle, gotCount = minIdle, count
			return nil, nil
		}

		n, err := reclaimer.ReclaimOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
		Expect(gotIdle).To(Equal(time.Minute))
		Expect(gotCount).To(Equal(int64(5)))
		Expect(stream.claimed).To(BeEmpty())
	})

	It("claims and reruns a stale job", func() {
		stream.pendingFn = func(context.Context, time.Duration, int64) ([]worker.PendingMessage, error) {
			return []worker.PendingMessage{{ID: "1-0", Consumer: "worker-a", Idle: 10 * time.Minute, Deliveries: 1}}, nil
		}
		stream.claimFn = func(_ context.Context, id string) (redis.XMessage, bool, error) {
			return jobMessage(id), true, nil
		}

		n, err := reclaimer.ReclaimOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))
		Expect(stream.claimed).To(Equal([]string{"1-0"}))
		Expect(processed).To(HaveLen(1))
		Expect(processed[0].JobType).To(Equal(queue.JobTypeGenerateTasks))
		Expect(processed[0].CompanyID).To(Equal(int64(7)))
		Expect(consumer.dlq).To(BeEmpty())
	})

	It("skips jobs another worker claimed first", func() {
		stream.pendingFn = func(context.Context, time.Duration, int64) ([]worker.PendingMessage, error) {
			return []worker.PendingMessage{{ID: "1-0", Deliveries: 1}}, nil
		}

		n, err := reclaimer.ReclaimOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
		Expect(processed).To(BeEmpty())
	})

	It("dead-letters a job that keeps going unacked", func() {
		stream.pendingFn = func(context.Context, time.Duration, int64) ([]worker.PendingMessage, error) {
			return []worker.PendingMessage{{ID: "1-0", Deliveries: 4}}, nil
		}
		stream.claimFn = func(_ context.Context, id string) (redis.XMessage, bool, error) {
			return jobMessage(id), true, nil
		}

		n, err := reclaimer.ReclaimOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))
		Expect(processed).To(BeEmpty())
		Expect(consumer.dlq).To(HaveKeyWithValue("1-0", ContainSubstring("4 deliveries")))
	})

	It("acks a job it cannot parse instead of rerunning it", func() {
		stream.pendingFn = func(context.Context, time.Duration, int64) ([]worker.PendingMessage, error) {
			return []worker.PendingMessage{{ID: "1-0", Deliveries: 1}}, nil
		}
		stream.claimFn = func(_ context.Context, id string) (redis.XMessage, bool, error) {
			return redis.XMessage{ID: id, Values: map[string]any{"job_type": "reindex"}}, true, nil
		}

		_, err := reclaimer.ReclaimOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(consumer.acked).To(Equal([]string{"1-0"}))
		Expect(processed).To(BeEmpty())
	})

	It("keeps going when one job fails", func() {
		stream.pendingFn = func(context.Context, time.Duration, int64) ([]worker.PendingMessage, error) {
			return []worker.PendingMessage{{ID: "1-0", Deliveries: 1}, {ID: "2-0", Deliveries: 1}}, nil
		}
		stream.claimFn = func(_ context.Context, id string) (redis.XMessage, bool, error) {
			if id == "1-0" {
				return redis.XMessage{}, false, errors.New("connection reset")
			}
			return jobMessage(id), true, nil
		}
		procErr = errors.New("generator failed")

		n, err := reclaimer.ReclaimOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))
		Expect(stream.claimed).To(Equal([]string{"1-0", "2-0"}))
		Expect(processed).To(HaveLen(1))
		Expect(processed[0].ID).To(Equal("2-0"))
	})

	It("reports a failed pending listing", func() {
		stream.pendingFn = func(context.Context, time.Duration, int64) ([]worker.PendingMessage, error) {
			return nil, errors.New("NOGROUP")
		}
		_, err := reclaimer.ReclaimOnce(ctx)
		Expect(err).To(MatchError(ContainSubstring("NOGROUP")))
	})

	It("stops when asked", func() {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		done := make(chan struct{})
		go func() {
			reclaimer.Run(runCtx)
			close(done)
		}()
		reclaimer.Stop()
		Eventually(done).Should(BeClosed())
	})
})
