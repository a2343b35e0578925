package worker_test

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/worker"
)

type mockConsumer struct {
	readFn func(ctx context.Context) ([]queue.Message, error)

	acked    []string
	requeued []string
	dlq      map[string]string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	if m.readFn != nil {
		return m.readFn(ctx)
	}
	return nil, nil
}

func (m *mockConsumer) Ack(_ context.Context, msg queue.Message) error {
	m.acked = append(m.acked, msg.ID)
	return nil
}

func (m *mockConsumer) Requeue(_ context.Context, msg queue.Message, _ string) error {
	m.requeued = append(m.requeued, msg.ID)
	return nil
}

func (m *mockConsumer) SendDLQ(_ context.Context, msg queue.Message, errMsg string) error {
	if m.dlq == nil {
		m.dlq = map[string]string{}
	}
	m.dlq[msg.ID] = errMsg
	return nil
}

type mockHandler struct {
	handleFn func(ctx context.Context, job queue.Job) error
	jobs     []queue.Job
}

func (m *mockHandler) Handle(ctx context.Context, job queue.Job) error {
	m.jobs = append(m.jobs, job)
	if m.handleFn != nil {
		return m.handleFn(ctx, job)
	}
	return nil
}

type mockScoringService struct {
	scoreFn func(ctx context.Context, companyID, assessmentID int64) (model.ValuationSnapshot, error)
}

func (m *mockScoringService) Score(ctx context.Context, companyID, assessmentID int64) (model.ValuationSnapshot, error) {
	if m.scoreFn != nil {
		return m.scoreFn(ctx, companyID, assessmentID)
	}
	return model.ValuationSnapshot{ID: 1, CompanyID: companyID, AssessmentID: assessmentID}, nil
}

type mockGenerationService struct {
	questionsFn func(ctx context.Context, companyID int64) (model.QuestionBatch, error)
	tasksFn     func(ctx context.Context, companyID int64) (allocation.Outcome, error)
}

func (m *mockGenerationService) GenerateQuestions(ctx context.Context, companyID int64) (model.QuestionBatch, error) {
	if m.questionsFn != nil {
		return m.questionsFn(ctx, companyID)
	}
	return model.QuestionBatch{ID: 1}, nil
}

func (m *mockGenerationService) GenerateTasks(ctx context.Context, companyID int64) (allocation.Outcome, error) {
	if m.tasksFn != nil {
		return m.tasksFn(ctx, companyID)
	}
	return allocation.Outcome{}, nil
}

type mockPendingStream struct {
	pendingFn func(ctx context.Context, minIdle time.Duration, count int64) ([]worker.PendingMessage, error)
	claimFn   func(ctx context.Context, id string) (redis.XMessage, bool, error)
	claimed   []string
}

func (m *mockPendingStream) Pending(ctx context.Context, minIdle time.Duration, count int64) ([]worker.PendingMessage, error) {
	if m.pendingFn != nil {
		return m.pendingFn(ctx, minIdle, count)
	}
	return nil, nil
}

func (m *mockPendingStream) Claim(ctx context.Context, id string, _ time.Duration) (redis.XMessage, bool, error) {
	m.claimed = append(m.claimed, id)
	if m.claimFn != nil {
		return m.claimFn(ctx, id)
	}
	return redis.XMessage{}, false, nil
}
