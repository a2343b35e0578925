package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

var ErrCompanyNotFound = errors.New("company not found")

type EnqueueParams struct {
	JobType      queue.JobType `json:"job_type"`
	CompanyID    int64         `json:"company_id"`
	AssessmentID *int64        `json:"assessment_id,omitempty"`
	TraceID      *string       `json:"trace_id,omitempty"`
}

// JobService validates pipeline requests up front and hands them to the queue.
type JobService interface {
	Enqueue(ctx context.Context, params EnqueueParams) (queue.Job, error)
}

type jobService struct {
	companies   store.CompanyStore
	assessments store.AssessmentStore
	queue       queue.Producer
	logger      *slog.Logger
}

func NewJobService(companies store.CompanyStore, assessments store.AssessmentStore, producer queue.Producer, logger *slog.Logger) JobService {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobService{
		companies:   companies,
		assessments: assessments,
		queue:       producer,
		logger:      logger,
	}
}

func (s *jobService) Enqueue(ctx context.Context, params EnqueueParams) (queue.Job, error) {
	job := queue.Job{
		Type:         params.JobType,
		CompanyID:    params.CompanyID,
		AssessmentID: params.AssessmentID,
		TraceID:      params.TraceID,
		Attempt:      1,
	}
	if err := job.Validate(); err != nil {
		return queue.Job{}, err
	}

	if _, err := s.companies.GetByID(ctx, params.CompanyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return queue.Job{}, fmt.Errorf("%w: %d", ErrCompanyNotFound, params.CompanyID)
		}
		return queue.Job{}, fmt.Errorf("fetching company: %w", err)
	}

	if job.Type == queue.JobTypeScoreAssessment {
		assessment, err := s.assessments.GetByID(ctx, *job.AssessmentID)
		if err != nil {
			return queue.Job{}, fmt.Errorf("fetching assessment: %w", err)
		}
		if assessment.CompanyID != job.CompanyID {
			return queue.Job{}, fmt.Errorf("%w: assessment %d", ErrAssessmentMismatch, assessment.ID)
		}
		if assessment.Status != model.AssessmentStatusCompleted {
			return queue.Job{}, fmt.Errorf("%w: assessment %d", ErrAssessmentNotCompleted, assessment.ID)
		}
	}

	if err := s.queue.Enqueue(ctx, job); err != nil {
		return queue.Job{}, fmt.Errorf("enqueueing job: %w", err)
	}
	s.logger.InfoContext(ctx, "pipeline job accepted", "job_type", job.Type, "company_id", job.CompanyID)
	return job, nil
}
