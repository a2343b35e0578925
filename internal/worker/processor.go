package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

// Processor dispatches queue jobs to the pipeline services.
type Processor struct {
	scoring    service.ScoringService
	generation service.GenerationService
}

func NewProcessor(scoring service.ScoringService, generation service.GenerationService) *Processor {
	return &Processor{
		scoring:    scoring,
		generation: generation,
	}
}

func (p *Processor) Handle(ctx context.Context, job queue.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID:    logger.Ptr(job.CompanyID),
		AssessmentID: job.AssessmentID,
		JobType:      logger.Ptr(string(job.Type)),
		Component:    "exitosx.worker.processor",
	})

	switch job.Type {
	case queue.JobTypeScoreAssessment:
		snap, err := p.scoring.Score(ctx, job.CompanyID, *job.AssessmentID)
		if err != nil {
			return fmt.Errorf("scoring assessment: %w", err)
		}
		slog.InfoContext(ctx, "scoring job done",
			"snapshot_id", snap.ID,
			"status", snap.Status)

	case queue.JobTypeGenerateQuestions:
		batch, err := p.generation.GenerateQuestions(ctx, job.CompanyID)
		if err != nil {
			return fmt.Errorf("generating questions: %w", err)
		}
		slog.InfoContext(ctx, "question job done", "batch_id", batch.ID)

	case queue.JobTypeGenerateTasks:
		out, err := p.generation.GenerateTasks(ctx, job.CompanyID)
		if err != nil {
			return fmt.Errorf("generating tasks: %w", err)
		}
		slog.InfoContext(ctx, "task job done",
			"created", out.Created,
			"skipped", out.Skipped)
	}
	return nil
}

// Permanent reports whether retrying the job cannot change the result.
// Contract violations are included: re-prompting is the caller's decision.
func Permanent(err error) bool {
	switch {
	case errors.Is(err, generation.ErrContractViolation),
		errors.Is(err, model.ErrConfiguration),
		errors.Is(err, queue.ErrInvalidJob),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrNoSnapshot),
		errors.Is(err, service.ErrUnpricedSnapshot),
		errors.Is(err, service.ErrAssessmentNotCompleted),
		errors.Is(err, service.ErrAssessmentMismatch):
		return true
	}
	return false
}
