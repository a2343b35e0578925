package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/dossier"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

const (
	promptWeakestCategories = 3
	promptWeakestResponses  = 20
)

var ErrNoSnapshot = errors.New("company has no valuation snapshot")

type GenerationService interface {
	// GenerateQuestions replaces the company's active question batch with a
	// validated generated one. On any failure the active batch is unchanged.
	GenerateQuestions(ctx context.Context, companyID int64) (model.QuestionBatch, error)
	// GenerateTasks prompts from the latest snapshot and hands the validated
	// batch to TaskService.Regenerate.
	GenerateTasks(ctx context.Context, companyID int64) (allocation.Outcome, error)
}

type generationService struct {
	weights     store.WeightStore
	assessments store.AssessmentStore
	valuations  store.ValuationStore
	txRunner    TxRunner
	aggregator  *dossier.Aggregator
	runner      *generation.Runner
	tasks       TaskService
}

func NewGenerationService(
	weights store.WeightStore,
	assessments store.AssessmentStore,
	valuations store.ValuationStore,
	txRunner TxRunner,
	aggregator *dossier.Aggregator,
	runner *generation.Runner,
	tasks TaskService,
) GenerationService {
	return &generationService{
		weights:     weights,
		assessments: assessments,
		valuations:  valuations,
		txRunner:    txRunner,
		aggregator:  aggregator,
		runner:      runner,
		tasks:       tasks,
	}
}

func (s *generationService) GenerateQuestions(ctx context.Context, companyID int64) (model.QuestionBatch, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: logger.Ptr(companyID),
		Component: "exitosx.service.generation",
	})

	d, err := s.aggregator.Refresh(ctx, companyID)
	if err != nil {
		return model.QuestionBatch{}, fmt.Errorf("refreshing dossier: %w", err)
	}

	qc := generation.QuestionContext{Dossier: d}
	if d.Assessment != nil {
		weights, err := loadWeights(ctx, s.weights, companyID)
		if err != nil {
			return model.QuestionBatch{}, err
		}
		scores, err := scoring.Score(d.Assessment.Responses, weights)
		if err != nil {
			return model.QuestionBatch{}, err
		}
		qc.WeakestCategories = scores.WeakestCategories(promptWeakestCategories)
	}

	drafts, err := s.runner.Questions(ctx, companyID, generation.BuildQuestionPrompt(qc))
	if err != nil {
		return model.QuestionBatch{}, err
	}

	var batch model.QuestionBatch
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		active, err := sp.Questions().GetActiveBatch(ctx, companyID)
		switch {
		case err == nil:
			if _, err := sp.Questions().RetireBatch(ctx, active.ID); err != nil {
				return fmt.Errorf("retiring batch %d: %w", active.ID, err)
			}
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("getting active batch: %w", err)
		}

		batch, err = sp.Questions().CreateBatch(ctx, &companyID, model.QuestionSourceGenerated)
		if err != nil {
			return fmt.Errorf("creating batch: %w", err)
		}

		for i, draft := range drafts {
			q := model.Question{
				BatchID:         batch.ID,
				CompanyID:       &companyID,
				Category:        draft.Category,
				QuestionText:    draft.QuestionText,
				HelpText:        draft.HelpText,
				IssueTier:       draft.IssueTier,
				MaxImpactPoints: draft.MaxImpactPoints,
				DisplayOrder:    int32(i + 1),
				IsActive:        true,
			}
			for j, o := range draft.Options {
				q.Options = append(q.Options, model.Option{
					OptionText:   o.Text,
					ScoreValue:   o.ScoreValue,
					DisplayOrder: int32(j + 1),
				})
			}
			if _, err := sp.Questions().Create(ctx, q); err != nil {
				return fmt.Errorf("creating question %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return model.QuestionBatch{}, err
	}

	slog.InfoContext(ctx, "question batch activated",
		"batch_id", batch.ID,
		"questions", len(drafts))
	return batch, nil
}

func (s *generationService) GenerateTasks(ctx context.Context, companyID int64) (allocation.Outcome, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: logger.Ptr(companyID),
		Component: "exitosx.service.generation",
	})

	snap, err := s.valuations.GetLatest(ctx, companyID)
	if errors.Is(err, store.ErrNotFound) {
		return allocation.Outcome{}, fmt.Errorf("%w: company %d", ErrNoSnapshot, companyID)
	}
	if err != nil {
		return allocation.Outcome{}, fmt.Errorf("getting latest snapshot: %w", err)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{SnapshotID: logger.Ptr(snap.ID)})
	if err := requirePriced(snap); err != nil {
		return allocation.Outcome{}, err
	}

	responses, err := s.assessments.ListScoredResponses(ctx, snap.AssessmentID)
	if err != nil {
		return allocation.Outcome{}, fmt.Errorf("listing responses: %w", err)
	}
	weights, err := loadWeights(ctx, s.weights, companyID)
	if err != nil {
		return allocation.Outcome{}, err
	}
	scores, err := scoring.Score(responses, weights)
	if err != nil {
		return allocation.Outcome{}, err
	}

	prompt := generation.BuildTaskPrompt(generation.TaskContext{
		Snapshot:         snap,
		WeakestResponses: scores.WeakestResponses(promptWeakestResponses),
	})
	drafts, err := s.runner.Tasks(ctx, companyID, prompt)
	if err != nil {
		return allocation.Outcome{}, err
	}

	return s.tasks.Regenerate(ctx, snap, drafts)
}
