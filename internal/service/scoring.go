package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
	"github.com/bradfeldman/exit-osx-sub006/internal/valuation"
)

var (
	ErrAssessmentNotCompleted = errors.New("assessment is not completed")
	ErrAssessmentMismatch     = errors.New("assessment belongs to another company")
)

type ScoringService interface {
	// Score runs one scoring pass and appends a new snapshot. Scoring the same
	// assessment twice yields two snapshots with identical figures.
	Score(ctx context.Context, companyID, assessmentID int64) (model.ValuationSnapshot, error)
}

type scoringService struct {
	txRunner     TxRunner
	defaultRange valuation.Range
}

func NewScoringService(txRunner TxRunner, defaultRange valuation.Range) ScoringService {
	return &scoringService{txRunner: txRunner, defaultRange: defaultRange}
}

func (s *scoringService) Score(ctx context.Context, companyID, assessmentID int64) (model.ValuationSnapshot, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID:    logger.Ptr(companyID),
		AssessmentID: logger.Ptr(assessmentID),
		Component:    "exitosx.service.scoring",
	})
	span := logger.StartSpan(ctx, "scoring.score")
	defer span.End()
	ctx = span.Context()

	var snap model.ValuationSnapshot
	err := s.txRunner.WithSnapshotTx(ctx, func(sp StoreProvider) error {
		assessment, err := sp.Assessments().GetByID(ctx, assessmentID)
		if err != nil {
			return fmt.Errorf("getting assessment: %w", err)
		}
		if assessment.CompanyID != companyID {
			return fmt.Errorf("%w: assessment %d", ErrAssessmentMismatch, assessmentID)
		}
		if assessment.Status != model.AssessmentStatusCompleted {
			return fmt.Errorf("%w: assessment %d", ErrAssessmentNotCompleted, assessmentID)
		}

		weights, err := loadWeights(ctx, sp.Weights(), companyID)
		if err != nil {
			return err
		}

		company, err := sp.Companies().GetByID(ctx, companyID)
		if err != nil {
			return fmt.Errorf("getting company: %w", err)
		}
		var benchmark *model.Benchmark
		if company.Sector != "" {
			b, err := sp.Companies().GetBenchmark(ctx, company.Sector)
			switch {
			case err == nil:
				benchmark = &b
			case !errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("getting benchmark: %w", err)
			}
		}

		responses, err := sp.Assessments().ListScoredResponses(ctx, assessmentID)
		if err != nil {
			return fmt.Errorf("listing responses: %w", err)
		}

		scores, err := scoring.Score(responses, weights)
		if err != nil {
			return err
		}

		in := valuation.Input{
			Scores:    scores.Scores,
			Weights:   weights,
			EBITDA:    company.EBITDA,
			Benchmark: benchmark,
			Default:   s.defaultRange,
		}
		result, err := valuation.Calculate(in)
		if err != nil {
			return err
		}

		snap, err = sp.Valuations().Create(ctx, result.Snapshot(companyID, assessmentID, in))
		if err != nil {
			return fmt.Errorf("creating snapshot: %w", err)
		}

		slog.InfoContext(ctx, "assessment scored",
			"snapshot_id", snap.ID,
			"status", snap.Status,
			"estimated", snap.Estimated,
			"unanswered", len(scores.Unanswered),
			"excluded_responses", scores.Excluded)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return model.ValuationSnapshot{}, err
	}
	return snap, nil
}
