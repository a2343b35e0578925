package store

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type assessmentStore struct {
	queries *sqlc.Queries
}

func newAssessmentStore(queries *sqlc.Queries) AssessmentStore {
	return &assessmentStore{queries: queries}
}

func (s *assessmentStore) GetByID(ctx context.Context, id int64) (model.Assessment, error) {
	row, err := s.queries.GetAssessment(ctx, id)
	if err != nil {
		return model.Assessment{}, notFound(err)
	}
	return toAssessmentModel(row), nil
}

func (s *assessmentStore) GetLatestCompleted(ctx context.Context, companyID int64) (model.Assessment, error) {
	row, err := s.queries.GetLatestCompletedAssessment(ctx, companyID)
	if err != nil {
		return model.Assessment{}, notFound(err)
	}
	return toAssessmentModel(row), nil
}

func (s *assessmentStore) ListScoredResponses(ctx context.Context, assessmentID int64) ([]model.ScoredResponse, error) {
	rows, err := s.queries.ListScoredResponses(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	responses := make([]model.ScoredResponse, len(rows))
	for i, row := range rows {
		responses[i] = model.ScoredResponse{
			ResponseID:      row.ResponseID,
			QuestionID:      row.QuestionID,
			QuestionText:    row.QuestionText,
			Category:        model.Category(row.Category),
			IssueTier:       model.IssueTier(row.IssueTier),
			MaxImpactPoints: row.MaxImpactPoints,
			QuestionActive:  row.QuestionActive,
			OptionID:        row.OptionID,
			OptionText:      row.OptionText,
			ScoreValue:      row.ScoreValue,
			ConfidenceLevel: model.ConfidenceLevel(row.ConfidenceLevel),
		}
	}
	return responses, nil
}

func toAssessmentModel(row sqlc.Assessment) model.Assessment {
	return model.Assessment{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		Status:      model.AssessmentStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
		CompletedAt: pgTimePtr(row.CompletedAt),
	}
}
