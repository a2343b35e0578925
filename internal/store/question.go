package store

import (
	"context"
	"fmt"

	"github.com/bradfeldman/exit-osx-sub006/common/id"
	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type questionStore struct {
	queries *sqlc.Queries
}

func newQuestionStore(queries *sqlc.Queries) QuestionStore {
	return &questionStore{queries: queries}
}

func (s *questionStore) GetActiveBatch(ctx context.Context, companyID int64) (model.QuestionBatch, error) {
	row, err := s.queries.GetActiveCompanyQuestionBatch(ctx, &companyID)
	if err != nil {
		return model.QuestionBatch{}, notFound(err)
	}
	return toQuestionBatchModel(row), nil
}

func (s *questionStore) GetActiveTemplateBatch(ctx context.Context) (model.QuestionBatch, error) {
	row, err := s.queries.GetActiveTemplateQuestionBatch(ctx)
	if err != nil {
		return model.QuestionBatch{}, notFound(err)
	}
	return toQuestionBatchModel(row), nil
}

func (s *questionStore) CreateBatch(ctx context.Context, companyID *int64, source model.QuestionSource) (model.QuestionBatch, error) {
	row, err := s.queries.InsertQuestionBatch(ctx, sqlc.InsertQuestionBatchParams{
		ID:        id.New(),
		CompanyID: companyID,
		Source:    string(source),
	})
	if err != nil {
		return model.QuestionBatch{}, err
	}
	return toQuestionBatchModel(row), nil
}

// RetireBatch deactivates the batch and its questions. It reports false when the
// batch was already inactive.
func (s *questionStore) RetireBatch(ctx context.Context, batchID int64) (bool, error) {
	n, err := s.queries.RetireQuestionBatch(ctx, batchID)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if err := s.queries.RetireQuestionsByBatch(ctx, batchID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *questionStore) Create(ctx context.Context, q model.Question) (model.Question, error) {
	if q.ID == 0 {
		q.ID = id.New()
	}
	row, err := s.queries.InsertQuestion(ctx, sqlc.InsertQuestionParams{
		ID:              q.ID,
		BatchID:         q.BatchID,
		CompanyID:       q.CompanyID,
		Category:        string(q.Category),
		QuestionText:    q.QuestionText,
		HelpText:        q.HelpText,
		IssueTier:       string(q.IssueTier),
		MaxImpactPoints: q.MaxImpactPoints,
		DisplayOrder:    q.DisplayOrder,
	})
	if err != nil {
		return model.Question{}, err
	}

	created := toQuestionModel(row)
	created.Options = make([]model.Option, 0, len(q.Options))
	for i, o := range q.Options {
		optRow, err := s.queries.InsertQuestionOption(ctx, sqlc.InsertQuestionOptionParams{
			ID:           id.New(),
			QuestionID:   created.ID,
			OptionText:   o.OptionText,
			ScoreValue:   o.ScoreValue,
			DisplayOrder: int32(i),
		})
		if err != nil {
			return model.Question{}, fmt.Errorf("inserting option %d: %w", i, err)
		}
		created.Options = append(created.Options, toOptionModel(optRow))
	}
	return created, nil
}

func (s *questionStore) GetByID(ctx context.Context, id int64) (model.Question, error) {
	row, err := s.queries.GetQuestion(ctx, id)
	if err != nil {
		return model.Question{}, notFound(err)
	}
	opts, err := s.queries.ListOptionsByQuestion(ctx, id)
	if err != nil {
		return model.Question{}, err
	}
	q := toQuestionModel(row)
	q.Options = toOptionModels(opts)
	return q, nil
}

func (s *questionStore) ListByBatch(ctx context.Context, batchID int64) ([]model.Question, error) {
	rows, err := s.queries.ListQuestionsByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	opts, err := s.queries.ListOptionsByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return attachOptions(rows, opts), nil
}

func attachOptions(rows []sqlc.Question, opts []sqlc.QuestionOption) []model.Question {
	byQuestion := make(map[int64][]model.Option, len(rows))
	for _, o := range opts {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], toOptionModel(o))
	}
	questions := make([]model.Question, len(rows))
	for i, row := range rows {
		questions[i] = toQuestionModel(row)
		questions[i].Options = byQuestion[row.ID]
	}
	return questions
}

func toQuestionBatchModel(row sqlc.QuestionBatch) model.QuestionBatch {
	return model.QuestionBatch{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		Source:    model.QuestionSource(row.Source),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Time,
		RetiredAt: pgTimePtr(row.RetiredAt),
	}
}

func toQuestionModel(row sqlc.Question) model.Question {
	return model.Question{
		ID:              row.ID,
		BatchID:         row.BatchID,
		CompanyID:       row.CompanyID,
		Category:        model.Category(row.Category),
		QuestionText:    row.QuestionText,
		HelpText:        row.HelpText,
		IssueTier:       model.IssueTier(row.IssueTier),
		MaxImpactPoints: row.MaxImpactPoints,
		DisplayOrder:    row.DisplayOrder,
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt.Time,
	}
}

func toOptionModel(row sqlc.QuestionOption) model.Option {
	return model.Option{
		ID:           row.ID,
		QuestionID:   row.QuestionID,
		OptionText:   row.OptionText,
		ScoreValue:   row.ScoreValue,
		DisplayOrder: row.DisplayOrder,
	}
}

func toOptionModels(rows []sqlc.QuestionOption) []model.Option {
	opts := make([]model.Option, len(rows))
	for i, row := range rows {
		opts[i] = toOptionModel(row)
	}
	return opts
}
