package store

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/common/id"
	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type generationLogStore struct {
	queries *sqlc.Queries
}

func newGenerationLogStore(queries *sqlc.Queries) GenerationLogStore {
	return &generationLogStore{queries: queries}
}

func (s *generationLogStore) Create(ctx context.Context, log model.GenerationLog) (model.GenerationLog, error) {
	if log.ID == 0 {
		log.ID = id.New()
	}
	var reason *string
	if log.Reason != "" {
		reason = &log.Reason
	}
	row, err := s.queries.InsertGenerationLog(ctx, sqlc.InsertGenerationLogParams{
		ID:               log.ID,
		CompanyID:        log.CompanyID,
		Kind:             string(log.Kind),
		Outcome:          string(log.Outcome),
		PromptVersion:    log.PromptVersion,
		SystemPrompt:     log.SystemPrompt,
		UserPrompt:       log.UserPrompt,
		RawOutput:        log.RawOutput,
		Reason:           reason,
		Model:            log.Model,
		LatencyMs:        int32Ptr(log.LatencyMs),
		PromptTokens:     int32Ptr(log.PromptTokens),
		CompletionTokens: int32Ptr(log.CompletionTokens),
		AcceptedCount:    int32(log.AcceptedCount),
	})
	if err != nil {
		return model.GenerationLog{}, err
	}
	return toGenerationLogModel(row), nil
}

func (s *generationLogStore) ListByCompany(ctx context.Context, companyID int64, kind model.GenerationKind, limit int32) ([]model.GenerationLog, error) {
	rows, err := s.queries.ListGenerationLogs(ctx, sqlc.ListGenerationLogsParams{
		CompanyID: companyID,
		Kind:      string(kind),
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	logs := make([]model.GenerationLog, len(rows))
	for i, row := range rows {
		logs[i] = toGenerationLogModel(row)
	}
	return logs, nil
}

func toGenerationLogModel(row sqlc.GenerationLog) model.GenerationLog {
	var reason string
	if row.Reason != nil {
		reason = *row.Reason
	}
	return model.GenerationLog{
		ID:               row.ID,
		CompanyID:        row.CompanyID,
		Kind:             model.GenerationKind(row.Kind),
		Outcome:          model.GenerationOutcome(row.Outcome),
		PromptVersion:    row.PromptVersion,
		SystemPrompt:     row.SystemPrompt,
		UserPrompt:       row.UserPrompt,
		RawOutput:        row.RawOutput,
		Reason:           reason,
		Model:            row.Model,
		LatencyMs:        intPtr(row.LatencyMs),
		PromptTokens:     intPtr(row.PromptTokens),
		CompletionTokens: intPtr(row.CompletionTokens),
		AcceptedCount:    int(row.AcceptedCount),
		CreatedAt:        row.CreatedAt.Time,
	}
}
