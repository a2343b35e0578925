package service

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

// GenerationLogService reads the generation audit trail.
type GenerationLogService interface {
	List(ctx context.Context, companyID int64, kind model.GenerationKind, limit int32) ([]model.GenerationLog, error)
}

type generationLogService struct {
	logs store.GenerationLogStore
}

func NewGenerationLogService(logs store.GenerationLogStore) GenerationLogService {
	return &generationLogService{logs: logs}
}

func (s *generationLogService) List(ctx context.Context, companyID int64, kind model.GenerationKind, limit int32) ([]model.GenerationLog, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.logs.ListByCompany(ctx, companyID, kind, limit)
}
