package service

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type ValuationService interface {
	// History lists snapshots newest first.
	History(ctx context.Context, companyID int64, limit int32) ([]model.ValuationSnapshot, error)
	// Latest returns store.ErrNotFound when the company was never scored.
	Latest(ctx context.Context, companyID int64) (model.ValuationSnapshot, error)
}

type valuationService struct {
	valuations store.ValuationStore
}

func NewValuationService(valuations store.ValuationStore) ValuationService {
	return &valuationService{valuations: valuations}
}

func (s *valuationService) History(ctx context.Context, companyID int64, limit int32) ([]model.ValuationSnapshot, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.valuations.ListByCompany(ctx, companyID, limit)
}

func (s *valuationService) Latest(ctx context.Context, companyID int64) (model.ValuationSnapshot, error) {
	return s.valuations.GetLatest(ctx, companyID)
}
