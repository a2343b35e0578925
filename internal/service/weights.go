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
)

type WeightService interface {
	// Get returns the weights in force and whether they are a company override.
	Get(ctx context.Context, companyID int64) (scoring.Weights, bool, error)
	// Set validates and stores an override. Invalid weights are never written.
	Set(ctx context.Context, companyID int64, weights scoring.Weights) error
	// Clear reverts the company to the default weights.
	Clear(ctx context.Context, companyID int64) error
}

type weightService struct {
	companies store.CompanyStore
	weights   store.WeightStore
}

func NewWeightService(companies store.CompanyStore, weights store.WeightStore) WeightService {
	return &weightService{companies: companies, weights: weights}
}

func (s *weightService) Get(ctx context.Context, companyID int64) (scoring.Weights, bool, error) {
	override, err := s.weights.Get(ctx, companyID)
	if errors.Is(err, store.ErrNotFound) {
		return scoring.DefaultWeights(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting weights: %w", err)
	}
	return scoring.Weights(override), true, nil
}

func (s *weightService) Set(ctx context.Context, companyID int64, weights scoring.Weights) error {
	if err := weights.Validate(); err != nil {
		return err
	}
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return fmt.Errorf("getting company: %w", err)
	}
	if err := s.weights.Upsert(ctx, companyID, map[model.Category]float64(weights)); err != nil {
		return fmt.Errorf("storing weights: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: logger.Ptr(companyID),
		Component: "exitosx.service.weights",
	})
	slog.InfoContext(ctx, "category weights overridden")
	return nil
}

func (s *weightService) Clear(ctx context.Context, companyID int64) error {
	if err := s.weights.Delete(ctx, companyID); err != nil {
		return fmt.Errorf("clearing weights: %w", err)
	}
	return nil
}

// loadWeights returns the company override, or the defaults when there is none.
// Overrides are validated again on read: a bad row is a configuration error.
func loadWeights(ctx context.Context, weights store.WeightStore, companyID int64) (scoring.Weights, error) {
	override, err := weights.Get(ctx, companyID)
	if errors.Is(err, store.ErrNotFound) {
		return scoring.DefaultWeights(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting weights: %w", err)
	}
	w := scoring.Weights(override)
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
