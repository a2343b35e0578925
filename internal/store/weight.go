package store

import (
	"context"
	"fmt"

	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type weightStore struct {
	queries *sqlc.Queries
}

func newWeightStore(queries *sqlc.Queries) WeightStore {
	return &weightStore{queries: queries}
}

func (s *weightStore) Get(ctx context.Context, companyID int64) (map[model.Category]float64, error) {
	row, err := s.queries.GetCompanyWeights(ctx, companyID)
	if err != nil {
		return nil, notFound(err)
	}
	return toWeightMap(row), nil
}

// Upsert requires an entry for every category; the sum is checked by the caller
// and again by the table constraint.
func (s *weightStore) Upsert(ctx context.Context, companyID int64, weights map[model.Category]float64) error {
	params, err := toUpsertWeightsParams(companyID, weights)
	if err != nil {
		return err
	}
	_, err = s.queries.UpsertCompanyWeights(ctx, params)
	return err
}

func (s *weightStore) Delete(ctx context.Context, companyID int64) error {
	return s.queries.DeleteCompanyWeights(ctx, companyID)
}

func toUpsertWeightsParams(companyID int64, weights map[model.Category]float64) (sqlc.UpsertCompanyWeightsParams, error) {
	for _, c := range model.Categories {
		if _, ok := weights[c]; !ok {
			return sqlc.UpsertCompanyWeightsParams{}, fmt.Errorf("weight for %s: %w", c, model.ErrConfiguration)
		}
	}
	return sqlc.UpsertCompanyWeightsParams{
		CompanyID:       companyID,
		Financial:       weights[model.CategoryFinancial],
		Transferability: weights[model.CategoryTransferability],
		Operational:     weights[model.CategoryOperational],
		Market:          weights[model.CategoryMarket],
		LegalTax:        weights[model.CategoryLegalTax],
		Personal:        weights[model.CategoryPersonal],
	}, nil
}

func toWeightMap(row sqlc.CompanyWeight) map[model.Category]float64 {
	return map[model.Category]float64{
		model.CategoryFinancial:       row.Financial,
		model.CategoryTransferability: row.Transferability,
		model.CategoryOperational:     row.Operational,
		model.CategoryMarket:          row.Market,
		model.CategoryLegalTax:        row.LegalTax,
		model.CategoryPersonal:        row.Personal,
	}
}
