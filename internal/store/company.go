package store

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type companyStore struct {
	queries *sqlc.Queries
}

func newCompanyStore(queries *sqlc.Queries) CompanyStore {
	return &companyStore{queries: queries}
}

func (s *companyStore) GetByID(ctx context.Context, id int64) (model.Company, error) {
	row, err := s.queries.GetCompany(ctx, id)
	if err != nil {
		return model.Company{}, notFound(err)
	}
	return model.Company{
		ID:            row.ID,
		Name:          row.Name,
		Sector:        row.Sector,
		EBITDA:        row.Ebitda,
		AnnualRevenue: row.AnnualRevenue,
		CreatedAt:     row.CreatedAt.Time,
	}, nil
}

func (s *companyStore) GetBenchmark(ctx context.Context, sector string) (model.Benchmark, error) {
	if sector == "" {
		return model.Benchmark{}, ErrNotFound
	}
	row, err := s.queries.GetIndustryBenchmark(ctx, sector)
	if err != nil {
		return model.Benchmark{}, notFound(err)
	}
	return model.Benchmark{
		Sector:       row.Sector,
		MultipleLow:  row.MultipleLow,
		MultipleHigh: row.MultipleHigh,
		UpdatedAt:    row.UpdatedAt.Time,
	}, nil
}
