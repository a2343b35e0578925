package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bradfeldman/exit-osx-sub006/common/id"
	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type dossierStore struct {
	queries *sqlc.Queries
}

func newDossierStore(queries *sqlc.Queries) DossierStore {
	return &dossierStore{queries: queries}
}

// Create appends a dossier; the version is assigned by the insert as the
// company's previous version plus one.
func (s *dossierStore) Create(ctx context.Context, d model.Dossier) (model.Dossier, error) {
	content, err := json.Marshal(d)
	if err != nil {
		return model.Dossier{}, fmt.Errorf("marshaling dossier: %w", err)
	}
	row, err := s.queries.InsertDossier(ctx, sqlc.InsertDossierParams{
		ID:        id.New(),
		CompanyID: d.CompanyID,
		Content:   content,
	})
	if err != nil {
		return model.Dossier{}, err
	}
	d.Version = row.Version
	return d, nil
}

func (s *dossierStore) GetLatest(ctx context.Context, companyID int64) (model.Dossier, error) {
	row, err := s.queries.GetLatestDossier(ctx, companyID)
	if err != nil {
		return model.Dossier{}, notFound(err)
	}
	return toDossierModel(row)
}

func (s *dossierStore) CountEvidence(ctx context.Context, companyID int64) (int64, error) {
	return s.queries.CountEvidenceDocuments(ctx, companyID)
}

func (s *dossierStore) ListOpenRiskSignals(ctx context.Context, companyID int64) ([]model.RiskSignal, error) {
	rows, err := s.queries.ListOpenRiskSignals(ctx, companyID)
	if err != nil {
		return nil, err
	}
	signals := make([]model.RiskSignal, len(rows))
	for i, row := range rows {
		signals[i] = model.RiskSignal{
			ID:        row.ID,
			Category:  model.Category(row.Category),
			Summary:   row.Summary,
			Severity:  row.Severity,
			CreatedAt: row.CreatedAt.Time,
		}
	}
	return signals, nil
}

func (s *dossierStore) GetEngagement(ctx context.Context, companyID int64) (model.DossierEngagement, error) {
	row, err := s.queries.GetEngagementSummary(ctx, companyID)
	if err != nil {
		return model.DossierEngagement{}, err
	}
	return model.DossierEngagement{
		EventCount:     row.EventCount,
		LastActivityAt: pgTimePtr(row.LastActivityAt),
	}, nil
}

func toDossierModel(row sqlc.Dossier) (model.Dossier, error) {
	var d model.Dossier
	if err := json.Unmarshal(row.Content, &d); err != nil {
		return model.Dossier{}, fmt.Errorf("unmarshaling dossier %d: %w", row.ID, err)
	}
	d.Version = row.Version
	return d, nil
}
