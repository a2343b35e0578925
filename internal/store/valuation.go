package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bradfeldman/exit-osx-sub006/common/id"
	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type valuationStore struct {
	queries *sqlc.Queries
}

func newValuationStore(queries *sqlc.Queries) ValuationStore {
	return &valuationStore{queries: queries}
}

func (s *valuationStore) Create(ctx context.Context, snap model.ValuationSnapshot) (model.ValuationSnapshot, error) {
	if snap.ID == 0 {
		snap.ID = id.New()
	}
	params, err := toInsertSnapshotParams(snap)
	if err != nil {
		return model.ValuationSnapshot{}, err
	}
	row, err := s.queries.InsertValuationSnapshot(ctx, params)
	if err != nil {
		return model.ValuationSnapshot{}, err
	}
	return toValuationSnapshotModel(row)
}

func (s *valuationStore) GetByID(ctx context.Context, id int64) (model.ValuationSnapshot, error) {
	row, err := s.queries.GetValuationSnapshot(ctx, id)
	if err != nil {
		return model.ValuationSnapshot{}, notFound(err)
	}
	return toValuationSnapshotModel(row)
}

func (s *valuationStore) GetLatest(ctx context.Context, companyID int64) (model.ValuationSnapshot, error) {
	row, err := s.queries.GetLatestValuationSnapshot(ctx, companyID)
	if err != nil {
		return model.ValuationSnapshot{}, notFound(err)
	}
	return toValuationSnapshotModel(row)
}

func (s *valuationStore) ListByCompany(ctx context.Context, companyID int64, limit int32) ([]model.ValuationSnapshot, error) {
	rows, err := s.queries.ListValuationSnapshots(ctx, sqlc.ListValuationSnapshotsParams{
		CompanyID: companyID,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	snaps := make([]model.ValuationSnapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := toValuationSnapshotModel(row)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func toInsertSnapshotParams(snap model.ValuationSnapshot) (sqlc.InsertValuationSnapshotParams, error) {
	scores := snap.CategoryScores
	if scores == nil {
		scores = map[model.Category]float64{}
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return sqlc.InsertValuationSnapshotParams{}, fmt.Errorf("marshaling category scores: %w", err)
	}
	weightsJSON, err := json.Marshal(snap.Weights)
	if err != nil {
		return sqlc.InsertValuationSnapshotParams{}, fmt.Errorf("marshaling weights: %w", err)
	}
	return sqlc.InsertValuationSnapshotParams{
		ID:             snap.ID,
		CompanyID:      snap.CompanyID,
		AssessmentID:   snap.AssessmentID,
		CategoryScores: scoresJSON,
		Weights:        weightsJSON,
		OverallScore:   snap.OverallScore,
		Ebitda:         snap.EBITDA,
		MultipleLow:    snap.MultipleLow,
		MultipleHigh:   snap.MultipleHigh,
		FinalMultiple:  snap.FinalMultiple,
		CurrentValue:   snap.CurrentValue,
		PotentialValue: snap.PotentialValue,
		ValueGap:       snap.ValueGap,
		Status:         string(snap.Status),
		Estimated:      snap.Estimated,
	}, nil
}

func toValuationSnapshotModel(row sqlc.ValuationSnapshot) (model.ValuationSnapshot, error) {
	var scores, weights map[model.Category]float64
	if len(row.CategoryScores) > 0 {
		if err := json.Unmarshal(row.CategoryScores, &scores); err != nil {
			return model.ValuationSnapshot{}, fmt.Errorf("unmarshaling category scores: %w", err)
		}
	}
	if len(row.Weights) > 0 {
		if err := json.Unmarshal(row.Weights, &weights); err != nil {
			return model.ValuationSnapshot{}, fmt.Errorf("unmarshaling weights: %w", err)
		}
	}
	return model.ValuationSnapshot{
		ID:             row.ID,
		CompanyID:      row.CompanyID,
		AssessmentID:   row.AssessmentID,
		CategoryScores: scores,
		Weights:        weights,
		OverallScore:   row.OverallScore,
		EBITDA:         row.Ebitda,
		MultipleLow:    row.MultipleLow,
		MultipleHigh:   row.MultipleHigh,
		FinalMultiple:  row.FinalMultiple,
		CurrentValue:   row.CurrentValue,
		PotentialValue: row.PotentialValue,
		ValueGap:       row.ValueGap,
		Status:         model.ValuationStatus(row.Status),
		Estimated:      row.Estimated,
		CreatedAt:      row.CreatedAt.Time,
	}, nil
}
