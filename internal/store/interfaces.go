package store

import (
	"context"
	"errors"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// CompanyStore reads company identity, financials and sector benchmarks
type CompanyStore interface {
	GetByID(ctx context.Context, id int64) (model.Company, error)
	GetBenchmark(ctx context.Context, sector string) (model.Benchmark, error)
}

// WeightStore persists per-company category weight overrides.
// Get returns ErrNotFound when the company uses the defaults.
type WeightStore interface {
	Get(ctx context.Context, companyID int64) (map[model.Category]float64, error)
	Upsert(ctx context.Context, companyID int64, weights map[model.Category]float64) error
	Delete(ctx context.Context, companyID int64) error
}

// QuestionStore defines the contract for question batch data access
type QuestionStore interface {
	GetActiveBatch(ctx context.Context, companyID int64) (model.QuestionBatch, error)
	GetActiveTemplateBatch(ctx context.Context) (model.QuestionBatch, error)
	CreateBatch(ctx context.Context, companyID *int64, source model.QuestionSource) (model.QuestionBatch, error)
	RetireBatch(ctx context.Context, batchID int64) (bool, error)
	// Create inserts the question and its options.
	Create(ctx context.Context, q model.Question) (model.Question, error)
	GetByID(ctx context.Context, id int64) (model.Question, error)
	ListByBatch(ctx context.Context, batchID int64) ([]model.Question, error)
}

// AssessmentStore defines the contract for assessment data access
type AssessmentStore interface {
	GetByID(ctx context.Context, id int64) (model.Assessment, error)
	GetLatestCompleted(ctx context.Context, companyID int64) (model.Assessment, error)
	ListScoredResponses(ctx context.Context, assessmentID int64) ([]model.ScoredResponse, error)
}

// ValuationStore is insert-only: snapshots are never updated or deleted.
type ValuationStore interface {
	Create(ctx context.Context, snap model.ValuationSnapshot) (model.ValuationSnapshot, error)
	GetByID(ctx context.Context, id int64) (model.ValuationSnapshot, error)
	GetLatest(ctx context.Context, companyID int64) (model.ValuationSnapshot, error)
	ListByCompany(ctx context.Context, companyID int64, limit int32) ([]model.ValuationSnapshot, error)
}

// TaskStore defines the contract for task data access
type TaskStore interface {
	Create(ctx context.Context, task model.Task) (model.Task, error)
	GetByID(ctx context.Context, id int64) (model.Task, error)
	GetForUpdate(ctx context.Context, id int64) (model.Task, error)
	UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (model.Task, error)
	// Complete freezes completedValue; only IN_PROGRESS tasks can be completed.
	Complete(ctx context.Context, id int64, completedValue float64) (model.Task, error)
	DeletePending(ctx context.Context, companyID int64) (int64, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.Task, error)
	SummarizeByStatus(ctx context.Context, companyID int64) (model.DossierTasks, error)
}

// GenerationLogStore is the audit trail of generation attempts
type GenerationLogStore interface {
	Create(ctx context.Context, log model.GenerationLog) (model.GenerationLog, error)
	ListByCompany(ctx context.Context, companyID int64, kind model.GenerationKind, limit int32) ([]model.GenerationLog, error)
}

// DossierStore persists dossiers and serves the read-only sections that feed them
type DossierStore interface {
	Create(ctx context.Context, d model.Dossier) (model.Dossier, error)
	GetLatest(ctx context.Context, companyID int64) (model.Dossier, error)
	CountEvidence(ctx context.Context, companyID int64) (int64, error)
	ListOpenRiskSignals(ctx context.Context, companyID int64) ([]model.RiskSignal, error)
	GetEngagement(ctx context.Context, companyID int64) (model.DossierEngagement, error)
}
