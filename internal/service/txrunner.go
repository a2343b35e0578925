package service

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/core/db"
	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Companies() store.CompanyStore
	Weights() store.WeightStore
	Questions() store.QuestionStore
	Assessments() store.AssessmentStore
	Valuations() store.ValuationStore
	Tasks() store.TaskStore
	GenerationLogs() store.GenerationLogStore
	Dossiers() store.DossierStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
	// WithSnapshotTx gives fn a repeatable-read view: every read sees the same
	// committed state.
	WithSnapshotTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}

func (r *dbTxRunner) WithSnapshotTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithSnapshotTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}
