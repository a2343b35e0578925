// Package dossier assembles the read-only company state that feeds scoring and
// generation into one versioned document.
package dossier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

type Aggregator struct {
	companies   store.CompanyStore
	assessments store.AssessmentStore
	valuations  store.ValuationStore
	tasks       store.TaskStore
	dossiers    store.DossierStore
	now         func() time.Time
}

func NewAggregator(
	companies store.CompanyStore,
	assessments store.AssessmentStore,
	valuations store.ValuationStore,
	tasks store.TaskStore,
	dossiers store.DossierStore,
) *Aggregator {
	return &Aggregator{
		companies:   companies,
		assessments: assessments,
		valuations:  valuations,
		tasks:       tasks,
		dossiers:    dossiers,
		now:         time.Now,
	}
}

// Build reads every section concurrently and merges them once all have
// returned. Sections that do not exist yet (no assessment, no snapshot, no
// benchmark) are left empty; any other read error fails the build.
func (a *Aggregator) Build(ctx context.Context, companyID int64) (model.Dossier, error) {
	span := logger.StartSpan(ctx, "dossier.build")
	defer span.End()
	ctx = logger.WithLogFields(span.Context(), logger.LogFields{
		CompanyID: logger.Ptr(companyID),
		Component: "exitosx.dossier.aggregator",
	})

	var (
		company    model.Company
		benchmark  *model.Benchmark
		assessment *model.DossierAssessment
		snapshot   *model.ValuationSnapshot
		tasks      model.DossierTasks
		evidence   int64
		signals    []model.RiskSignal
		engagement model.DossierEngagement
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := a.companies.GetByID(gctx, companyID)
		if err != nil {
			return fmt.Errorf("getting company: %w", err)
		}
		company = c
		if c.Sector == "" {
			return nil
		}
		b, err := a.companies.GetBenchmark(gctx, c.Sector)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("getting benchmark: %w", err)
		}
		benchmark = &b
		return nil
	})

	g.Go(func() error {
		latest, err := a.assessments.GetLatestCompleted(gctx, companyID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("getting latest assessment: %w", err)
		}
		responses, err := a.assessments.ListScoredResponses(gctx, latest.ID)
		if err != nil {
			return fmt.Errorf("listing responses: %w", err)
		}
		assessment = &model.DossierAssessment{
			AssessmentID:  latest.ID,
			CompletedAt:   latest.CompletedAt,
			ResponseCount: len(responses),
			Responses:     responses,
		}
		return nil
	})

	g.Go(func() error {
		snap, err := a.valuations.GetLatest(gctx, companyID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("getting latest valuation: %w", err)
		}
		snapshot = &snap
		return nil
	})

	g.Go(func() error {
		var err error
		if tasks, err = a.tasks.SummarizeByStatus(gctx, companyID); err != nil {
			return fmt.Errorf("summarizing tasks: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if evidence, err = a.dossiers.CountEvidence(gctx, companyID); err != nil {
			return fmt.Errorf("counting evidence: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if signals, err = a.dossiers.ListOpenRiskSignals(gctx, companyID); err != nil {
			return fmt.Errorf("listing risk signals: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if engagement, err = a.dossiers.GetEngagement(gctx, companyID); err != nil {
			return fmt.Errorf("getting engagement: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return model.Dossier{}, err
	}

	if signals == nil {
		signals = []model.RiskSignal{}
	}
	if tasks.ByStatus == nil {
		tasks.ByStatus = map[model.TaskStatus]int{}
	}

	d := model.Dossier{
		SchemaVersion: model.DossierVersion,
		CompanyID:     companyID,
		GeneratedAt:   a.now().UTC(),
		Identity: model.DossierIdentity{
			Name:   company.Name,
			Sector: company.Sector,
		},
		Financials: model.DossierFinancials{
			EBITDA:        company.EBITDA,
			AnnualRevenue: company.AnnualRevenue,
			Benchmark:     benchmark,
		},
		Assessment:  assessment,
		Valuation:   snapshot,
		Tasks:       tasks,
		Evidence:    model.DossierEvidence{DocumentCount: evidence},
		RiskSignals: signals,
		Engagement:  engagement,
	}

	slog.DebugContext(ctx, "dossier built",
		"has_assessment", assessment != nil,
		"has_valuation", snapshot != nil,
		"risk_signals", len(signals))
	return d, nil
}

// Persist appends d as the company's next dossier version.
func (a *Aggregator) Persist(ctx context.Context, d model.Dossier) (model.Dossier, error) {
	saved, err := a.dossiers.Create(ctx, d)
	if err != nil {
		return model.Dossier{}, fmt.Errorf("persisting dossier: %w", err)
	}
	slog.InfoContext(ctx, "dossier persisted",
		"company_id", saved.CompanyID,
		"version", saved.Version)
	return saved, nil
}

// Refresh builds and persists a new dossier.
func (a *Aggregator) Refresh(ctx context.Context, companyID int64) (model.Dossier, error) {
	d, err := a.Build(ctx, companyID)
	if err != nil {
		return model.Dossier{}, err
	}
	return a.Persist(ctx, d)
}
