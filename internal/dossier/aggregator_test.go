package dossier_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/dossier"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

var _ = Describe("Aggregator", func() {
	var (
		ctx         context.Context
		companies   *mockCompanyStore
		assessments *mockAssessmentStore
		valuations  *mockValuationStore
		tasks       *mockTaskStore
		dossiers    *mockDossierStore
		agg         *dossier.Aggregator
	)

	BeforeEach(func() {
		ctx = context.Background()
		ebitda := 2000000.0
		companies = &mockCompanyStore{
			getByIDFn: func(_ context.Context, id int64) (model.Company, error) {
				return model.Company{ID: id, Name: "Acme Plumbing", Sector: "home_services", EBITDA: &ebitda}, nil
			},
		}
		assessments = &mockAssessmentStore{}
		valuations = &mockValuationStore{}
		tasks = &mockTaskStore{}
		dossiers = &mockDossierStore{}
		agg = dossier.NewAggregator(companies, assessments, valuations, tasks, dossiers)
	})

	It("merges every section", func() {
		completedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		companies.getBenchmarkFn = func(_ context.Context, sector string) (model.Benchmark, error) {
			return model.Benchmark{Sector: sector, MultipleLow: 3, MultipleHigh: 5}, nil
		}
		assessments.getLatestCompletedFn = func(_ context.Context, _ int64) (model.Assessment, error) {
			return model.Assessment{ID: 11, CompletedAt: &completedAt}, nil
		}
		assessments.listScoredResponsesFn = func(_ context.Context, assessmentID int64) ([]model.ScoredResponse, error) {
			Expect(assessmentID).To(Equal(int64(11)))
			return []model.ScoredResponse{{ResponseID: 1}, {ResponseID: 2}}, nil
		}
		valuations.getLatestFn = func(_ context.Context, _ int64) (model.ValuationSnapshot, error) {
			return model.ValuationSnapshot{ID: 21}, nil
		}
		tasks.summarizeFn = func(_ context.Context, _ int64) (model.DossierTasks, error) {
			return model.DossierTasks{ByStatus: map[model.TaskStatus]int{model.TaskStatusPending: 3}, CompletedValue: 5000}, nil
		}
		dossiers.countEvidenceFn = func(_ context.Context, _ int64) (int64, error) { return 4, nil }
		dossiers.listOpenRiskSignalsFn = func(_ context.Context, _ int64) ([]model.RiskSignal, error) {
			return []model.RiskSignal{{ID: 1, Summary: "Key customer concentration"}}, nil
		}
		dossiers.getEngagementFn = func(_ context.Context, _ int64) (model.DossierEngagement, error) {
			return model.DossierEngagement{EventCount: 9}, nil
		}

		d, err := agg.Build(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.SchemaVersion).To(Equal(model.DossierVersion))
		Expect(d.CompanyID).To(Equal(int64(5)))
		Expect(d.Identity.Name).To(Equal("Acme Plumbing"))
		Expect(*d.Financials.EBITDA).To(Equal(2000000.0))
		Expect(d.Financials.Benchmark.MultipleHigh).To(Equal(5.0))
		Expect(d.Assessment.AssessmentID).To(Equal(int64(11)))
		Expect(d.Assessment.ResponseCount).To(Equal(2))
		Expect(d.Valuation.ID).To(Equal(int64(21)))
		Expect(d.Tasks.ByStatus[model.TaskStatusPending]).To(Equal(3))
		Expect(d.Evidence.DocumentCount).To(Equal(int64(4)))
		Expect(d.RiskSignals).To(HaveLen(1))
		Expect(d.Engagement.EventCount).To(Equal(int64(9)))
	})

	It("leaves sections that do not exist yet empty", func() {
		d, err := agg.Build(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Assessment).To(BeNil())
		Expect(d.Valuation).To(BeNil())
		Expect(d.Financials.Benchmark).To(BeNil())
		Expect(d.RiskSignals).NotTo(BeNil())
		Expect(d.Tasks.ByStatus).NotTo(BeNil())
	})

	It("reads sections concurrently", func() {
		var inFlight, peak int32
		track := func() {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
		}
		dossiers.countEvidenceFn = func(_ context.Context, _ int64) (int64, error) { track(); return 0, nil }
		dossiers.getEngagementFn = func(_ context.Context, _ int64) (model.DossierEngagement, error) {
			track()
			return model.DossierEngagement{}, nil
		}

		_, err := agg.Build(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(atomic.LoadInt32(&peak)).To(Equal(int32(2)))
	})

	It("fails when the company does not exist", func() {
		companies.getByIDFn = func(_ context.Context, _ int64) (model.Company, error) {
			return model.Company{}, store.ErrNotFound
		}
		_, err := agg.Build(ctx, 5)
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	It("fails on any other section error", func() {
		dossiers.listOpenRiskSignalsFn = func(_ context.Context, _ int64) ([]model.RiskSignal, error) {
			return nil, errors.New("connection refused")
		}
		_, err := agg.Build(ctx, 5)
		Expect(err).To(MatchError(ContainSubstring("listing risk signals")))
	})

	It("persists a new version", func() {
		dossiers.createFn = func(_ context.Context, d model.Dossier) (model.Dossier, error) {
			d.Version = 4
			return d, nil
		}
		d, err := agg.Refresh(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Version).To(Equal(int32(4)))
	})
})
