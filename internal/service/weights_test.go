package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

var _ = Describe("WeightService", func() {
	var (
		ctx       context.Context
		companies *mockCompanyStore
		weights   *mockWeightStore
		svc       service.WeightService
	)

	BeforeEach(func() {
		ctx = context.Background()
		companies = &mockCompanyStore{}
		weights = &mockWeightStore{}
		svc = service.NewWeightService(companies, weights)
	})

	It("reports defaults when there is no override", func() {
		w, override, err := svc.Get(ctx, 7)
		Expect(err).NotTo(HaveOccurred())
		Expect(override).To(BeFalse())
		Expect(w).To(Equal(scoring.DefaultWeights()))
	})

	It("stores a valid override", func() {
		w := scoring.Weights{
			model.CategoryFinancial:       0.30,
			model.CategoryTransferability: 0.20,
			model.CategoryOperational:     0.20,
			model.CategoryMarket:          0.10,
			model.CategoryLegalTax:        0.10,
			model.CategoryPersonal:        0.10,
		}
		weights.upsertFn = func(_ context.Context, companyID int64, got map[model.Category]float64) error {
			Expect(companyID).To(Equal(int64(7)))
			Expect(got[model.CategoryFinancial]).To(Equal(0.30))
			return nil
		}
		Expect(svc.Set(ctx, 7, w)).To(Succeed())
		Expect(weights.upsertCall).To(Equal(1))
	})

	It("rejects weights that do not sum to one without writing", func() {
		w := scoring.DefaultWeights()
		w[model.CategoryFinancial] = 0.5

		err := svc.Set(ctx, 7, w)
		Expect(err).To(MatchError(scoring.ErrInvalidWeights))
		Expect(err).To(MatchError(model.ErrConfiguration))
		Expect(weights.upsertCall).To(BeZero())
	})

	It("rejects an override missing a category", func() {
		w := scoring.DefaultWeights()
		delete(w, model.CategoryPersonal)
		Expect(svc.Set(ctx, 7, w)).To(MatchError(model.ErrConfiguration))
	})

	It("requires the company to exist", func() {
		companies.getByIDFn = func(_ context.Context, _ int64) (model.Company, error) {
			return model.Company{}, store.ErrNotFound
		}
		Expect(svc.Set(ctx, 7, scoring.DefaultWeights())).To(MatchError(store.ErrNotFound))
	})
})
