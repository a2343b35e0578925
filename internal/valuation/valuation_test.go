package valuation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
	"github.com/bradfeldman/exit-osx-sub006/internal/valuation"
)

func uniform(score float64) map[model.Category]float64 {
	out := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		out[c] = score
	}
	return out
}

func ptr(v float64) *float64 { return &v }

var defaultRange = valuation.Range{Low: 3.0, High: 5.0}

var _ = Describe("Calculate", func() {
	var in valuation.Input

	BeforeEach(func() {
		in = valuation.Input{
			Scores:    uniform(0.4),
			Weights:   scoring.DefaultWeights(),
			EBITDA:    ptr(2_000_000),
			Benchmark: &model.Benchmark{Sector: "services", MultipleLow: 3.0, MultipleHigh: 5.0},
			Default:   defaultRange,
		}
	})

	It("derives multiple, current, potential and gap from the benchmark range", func() {
		res, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Status).To(Equal(model.ValuationStatusComputed))
		Expect(res.Estimated).To(BeFalse())
		Expect(*res.OverallScore).To(BeNumerically("~", 0.4, 1e-9))
		Expect(*res.FinalMultiple).To(BeNumerically("~", 3.8, 1e-9))
		Expect(*res.CurrentValue).To(BeNumerically("~", 7_600_000, 1e-3))
		Expect(*res.PotentialValue).To(BeNumerically("~", 10_000_000, 1e-3))
		Expect(*res.ValueGap).To(BeNumerically("~", 2_400_000, 1e-3))
	})

	It("moves linearly across the range with the overall score", func() {
		in.Scores = uniform(0.6)
		res, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(*res.FinalMultiple).To(BeNumerically("~", 4.2, 1e-9))
		Expect(*res.ValueGap).To(BeNumerically("~", 1_600_000, 1e-3))
	})

	It("is idempotent for unchanged input", func() {
		first, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())
		second, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())

		Expect(*second.CurrentValue).To(Equal(*first.CurrentValue))
		Expect(*second.PotentialValue).To(Equal(*first.PotentialValue))
		Expect(*second.ValueGap).To(Equal(*first.ValueGap))
	})

	It("renormalizes weights over answered categories instead of scoring gaps as zero", func() {
		in.Scores = map[model.Category]float64{
			model.CategoryFinancial: 1.0,
			model.CategoryMarket:    0.0,
		}
		res, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.AppliedWeights).To(HaveLen(2))
		var sum float64
		for _, w := range res.AppliedWeights {
			sum += w
		}
		Expect(sum).To(BeNumerically("~", 1.0, 1e-9))
		Expect(*res.OverallScore).To(BeNumerically("~", 0.25/0.40, 1e-9))
	})

	It("has no gap at the top of the range", func() {
		in.Scores = uniform(1.0)
		res, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(*res.ValueGap).To(BeNumerically(">=", 0))
		Expect(*res.ValueGap).To(BeNumerically("~", 0, 1e-6))
	})

	DescribeTable("leaves dollar figures undefined without positive EBITDA",
		func(ebitda *float64) {
			in.EBITDA = ebitda
			res, err := valuation.Calculate(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(model.ValuationStatusNoEBITDA))
			Expect(res.OverallScore).NotTo(BeNil())
			Expect(res.CurrentValue).To(BeNil())
			Expect(res.PotentialValue).To(BeNil())
			Expect(res.ValueGap).To(BeNil())
		},
		Entry("missing", nil),
		Entry("zero", ptr(0)),
		Entry("negative", ptr(-150_000)),
	)

	It("falls back to the default range and marks the result estimated", func() {
		in.Benchmark = nil
		in.Default = valuation.Range{Low: 2.0, High: 4.0}
		res, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Estimated).To(BeTrue())
		Expect(res.Range).To(Equal(in.Default))
		Expect(*res.FinalMultiple).To(BeNumerically("~", 2.8, 1e-9))
	})

	It("is unscored when no category is answered", func() {
		in.Scores = map[model.Category]float64{}
		res, err := valuation.Calculate(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Status).To(Equal(model.ValuationStatusUnscored))
		Expect(res.OverallScore).To(BeNil())
		Expect(res.FinalMultiple).To(BeNil())
	})

	It("rejects invalid weights as a configuration error", func() {
		in.Weights = scoring.Weights{model.CategoryFinancial: 1}
		_, err := valuation.Calculate(in)
		Expect(err).To(MatchError(model.ErrConfiguration))
	})

	It("rejects an inverted range", func() {
		in.Benchmark = &model.Benchmark{MultipleLow: 6, MultipleHigh: 4}
		_, err := valuation.Calculate(in)
		Expect(err).To(MatchError(valuation.ErrInvalidRange))
	})

	Describe("Snapshot", func() {
		It("copies inputs so later mutation cannot change the record", func() {
			res, err := valuation.Calculate(in)
			Expect(err).NotTo(HaveOccurred())

			snap := res.Snapshot(11, 22, in)
			in.Scores[model.CategoryFinancial] = 0.99
			*in.EBITDA = 1

			Expect(snap.CompanyID).To(Equal(int64(11)))
			Expect(snap.AssessmentID).To(Equal(int64(22)))
			Expect(snap.CategoryScores[model.CategoryFinancial]).To(Equal(0.4))
			Expect(*snap.EBITDA).To(Equal(2_000_000.0))
			Expect(snap.MultipleLow).To(Equal(3.0))
			Expect(snap.Status).To(Equal(model.ValuationStatusComputed))
		})
	})
})
