package scoring_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
)

func response(id int64, c model.Category, impact, score float64) model.ScoredResponse {
	return model.ScoredResponse{
		ResponseID:      id,
		QuestionID:      id * 10,
		Category:        c,
		IssueTier:       model.IssueTierSignificant,
		MaxImpactPoints: impact,
		QuestionActive:  true,
		ScoreValue:      score,
		ConfidenceLevel: model.ConfidenceConfident,
	}
}

var _ = Describe("Score", func() {
	It("weights each response by its max impact points", func() {
		res, err := scoring.Score([]model.ScoredResponse{
			response(1, model.CategoryFinancial, 15, 1.00),
			response(2, model.CategoryFinancial, 5, 0.00),
		}, scoring.DefaultWeights())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Scores[model.CategoryFinancial]).To(BeNumerically("~", 0.75, 1e-12))
	})

	It("reports categories without answers as unanswered instead of zero", func() {
		res, err := scoring.Score([]model.ScoredResponse{
			response(1, model.CategoryFinancial, 10, 0.33),
		}, scoring.DefaultWeights())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Scores).To(HaveLen(1))
		Expect(res.Scores).NotTo(HaveKey(model.CategoryMarket))
		Expect(res.Unanswered).To(ConsistOf(
			model.CategoryTransferability,
			model.CategoryOperational,
			model.CategoryMarket,
			model.CategoryLegalTax,
			model.CategoryPersonal,
		))
		Expect(res.Answered()).To(Equal([]model.Category{model.CategoryFinancial}))
	})

	It("excludes not-applicable responses and retired questions", func() {
		na := response(2, model.CategoryFinancial, 10, 0.00)
		na.ConfidenceLevel = model.ConfidenceNotApplicable
		retired := response(3, model.CategoryFinancial, 10, 0.00)
		retired.QuestionActive = false

		res, err := scoring.Score([]model.ScoredResponse{
			response(1, model.CategoryFinancial, 10, 1.00),
			na,
			retired,
		}, scoring.DefaultWeights())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Scores[model.CategoryFinancial]).To(Equal(1.0))
		Expect(res.Excluded).To(Equal(2))
	})

	It("leaves a category unanswered when all its responses are not applicable", func() {
		na := response(1, model.CategoryPersonal, 5, 0.67)
		na.ConfidenceLevel = model.ConfidenceNotApplicable

		res, err := scoring.Score([]model.ScoredResponse{na}, scoring.DefaultWeights())

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Scores).To(BeEmpty())
		Expect(res.Unanswered).To(HaveLen(6))
	})

	It("refuses to score without a valid weight configuration", func() {
		_, err := scoring.Score([]model.ScoredResponse{
			response(1, model.CategoryFinancial, 10, 1.00),
		}, scoring.Weights{model.CategoryFinancial: 1})

		Expect(err).To(MatchError(scoring.ErrMissingWeight))
		Expect(err).To(MatchError(model.ErrConfiguration))
	})

	It("does not alias the caller's weights", func() {
		w := scoring.DefaultWeights()
		res, err := scoring.Score(nil, w)
		Expect(err).NotTo(HaveOccurred())

		w[model.CategoryFinancial] = 0.9
		Expect(res.Weights[model.CategoryFinancial]).To(Equal(0.25))
	})

	Describe("rankings", func() {
		var res scoring.Result

		BeforeEach(func() {
			var err error
			res, err = scoring.Score([]model.ScoredResponse{
				response(1, model.CategoryFinancial, 10, 0.67),
				response(2, model.CategoryMarket, 8, 0.00),
				response(3, model.CategoryOperational, 12, 0.33),
				response(4, model.CategoryLegalTax, 14, 0.00),
				response(5, model.CategoryPersonal, 6, 0.33),
			}, scoring.DefaultWeights())
			Expect(err).NotTo(HaveOccurred())
		})

		It("orders categories from weakest, keeping canonical order on ties", func() {
			weakest := res.WeakestCategories(3)
			Expect(weakest).To(HaveLen(3))
			Expect(weakest[0].Category).To(Equal(model.CategoryMarket))
			Expect(weakest[1].Category).To(Equal(model.CategoryLegalTax))
			Expect(weakest[2].Category).To(Equal(model.CategoryOperational))
		})

		It("orders responses by score then by heavier question", func() {
			weakest := res.WeakestResponses(4)
			ids := make([]int64, len(weakest))
			for i, r := range weakest {
				ids[i] = r.ResponseID
			}
			Expect(ids).To(Equal([]int64{4, 2, 3, 5}))
		})

		It("returns everything when n exceeds the answered set", func() {
			Expect(res.WeakestCategories(10)).To(HaveLen(5))
			Expect(res.WeakestResponses(-1)).To(HaveLen(5))
		})
	})
})
