package generation_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation/generationtest"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

func asContractError(err error) *generation.ContractError {
	var ce *generation.ContractError
	ExpectWithOffset(1, errors.As(err, &ce)).To(BeTrue(), "expected *ContractError, got %v", err)
	return ce
}

var _ = Describe("ValidateQuestions", func() {
	var payload generation.QuestionBatchPayload

	BeforeEach(func() {
		payload = generationtest.QuestionBatch()
	})

	It("accepts a batch matching every rule", func() {
		drafts, err := generation.ValidateQuestions(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(drafts).To(HaveLen(generation.QuestionBatchSize))

		counts := map[model.Category]int{}
		for _, d := range drafts {
			counts[d.Category]++
			Expect(d.Options).To(HaveLen(4))
			Expect(d.Options[3].ScoreValue).To(Equal(1.0))
		}
		Expect(counts).To(Equal(generation.QuestionTargets))
	})

	It("rejects a critical question above the tier range at its index", func() {
		Expect(payload.Questions[7].IssueTier).To(Equal(string(model.IssueTierCritical)))
		payload.Questions[7].MaxImpactPoints = logger.Ptr(16.0)

		drafts, err := generation.ValidateQuestions(payload)
		Expect(drafts).To(BeNil())
		Expect(err).To(MatchError(generation.ErrContractViolation))
		Expect(err).To(MatchError(generation.ErrImpactOutOfRange))

		ce := asContractError(err)
		Expect(ce.Index).To(Equal(7))
		Expect(ce.Field).To(Equal("max_impact_points"))
		Expect(ce.Received).To(Equal("16"))
		Expect(ce.Error()).To(ContainSubstring("questions[7].max_impact_points"))
		Expect(ce.Error()).To(ContainSubstring("CRITICAL range 12-15"))
	})

	It("accepts impact points on the shared tier boundary", func() {
		payload.Questions[2].MaxImpactPoints = logger.Ptr(12.0)
		payload.Questions[7].MaxImpactPoints = logger.Ptr(12.0)
		_, err := generation.ValidateQuestions(payload)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a batch that is one short", func() {
		payload.Questions = payload.Questions[:29]
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrBatchSize))

		ce := asContractError(err)
		Expect(ce.Index).To(Equal(-1))
		Expect(ce.Expected).To(Equal("30"))
		Expect(ce.Received).To(Equal("29"))
	})

	It("rejects a batch whose category counts drift", func() {
		// Index 0 is FINANCIAL; moving it leaves 6 FINANCIAL and 4 LEGAL_TAX.
		payload.Questions[0].Category = string(model.CategoryLegalTax)
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrCategoryDistribution))
		Expect(asContractError(err).Field).To(Equal("category"))
	})

	It("rejects options out of worst-to-best order", func() {
		opts := payload.Questions[3].Options
		opts[1].ScoreValue, opts[2].ScoreValue = opts[2].ScoreValue, opts[1].ScoreValue
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrOptionScores))

		ce := asContractError(err)
		Expect(ce.Index).To(Equal(3))
		Expect(ce.Field).To(Equal("options[1].score_value"))
	})

	It("rejects a question with three options", func() {
		payload.Questions[4].Options = payload.Questions[4].Options[:3]
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrOptionCount))
		Expect(asContractError(err).Index).To(Equal(4))
	})

	It("rejects unknown enum values", func() {
		payload.Questions[5].IssueTier = "MINOR"
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrUnknownEnum))
		Expect(asContractError(err).Field).To(Equal("issue_tier"))
	})

	It("rejects blank question text", func() {
		payload.Questions[6].QuestionText = "   "
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrMissingText))
	})

	It("rejects a question without max impact points", func() {
		payload.Questions[11].MaxImpactPoints = nil
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrMissingField))

		ce := asContractError(err)
		Expect(ce.Index).To(Equal(11))
		Expect(ce.Field).To(Equal("max_impact_points"))
		Expect(ce.Received).To(Equal("nothing"))
	})

	It("rejects an option without a score even at the zero level", func() {
		payload.Questions[0].Options[0].ScoreValue = nil
		_, err := generation.ValidateQuestions(payload)
		Expect(err).To(MatchError(generation.ErrMissingField))

		ce := asContractError(err)
		Expect(ce.Index).To(Equal(0))
		Expect(ce.Field).To(Equal("options[0].score_value"))
	})

	It("reports only the first violation", func() {
		payload.Questions[2].MaxImpactPoints = logger.Ptr(40.0)
		payload.Questions[9].Category = "HR"
		_, err := generation.ValidateQuestions(payload)
		Expect(asContractError(err).Index).To(Equal(2))
	})
})

var _ = Describe("DecodeQuestions", func() {
	It("decodes a well-formed batch", func() {
		drafts, err := generation.DecodeQuestions(generationtest.JSON(generationtest.QuestionBatch()))
		Expect(err).NotTo(HaveOccurred())
		Expect(drafts).To(HaveLen(30))
	})

	It("rejects malformed JSON", func() {
		_, err := generation.DecodeQuestions([]byte(`{"questions": [`))
		Expect(err).To(MatchError(generation.ErrMalformedOutput))
		Expect(asContractError(err).Index).To(Equal(-1))
	})

	It("rejects unknown fields", func() {
		_, err := generation.DecodeQuestions([]byte(`{"questions": [], "notes": "x"}`))
		Expect(err).To(MatchError(generation.ErrMalformedOutput))
	})

	It("rejects a batch where an option omits score_value", func() {
		raw := generationtest.JSON(generationtest.QuestionBatch())
		Expect(raw).To(ContainSubstring(`,"score_value":0}`))
		raw = bytes.Replace(raw, []byte(`,"score_value":0}`), []byte(`}`), 1)

		_, err := generation.DecodeQuestions(raw)
		Expect(err).To(MatchError(generation.ErrMissingField))
		ce := asContractError(err)
		Expect(ce.Index).To(Equal(0))
		Expect(ce.Field).To(Equal("options[0].score_value"))
	})

	It("rejects trailing data", func() {
		raw := append(generationtest.JSON(generationtest.QuestionBatch()), []byte(` {}`)...)
		_, err := generation.DecodeQuestions(raw)
		Expect(err).To(MatchError(generation.ErrMalformedOutput))
	})
})

var _ = Describe("ValidateTasks", func() {
	valid := func() generation.TaskBatchPayload {
		return generation.TaskBatchPayload{Tasks: []generation.TaskPayload{
			generationtest.Task(101, model.IssueTierCritical, model.EffortLow, 0, 0.33),
			generationtest.Task(101, model.IssueTierCritical, model.EffortModerate, 0.33, 0.67),
			generationtest.Task(202, model.IssueTierOptimization, model.EffortMajor, 0.67, 1),
		}}
	}

	It("accepts single-level upgrades", func() {
		drafts, err := generation.ValidateTasks(valid())
		Expect(err).NotTo(HaveOccurred())
		Expect(drafts).To(HaveLen(3))
		Expect(drafts[0].QuestionID).To(Equal(int64(101)))
		Expect(drafts[2].ScoreImprovement()).To(BeNumerically("~", 0.33, 1e-9))
	})

	It("snaps near-level scores to the canonical levels", func() {
		p := valid()
		p.Tasks[0].ToScore = logger.Ptr(0.33 + 1e-9)
		drafts, err := generation.ValidateTasks(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(drafts[0].ToScore).To(Equal(0.33))
	})

	DescribeTable("rejects a task that is not one level up",
		func(from, to float64, field string) {
			p := valid()
			p.Tasks[1].FromScore, p.Tasks[1].ToScore = logger.Ptr(from), logger.Ptr(to)
			_, err := generation.ValidateTasks(p)
			Expect(err).To(MatchError(generation.ErrNotAdjacentUpgrade))
			ce := asContractError(err)
			Expect(ce.Index).To(Equal(1))
			Expect(ce.Field).To(Equal(field))
		},
		Entry("skipping a level", 0.0, 0.67, "to_score"),
		Entry("a downgrade", 0.67, 0.33, "to_score"),
		Entry("no change", 0.33, 0.33, "to_score"),
		Entry("starting at the top", 1.0, 1.0, "from_score"),
		Entry("an off-level start", 0.5, 0.67, "from_score"),
	)

	DescribeTable("rejects values outside the closed sets",
		func(mutate func(*generation.TaskPayload), field string) {
			p := valid()
			mutate(&p.Tasks[0])
			_, err := generation.ValidateTasks(p)
			Expect(err).To(MatchError(generation.ErrUnknownEnum))
			Expect(asContractError(err).Field).To(Equal(field))
		},
		Entry("category", func(t *generation.TaskPayload) { t.Category = "HR" }, "category"),
		Entry("issue tier", func(t *generation.TaskPayload) { t.IssueTier = "critical" }, "issue_tier"),
		Entry("effort", func(t *generation.TaskPayload) { t.EffortLevel = "EXTREME" }, "effort_level"),
		Entry("complexity", func(t *generation.TaskPayload) { t.Complexity = "" }, "complexity"),
	)

	DescribeTable("rejects a task missing a score",
		func(mutate func(*generation.TaskPayload), field string) {
			p := valid()
			mutate(&p.Tasks[1])
			_, err := generation.ValidateTasks(p)
			Expect(err).To(MatchError(generation.ErrMissingField))
			ce := asContractError(err)
			Expect(ce.Index).To(Equal(1))
			Expect(ce.Field).To(Equal(field))
		},
		Entry("from_score", func(t *generation.TaskPayload) { t.FromScore = nil }, "from_score"),
		Entry("to_score", func(t *generation.TaskPayload) { t.ToScore = nil }, "to_score"),
	)

	It("does not read an absent from_score as the zero level", func() {
		raw := []byte(`{"tasks": [{"title": "Close the books monthly", "description": "Monthly close within 10 days.",
			"question_id": "101", "category": "FINANCIAL", "issue_tier": "CRITICAL",
			"effort_level": "LOW", "complexity": "SIMPLE", "to_score": 0.33}]}`)
		drafts, err := generation.DecodeTasks(raw)
		Expect(drafts).To(BeNil())
		Expect(err).To(MatchError(generation.ErrMissingField))
		Expect(asContractError(err).Field).To(Equal("from_score"))
	})

	It("rejects an explicit null score", func() {
		raw := []byte(`{"tasks": [{"title": "Close the books monthly", "description": "Monthly close within 10 days.",
			"question_id": "101", "category": "FINANCIAL", "issue_tier": "CRITICAL",
			"effort_level": "LOW", "complexity": "SIMPLE", "from_score": 0, "to_score": null}]}`)
		_, err := generation.DecodeTasks(raw)
		Expect(err).To(MatchError(generation.ErrMissingField))
		Expect(asContractError(err).Field).To(Equal("to_score"))
	})

	It("rejects a malformed question id", func() {
		p := valid()
		p.Tasks[2].QuestionID = "q-202"
		_, err := generation.ValidateTasks(p)
		Expect(err).To(MatchError(generation.ErrInvalidReference))
		Expect(asContractError(err).Index).To(Equal(2))
	})

	It("rejects a repeated upgrade path", func() {
		p := valid()
		p.Tasks = append(p.Tasks, generationtest.Task(101, model.IssueTierCritical, model.EffortHigh, 0, 0.33))
		_, err := generation.ValidateTasks(p)
		Expect(err).To(MatchError(generation.ErrDuplicateUpgrade))
		ce := asContractError(err)
		Expect(ce.Index).To(Equal(3))
		Expect(ce.Expected).To(ContainSubstring("tasks[0]"))
	})

	It("rejects empty and oversized batches", func() {
		_, err := generation.ValidateTasks(generation.TaskBatchPayload{})
		Expect(err).To(MatchError(generation.ErrBatchSize))

		var p generation.TaskBatchPayload
		for i := 0; i <= generation.MaxTaskBatchSize; i++ {
			p.Tasks = append(p.Tasks, generationtest.Task(int64(i+1), model.IssueTierSignificant, model.EffortLow, 0, 0.33))
		}
		_, err = generation.ValidateTasks(p)
		Expect(err).To(MatchError(generation.ErrBatchSize))
	})
})
