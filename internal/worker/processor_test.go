package worker_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
	"github.com/bradfeldman/exit-osx-sub006/internal/worker"
)

var _ = Describe("Processor", func() {
	var (
		ctx        context.Context
		scoring    *mockScoringService
		generation *mockGenerationService
		p          *worker.Processor
	)

	BeforeEach(func() {
		ctx = context.Background()
		scoring = &mockScoringService{}
		generation = &mockGenerationService{}
		p = worker.NewProcessor(scoring, generation)
	})

	It("routes scoring jobs with their assessment", func() {
		var gotCompany, gotAssessment int64
		scoring.scoreFn = func(_ context.Context, companyID, assessmentID int64) (model.ValuationSnapshot, error) {
			gotCompany, gotAssessment = companyID, assessmentID
			return model.ValuationSnapshot{ID: 9}, nil
		}
		id := int64(11)
		Expect(p.Handle(ctx, queue.Job{Type: queue.JobTypeScoreAssessment, CompanyID: 7, AssessmentID: &id})).To(Succeed())
		Expect(gotCompany).To(Equal(int64(7)))
		Expect(gotAssessment).To(Equal(int64(11)))
	})

	It("routes question generation", func() {
		called := false
		generation.questionsFn = func(_ context.Context, companyID int64) (model.QuestionBatch, error) {
			called = companyID == 7
			return model.QuestionBatch{ID: 3}, nil
		}
		Expect(p.Handle(ctx, queue.Job{Type: queue.JobTypeGenerateQuestions, CompanyID: 7})).To(Succeed())
		Expect(called).To(BeTrue())
	})

	It("keeps the service error matchable", func() {
		scoring.scoreFn = func(context.Context, int64, int64) (model.ValuationSnapshot, error) {
			return model.ValuationSnapshot{}, service.ErrAssessmentNotCompleted
		}
		id := int64(11)
		err := p.Handle(ctx, queue.Job{Type: queue.JobTypeScoreAssessment, CompanyID: 7, AssessmentID: &id})
		Expect(err).To(MatchError(service.ErrAssessmentNotCompleted))
		Expect(worker.Permanent(err)).To(BeTrue())
	})

	It("rejects scoring jobs without an assessment", func() {
		err := p.Handle(ctx, queue.Job{Type: queue.JobTypeScoreAssessment, CompanyID: 7})
		Expect(err).To(MatchError(queue.ErrInvalidJob))
	})
})
