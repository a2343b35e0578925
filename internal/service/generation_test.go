package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/dossier"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation/generationtest"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

var _ = Describe("GenerationService", func() {
	var (
		ctx context.Context
		sp  *mockStoreProvider
		tx  *mockTxRunner
		gen *generationtest.Generator
		svc service.GenerationService
	)

	BeforeEach(func() {
		ctx = context.Background()
		sp = newMockStoreProvider()
		tx = &mockTxRunner{stores: sp}
		gen = &generationtest.Generator{}

		agg := dossier.NewAggregator(sp.companies, sp.assessments, sp.valuations, sp.tasks, sp.dossiers)
		runner := generation.NewRunner(gen, sp.logs)
		tasks := service.NewTaskService(sp.tasks, tx, allocation.DefaultTierSplit(), allocation.DefaultEffortDivisors())
		svc = service.NewGenerationService(sp.weights, sp.assessments, sp.valuations, tx, agg, runner, tasks)

		sp.companies.getByIDFn = func(_ context.Context, id int64) (model.Company, error) {
			return model.Company{ID: id, Name: "Acme Plumbing"}, nil
		}
	})

	Describe("GenerateQuestions", func() {
		It("retires the active batch and inserts the new one together", func() {
			sp.questions.getActiveBatchFn = func(_ context.Context, _ int64) (model.QuestionBatch, error) {
				return model.QuestionBatch{ID: 300, IsActive: true}, nil
			}
			gen.Responses = [][]byte{generationtest.JSON(generationtest.QuestionBatch())}

			batch, err := svc.GenerateQuestions(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(batch.ID).To(Equal(int64(500)))
			Expect(batch.Source).To(Equal(model.QuestionSourceGenerated))
			Expect(tx.txs).To(Equal(1))

			Expect(sp.questions.retired).To(Equal([]int64{300}))
			Expect(sp.questions.created).To(HaveLen(30))
			first := sp.questions.created[0]
			Expect(first.BatchID).To(Equal(int64(500)))
			Expect(*first.CompanyID).To(Equal(int64(7)))
			Expect(first.DisplayOrder).To(Equal(int32(1)))
			Expect(first.Options).To(HaveLen(4))

			Expect(sp.dossiers.created).To(HaveLen(1))
			Expect(sp.logs.created).To(HaveLen(1))
			Expect(sp.logs.created[0].Outcome).To(Equal(model.GenerationAccepted))
		})

		It("leaves the active batch alone when the batch is rejected", func() {
			batch := generationtest.QuestionBatch()
			batch.Questions = batch.Questions[:29]
			gen.Responses = [][]byte{generationtest.JSON(batch)}

			_, err := svc.GenerateQuestions(ctx, 7)
			Expect(err).To(MatchError(generation.ErrContractViolation))
			Expect(tx.txs).To(BeZero())
			Expect(sp.questions.retired).To(BeEmpty())
			Expect(sp.logs.created[0].Outcome).To(Equal(model.GenerationRejected))
		})

		It("surfaces generator failures distinctly", func() {
			gen.Err = errors.New("timeout")
			_, err := svc.GenerateQuestions(ctx, 7)
			Expect(err).To(MatchError(generation.ErrGeneratorFailed))
			Expect(err).NotTo(MatchError(generation.ErrContractViolation))
		})

		It("rolls back when an insert fails", func() {
			gen.Responses = [][]byte{generationtest.JSON(generationtest.QuestionBatch())}
			sp.questions.createFn = func(_ context.Context, _ model.Question) (model.Question, error) {
				return model.Question{}, errors.New("db down")
			}
			_, err := svc.GenerateQuestions(ctx, 7)
			Expect(err).To(HaveOccurred())
			Expect(tx.rollbacks).To(Equal(1))
		})

		It("includes the weakest categories in the prompt", func() {
			sp.assessments.getLatestCompletedFn = func(_ context.Context, _ int64) (model.Assessment, error) {
				return model.Assessment{ID: 11, Status: model.AssessmentStatusCompleted}, nil
			}
			sp.assessments.listScoredResponsesFn = func(_ context.Context, _ int64) ([]model.ScoredResponse, error) {
				return []model.ScoredResponse{
					{ResponseID: 1, Category: model.CategoryPersonal, MaxImpactPoints: 6, ScoreValue: 0, QuestionActive: true, ConfidenceLevel: model.ConfidenceConfident},
				}, nil
			}
			gen.Responses = [][]byte{generationtest.JSON(generationtest.QuestionBatch())}

			_, err := svc.GenerateQuestions(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(gen.Prompts()[0].User).To(ContainSubstring("PERSONAL: 0.00"))
		})
	})

	Describe("GenerateTasks", func() {
		BeforeEach(func() {
			sp.valuations.getLatestFn = func(_ context.Context, companyID int64) (model.ValuationSnapshot, error) {
				return model.ValuationSnapshot{ID: 21, CompanyID: companyID, AssessmentID: 11, Status: model.ValuationStatusComputed, ValueGap: f64(2400000)}, nil
			}
			sp.assessments.listScoredResponsesFn = func(_ context.Context, _ int64) ([]model.ScoredResponse, error) {
				return []model.ScoredResponse{
					{ResponseID: 1, QuestionID: 1, Category: model.CategoryOperational, MaxImpactPoints: 14, ScoreValue: 0.33, QuestionActive: true, ConfidenceLevel: model.ConfidenceConfident},
				}, nil
			}
			sp.questions.getByIDFn = func(_ context.Context, id int64) (model.Question, error) {
				return storedQuestion(id), nil
			}
		})

		It("allocates the validated batch", func() {
			gen.Responses = [][]byte{generationtest.JSON(generation.TaskBatchPayload{Tasks: []generation.TaskPayload{
				generationtest.Task(1, model.IssueTierCritical, model.EffortLow, 0.33, 0.67),
			}})}

			out, err := svc.GenerateTasks(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Created).To(Equal(1))
			Expect(out.Tasks[0].RawImpact).To(BeNumerically("~", 1440000*0.34, 1e-6))
			Expect(gen.Prompts()[0].User).To(ContainSubstring(`question_id "1"`))
		})

		It("does not touch tasks when the batch is rejected", func() {
			gen.Responses = [][]byte{generationtest.JSON(generation.TaskBatchPayload{Tasks: []generation.TaskPayload{
				generationtest.Task(1, model.IssueTierCritical, model.EffortLow, 0, 0.67),
			}})}

			_, err := svc.GenerateTasks(ctx, 7)
			Expect(err).To(MatchError(generation.ErrNotAdjacentUpgrade))
			Expect(sp.tasks.calls).To(BeEmpty())
		})

		It("requires a snapshot", func() {
			sp.valuations.getLatestFn = nil
			_, err := svc.GenerateTasks(ctx, 7)
			Expect(err).To(MatchError(service.ErrNoSnapshot))
		})

		It("does not call the generator when the valuation is undefined", func() {
			sp.valuations.getLatestFn = func(_ context.Context, companyID int64) (model.ValuationSnapshot, error) {
				return model.ValuationSnapshot{ID: 22, CompanyID: companyID, AssessmentID: 11, Status: model.ValuationStatusNoEBITDA}, nil
			}
			_, err := svc.GenerateTasks(ctx, 7)
			Expect(err).To(MatchError(service.ErrUnpricedSnapshot))
			Expect(gen.Prompts()).To(BeEmpty())
			Expect(sp.tasks.calls).To(BeEmpty())
		})
	})
})
