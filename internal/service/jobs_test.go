package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

var _ = Describe("JobService", func() {
	var (
		ctx         context.Context
		companies   *mockCompanyStore
		assessments *mockAssessmentStore
		producer    *mockProducer
		svc         service.JobService
	)

	BeforeEach(func() {
		ctx = context.Background()
		companies = &mockCompanyStore{}
		assessments = &mockAssessmentStore{
			getByIDFn: func(_ context.Context, id int64) (model.Assessment, error) {
				return model.Assessment{ID: id, CompanyID: 7, Status: model.AssessmentStatusCompleted}, nil
			},
		}
		producer = &mockProducer{}
		svc = service.NewJobService(companies, assessments, producer, nil)
	})

	It("enqueues a scoring job for a completed assessment", func() {
		job, err := svc.Enqueue(ctx, service.EnqueueParams{
			JobType:      queue.JobTypeScoreAssessment,
			CompanyID:    7,
			AssessmentID: i64(11),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(job.Attempt).To(Equal(1))
		Expect(producer.jobs).To(HaveLen(1))
	})

	It("rejects unknown job types", func() {
		_, err := svc.Enqueue(ctx, service.EnqueueParams{JobType: queue.JobType("reindex"), CompanyID: 7})
		Expect(err).To(MatchError(queue.ErrInvalidJob))
		Expect(producer.jobs).To(BeEmpty())
	})

	It("rejects unknown companies", func() {
		companies.getByIDFn = func(_ context.Context, _ int64) (model.Company, error) {
			return model.Company{}, store.ErrNotFound
		}
		_, err := svc.Enqueue(ctx, service.EnqueueParams{JobType: queue.JobTypeGenerateQuestions, CompanyID: 7})
		Expect(err).To(MatchError(service.ErrCompanyNotFound))
	})

	It("rejects scoring an assessment in progress", func() {
		assessments.getByIDFn = func(_ context.Context, id int64) (model.Assessment, error) {
			return model.Assessment{ID: id, CompanyID: 7, Status: model.AssessmentStatusInProgress}, nil
		}
		_, err := svc.Enqueue(ctx, service.EnqueueParams{JobType: queue.JobTypeScoreAssessment, CompanyID: 7, AssessmentID: i64(11)})
		Expect(err).To(MatchError(service.ErrAssessmentNotCompleted))
	})

	It("wraps producer failures", func() {
		producer.enqueueFn = func(context.Context, queue.Job) error { return errors.New("redis down") }
		_, err := svc.Enqueue(ctx, service.EnqueueParams{JobType: queue.JobTypeGenerateTasks, CompanyID: 7})
		Expect(err).To(MatchError(ContainSubstring("enqueueing job")))
	})
})
