package handler_test

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

type mockJobService struct {
	enqueueFn func(ctx context.Context, params service.EnqueueParams) (queue.Job, error)
}

func (m *mockJobService) Enqueue(ctx context.Context, params service.EnqueueParams) (queue.Job, error) {
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, params)
	}
	return queue.Job{Type: params.JobType, CompanyID: params.CompanyID, AssessmentID: params.AssessmentID, TraceID: params.TraceID, Attempt: 1}, nil
}

type mockValuationService struct {
	historyFn func(ctx context.Context, companyID int64, limit int32) ([]model.ValuationSnapshot, error)
	latestFn  func(ctx context.Context, companyID int64) (model.ValuationSnapshot, error)
}

func (m *mockValuationService) History(ctx context.Context, companyID int64, limit int32) ([]model.ValuationSnapshot, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, companyID, limit)
	}
	return nil, nil
}

func (m *mockValuationService) Latest(ctx context.Context, companyID int64) (model.ValuationSnapshot, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx, companyID)
	}
	return model.ValuationSnapshot{}, nil
}

type mockWeightService struct {
	getFn   func(ctx context.Context, companyID int64) (scoring.Weights, bool, error)
	setFn   func(ctx context.Context, companyID int64, weights scoring.Weights) error
	clearFn func(ctx context.Context, companyID int64) error
}

func (m *mockWeightService) Get(ctx context.Context, companyID int64) (scoring.Weights, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, companyID)
	}
	return scoring.DefaultWeights(), false, nil
}

func (m *mockWeightService) Set(ctx context.Context, companyID int64, weights scoring.Weights) error {
	if m.setFn != nil {
		return m.setFn(ctx, companyID, weights)
	}
	return nil
}

func (m *mockWeightService) Clear(ctx context.Context, companyID int64) error {
	if m.clearFn != nil {
		return m.clearFn(ctx, companyID)
	}
	return nil
}

type mockTaskService struct {
	transitionFn func(ctx context.Context, taskID int64, to model.TaskStatus) (model.Task, error)
	listFn       func(ctx context.Context, companyID int64) ([]model.Task, error)
}

func (m *mockTaskService) Regenerate(_ context.Context, _ model.ValuationSnapshot, _ []model.TaskDraft) (allocation.Outcome, error) {
	return allocation.Outcome{}, nil
}

func (m *mockTaskService) Transition(ctx context.Context, taskID int64, to model.TaskStatus) (model.Task, error) {
	if m.transitionFn != nil {
		return m.transitionFn(ctx, taskID, to)
	}
	return model.Task{ID: taskID, Status: to}, nil
}

func (m *mockTaskService) List(ctx context.Context, companyID int64) ([]model.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx, companyID)
	}
	return nil, nil
}
