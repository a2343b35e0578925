package store

import (
	"context"

	"github.com/bradfeldman/exit-osx-sub006/common/id"
	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	if task.ID == 0 {
		task.ID = id.New()
	}
	status := task.Status
	if status == "" {
		status = model.TaskStatusPending
	}
	row, err := s.queries.InsertTask(ctx, sqlc.InsertTaskParams{
		ID:                   task.ID,
		CompanyID:            task.CompanyID,
		SnapshotID:           task.SnapshotID,
		QuestionID:           task.QuestionID,
		Title:                task.Title,
		Description:          task.Description,
		Category:             string(task.Category),
		UpgradesFromOptionID: task.UpgradesFromOptionID,
		UpgradesToOptionID:   task.UpgradesToOptionID,
		FromScore:            task.FromScore,
		ToScore:              task.ToScore,
		IssueTier:            string(task.IssueTier),
		EffortLevel:          string(task.EffortLevel),
		Complexity:           string(task.Complexity),
		RawImpact:            task.RawImpact,
		NormalizedValue:      task.NormalizedValue,
		ImpactLevel:          int32(task.ImpactLevel),
		DifficultyLevel:      int32(task.DifficultyLevel),
		PriorityRank:         task.PriorityRank,
		Status:               string(status),
	})
	if err != nil {
		return model.Task{}, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) GetByID(ctx context.Context, id int64) (model.Task, error) {
	row, err := s.queries.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, notFound(err)
	}
	return toTaskModel(row), nil
}

func (s *taskStore) GetForUpdate(ctx context.Context, id int64) (model.Task, error) {
	row, err := s.queries.GetTaskForUpdate(ctx, id)
	if err != nil {
		return model.Task{}, notFound(err)
	}
	return toTaskModel(row), nil
}

func (s *taskStore) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (model.Task, error) {
	row, err := s.queries.UpdateTaskStatus(ctx, sqlc.UpdateTaskStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return model.Task{}, notFound(err)
	}
	return toTaskModel(row), nil
}

func (s *taskStore) Complete(ctx context.Context, id int64, completedValue float64) (model.Task, error) {
	row, err := s.queries.CompleteTask(ctx, sqlc.CompleteTaskParams{
		ID:             id,
		CompletedValue: &completedValue,
	})
	if err != nil {
		return model.Task{}, notFound(err)
	}
	return toTaskModel(row), nil
}

func (s *taskStore) DeletePending(ctx context.Context, companyID int64) (int64, error) {
	return s.queries.DeletePendingTasksByCompany(ctx, companyID)
}

func (s *taskStore) ListByCompany(ctx context.Context, companyID int64) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = toTaskModel(row)
	}
	return tasks, nil
}

func (s *taskStore) SummarizeByStatus(ctx context.Context, companyID int64) (model.DossierTasks, error) {
	rows, err := s.queries.SummarizeTasksByStatus(ctx, companyID)
	if err != nil {
		return model.DossierTasks{}, err
	}
	summary := model.DossierTasks{ByStatus: make(map[model.TaskStatus]int, len(rows))}
	for _, row := range rows {
		summary.ByStatus[model.TaskStatus(row.Status)] = int(row.TaskCount)
		summary.CompletedValue += row.CompletedValue
	}
	return summary, nil
}

func toTaskModel(row sqlc.Task) model.Task {
	return model.Task{
		ID:                   row.ID,
		CompanyID:            row.CompanyID,
		SnapshotID:           row.SnapshotID,
		QuestionID:           row.QuestionID,
		Title:                row.Title,
		Description:          row.Description,
		Category:             model.Category(row.Category),
		UpgradesFromOptionID: row.UpgradesFromOptionID,
		UpgradesToOptionID:   row.UpgradesToOptionID,
		FromScore:            row.FromScore,
		ToScore:              row.ToScore,
		IssueTier:            model.IssueTier(row.IssueTier),
		EffortLevel:          model.EffortLevel(row.EffortLevel),
		Complexity:           model.Complexity(row.Complexity),
		RawImpact:            row.RawImpact,
		NormalizedValue:      row.NormalizedValue,
		ImpactLevel:          model.ImpactLevel(row.ImpactLevel),
		DifficultyLevel:      model.DifficultyLevel(row.DifficultyLevel),
		PriorityRank:         row.PriorityRank,
		Status:               model.TaskStatus(row.Status),
		CompletedValue:       row.CompletedValue,
		CompletedAt:          pgTimePtr(row.CompletedAt),
		CreatedAt:            row.CreatedAt.Time,
		UpdatedAt:            row.UpdatedAt.Time,
	}
}
