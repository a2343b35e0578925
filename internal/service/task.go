package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

// ErrUnpricedSnapshot means the snapshot has no defined valuation, so there is
// no value gap to price tasks against.
var ErrUnpricedSnapshot = errors.New("snapshot has no defined valuation")

type TaskService interface {
	// Regenerate replaces the company's PENDING tasks with drafts priced
	// against snap's value gap. Tasks in any other status are left untouched.
	Regenerate(ctx context.Context, snap model.ValuationSnapshot, drafts []model.TaskDraft) (allocation.Outcome, error)
	Transition(ctx context.Context, taskID int64, to model.TaskStatus) (model.Task, error)
	List(ctx context.Context, companyID int64) ([]model.Task, error)
}

type taskService struct {
	tasks    store.TaskStore
	txRunner TxRunner
	split    allocation.TierSplit
	divisors allocation.EffortDivisors
	now      func() time.Time
}

func NewTaskService(tasks store.TaskStore, txRunner TxRunner, split allocation.TierSplit, divisors allocation.EffortDivisors) TaskService {
	return &taskService{
		tasks:    tasks,
		txRunner: txRunner,
		split:    split,
		divisors: divisors,
		now:      time.Now,
	}
}

func (s *taskService) Regenerate(ctx context.Context, snap model.ValuationSnapshot, drafts []model.TaskDraft) (allocation.Outcome, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID:  logger.Ptr(snap.CompanyID),
		SnapshotID: logger.Ptr(snap.ID),
		Component:  "exitosx.service.tasks",
	})

	if err := requirePriced(snap); err != nil {
		return allocation.Outcome{}, err
	}
	gap := *snap.ValueGap

	var (
		outcome allocation.Outcome
		deleted int64
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		questions, err := referencedQuestions(ctx, sp.Questions(), drafts)
		if err != nil {
			return err
		}

		outcome, err = allocation.Allocate(allocation.Input{
			CompanyID:  snap.CompanyID,
			SnapshotID: logger.Ptr(snap.ID),
			ValueGap:   gap,
			Drafts:     drafts,
			Questions:  questions,
			Split:      s.split,
			Divisors:   s.divisors,
		})
		if err != nil {
			return err
		}

		if deleted, err = sp.Tasks().DeletePending(ctx, snap.CompanyID); err != nil {
			return fmt.Errorf("deleting pending tasks: %w", err)
		}

		for i, task := range outcome.Tasks {
			created, err := sp.Tasks().Create(ctx, task)
			if err != nil {
				return fmt.Errorf("creating task %d: %w", i, err)
			}
			outcome.Tasks[i] = created
		}
		return nil
	})
	if err != nil {
		return allocation.Outcome{}, err
	}

	for _, sk := range outcome.SkippedTasks {
		slog.WarnContext(ctx, "task draft skipped",
			"index", sk.Index,
			"question_id", sk.QuestionID,
			"reason", sk.Reason)
	}
	slog.InfoContext(ctx, "tasks regenerated",
		"created", outcome.Created,
		"skipped", outcome.Skipped,
		"replaced_pending", deleted,
		"value_gap", gap)
	return outcome, nil
}

func requirePriced(snap model.ValuationSnapshot) error {
	if snap.Status != model.ValuationStatusComputed || snap.ValueGap == nil {
		return fmt.Errorf("%w: snapshot %d is %s", ErrUnpricedSnapshot, snap.ID, snap.Status)
	}
	return nil
}

// referencedQuestions loads every question the drafts point at. Missing ones
// are left out so the allocator can count them as skipped.
func referencedQuestions(ctx context.Context, questions store.QuestionStore, drafts []model.TaskDraft) (map[int64]model.Question, error) {
	out := make(map[int64]model.Question, len(drafts))
	for _, d := range drafts {
		if _, ok := out[d.QuestionID]; ok {
			continue
		}
		q, err := questions.GetByID(ctx, d.QuestionID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("getting question %d: %w", d.QuestionID, err)
		}
		out[q.ID] = q
	}
	return out, nil
}

func (s *taskService) Transition(ctx context.Context, taskID int64, to model.TaskStatus) (model.Task, error) {
	var updated model.Task
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		current, err := sp.Tasks().GetForUpdate(ctx, taskID)
		if err != nil {
			return fmt.Errorf("getting task: %w", err)
		}

		next, err := allocation.Transition(current, to, s.now())
		if err != nil {
			return err
		}

		if to == model.TaskStatusCompleted {
			updated, err = sp.Tasks().Complete(ctx, taskID, *next.CompletedValue)
		} else {
			updated, err = sp.Tasks().UpdateStatus(ctx, taskID, to)
		}
		if err != nil {
			return fmt.Errorf("updating task: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: logger.Ptr(updated.CompanyID),
		Component: "exitosx.service.tasks",
	})
	slog.InfoContext(ctx, "task status changed",
		"task_id", taskID,
		"status", updated.Status)
	return updated, nil
}

func (s *taskService) List(ctx context.Context, companyID int64) ([]model.Task, error) {
	return s.tasks.ListByCompany(ctx, companyID)
}
