package allocation

import (
	"errors"
	"fmt"
	"time"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

var ErrInvalidTransition = errors.New("invalid task status transition")

var transitions = map[model.TaskStatus][]model.TaskStatus{
	model.TaskStatusPending: {
		model.TaskStatusInProgress,
		model.TaskStatusDeferred,
		model.TaskStatusBlocked,
		model.TaskStatusCancelled,
	},
	model.TaskStatusInProgress: {
		model.TaskStatusCompleted,
		model.TaskStatusDeferred,
		model.TaskStatusBlocked,
		model.TaskStatusCancelled,
	},
	model.TaskStatusDeferred: {model.TaskStatusPending},
	model.TaskStatusBlocked:  {model.TaskStatusPending},
}

func CanTransition(from, to model.TaskStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves task to status to. Completing a task freezes its current
// normalized value so later re-scoring cannot change the credit earned.
func Transition(task model.Task, to model.TaskStatus, now time.Time) (model.Task, error) {
	if !to.IsValid() || !CanTransition(task.Status, to) {
		return task, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, task.Status, to)
	}

	task.Status = to
	task.UpdatedAt = now
	if to == model.TaskStatusCompleted {
		value := task.NormalizedValue
		task.CompletedValue = &value
		task.CompletedAt = &now
	}
	return task, nil
}
