package model

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusDeferred   TaskStatus = "DEFERRED"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted,
		TaskStatusDeferred, TaskStatusBlocked, TaskStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

type ImpactLevel int32

const (
	ImpactLow    ImpactLevel = 1
	ImpactMedium ImpactLevel = 2
	ImpactHigh   ImpactLevel = 3
)

type DifficultyLevel int32

const (
	DifficultyEasy   DifficultyLevel = 1
	DifficultyMedium DifficultyLevel = 2
	DifficultyHard   DifficultyLevel = 3
)

type Task struct {
	ID                   int64           `json:"id"`
	CompanyID            int64           `json:"company_id"`
	SnapshotID           *int64          `json:"snapshot_id,omitempty"`
	QuestionID           int64           `json:"question_id"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Category             Category        `json:"category"`
	UpgradesFromOptionID int64           `json:"upgrades_from_option_id"`
	UpgradesToOptionID   int64           `json:"upgrades_to_option_id"`
	FromScore            float64         `json:"from_score"`
	ToScore              float64         `json:"to_score"`
	IssueTier            IssueTier       `json:"issue_tier"`
	EffortLevel          EffortLevel     `json:"effort_level"`
	Complexity           Complexity      `json:"complexity"`
	RawImpact            float64         `json:"raw_impact"`
	NormalizedValue      float64         `json:"normalized_value"`
	ImpactLevel          ImpactLevel     `json:"impact_level"`
	DifficultyLevel      DifficultyLevel `json:"difficulty_level"`
	PriorityRank         int32           `json:"priority_rank"`
	Status               TaskStatus      `json:"status"`
	CompletedValue       *float64        `json:"completed_value,omitempty"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ScoreImprovement is the score the task recovers when completed.
func (t Task) ScoreImprovement() float64 {
	return t.ToScore - t.FromScore
}

// TaskDraft is a validated generated task that has not been resolved against
// stored questions or priced yet.
type TaskDraft struct {
	Title       string
	Description string
	QuestionID  int64
	Category    Category
	IssueTier   IssueTier
	EffortLevel EffortLevel
	Complexity  Complexity
	FromScore   float64
	ToScore     float64
}

func (d TaskDraft) ScoreImprovement() float64 {
	return d.ToScore - d.FromScore
}
