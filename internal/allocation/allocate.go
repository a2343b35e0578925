package allocation

import (
	"errors"
	"fmt"
	"math"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

var ErrInvalidValueGap = errors.New("value gap must be a finite non-negative amount")

// SkipReason says why a draft could not be bound to stored question options.
type SkipReason string

const (
	SkipUnknownQuestion  SkipReason = "unknown_question"
	SkipInactiveQuestion SkipReason = "inactive_question"
	SkipMissingOption    SkipReason = "missing_option"
	SkipForeignQuestion  SkipReason = "foreign_question"
	SkipCategoryMismatch SkipReason = "category_mismatch"
)

type SkippedTask struct {
	Index      int
	QuestionID int64
	Reason     SkipReason
}

// TierAllocation reports how a tier's budget was spent. Allocated plus
// Unallocated always equals Budget; a tier without tasks keeps its whole
// budget unallocated and nothing is moved to other tiers.
type TierAllocation struct {
	Tier        model.IssueTier
	Share       float64
	Budget      float64
	Tasks       int
	Allocated   float64
	Unallocated float64
}

type Outcome struct {
	// Tasks are ordered by PriorityRank.
	Tasks        []model.Task
	Created      int
	Skipped      int
	SkippedTasks []SkippedTask
	Tiers        []TierAllocation
}

type Input struct {
	CompanyID  int64
	SnapshotID *int64
	ValueGap   float64
	Drafts     []model.TaskDraft
	// Questions holds the stored questions drafts may reference, keyed by id.
	// Only shared template questions and questions of CompanyID resolve.
	Questions map[int64]model.Question
	Split     TierSplit
	Divisors  EffortDivisors
}

// Allocate prices the drafts against the value gap. Configuration is checked
// before any draft is looked at. Drafts whose question or options cannot be
// resolved by exact score are skipped and counted, never clamped.
//
// For a tier with budget B and N resolved tasks each task gets
// rawImpact = B/N * (toScore - fromScore) and
// normalizedValue = rawImpact / effort divisor.
func Allocate(in Input) (Outcome, error) {
	if err := in.Split.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := in.Divisors.Validate(); err != nil {
		return Outcome{}, err
	}
	if math.IsNaN(in.ValueGap) || math.IsInf(in.ValueGap, 0) || in.ValueGap < 0 {
		return Outcome{}, fmt.Errorf("%w: %v", ErrInvalidValueGap, in.ValueGap)
	}

	var out Outcome
	resolved := make([]model.Task, 0, len(in.Drafts))
	perTier := make(map[model.IssueTier]int, len(model.IssueTiers))

	for i, d := range in.Drafts {
		task, reason, ok := resolve(in, d)
		if !ok {
			out.SkippedTasks = append(out.SkippedTasks, SkippedTask{Index: i, QuestionID: d.QuestionID, Reason: reason})
			continue
		}
		perTier[task.IssueTier]++
		resolved = append(resolved, task)
	}

	allocated := make(map[model.IssueTier]float64, len(model.IssueTiers))
	for i := range resolved {
		t := &resolved[i]
		budget := in.ValueGap * in.Split[t.IssueTier]
		t.RawImpact = budget / float64(perTier[t.IssueTier]) * t.ScoreImprovement()

		div, err := in.Divisors.divisor(t.EffortLevel)
		if err != nil {
			return Outcome{}, err
		}
		t.NormalizedValue = t.RawImpact / div
		allocated[t.IssueTier] += t.RawImpact
	}

	for _, tier := range model.IssueTiers {
		budget := in.ValueGap * in.Split[tier]
		out.Tiers = append(out.Tiers, TierAllocation{
			Tier:        tier,
			Share:       in.Split[tier],
			Budget:      budget,
			Tasks:       perTier[tier],
			Allocated:   allocated[tier],
			Unallocated: budget - allocated[tier],
		})
	}

	out.Tasks = Rank(resolved)
	out.Created = len(out.Tasks)
	out.Skipped = len(out.SkippedTasks)
	return out, nil
}

func resolve(in Input, d model.TaskDraft) (model.Task, SkipReason, bool) {
	q, ok := in.Questions[d.QuestionID]
	if !ok {
		return model.Task{}, SkipUnknownQuestion, false
	}
	if q.CompanyID != nil && *q.CompanyID != in.CompanyID {
		return model.Task{}, SkipForeignQuestion, false
	}
	if !q.IsActive {
		return model.Task{}, SkipInactiveQuestion, false
	}
	if d.Category != q.Category {
		return model.Task{}, SkipCategoryMismatch, false
	}
	from, okFrom := q.OptionWithScore(d.FromScore)
	to, okTo := q.OptionWithScore(d.ToScore)
	if !okFrom || !okTo {
		return model.Task{}, SkipMissingOption, false
	}

	return model.Task{
		CompanyID:            in.CompanyID,
		SnapshotID:           in.SnapshotID,
		QuestionID:           q.ID,
		Title:                d.Title,
		Description:          d.Description,
		Category:             q.Category,
		UpgradesFromOptionID: from.ID,
		UpgradesToOptionID:   to.ID,
		FromScore:            from.ScoreValue,
		ToScore:              to.ScoreValue,
		IssueTier:            d.IssueTier,
		EffortLevel:          d.EffortLevel,
		Complexity:           d.Complexity,
		Status:               model.TaskStatusPending,
	}, "", true
}
