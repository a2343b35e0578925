package allocation

import (
	"sort"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// ImpactLevelFor maps the score a task starts from to its urgency: the lower
// the current answer, the higher the impact.
func ImpactLevelFor(fromScore float64) model.ImpactLevel {
	switch model.ScoreLevelIndex(fromScore) {
	case 0:
		return model.ImpactHigh
	case 1:
		return model.ImpactMedium
	default:
		return model.ImpactLow
	}
}

func DifficultyLevelFor(effort model.EffortLevel) model.DifficultyLevel {
	switch effort {
	case model.EffortMinimal, model.EffortLow:
		return model.DifficultyEasy
	case model.EffortModerate:
		return model.DifficultyMedium
	default:
		return model.DifficultyHard
	}
}

// priorityCell orders the 3x3 impact/difficulty grid: high impact first, and
// within one impact level the easier task first.
func priorityCell(impact model.ImpactLevel, difficulty model.DifficultyLevel) int {
	return int(model.ImpactHigh-impact)*3 + int(difficulty)
}

// Rank assigns impact and difficulty levels and a 1-based PriorityRank, and
// returns the tasks in rank order. Ties on the grid cell go to the larger raw
// impact, then to the earlier task.
func Rank(tasks []model.Task) []model.Task {
	ranked := make([]model.Task, len(tasks))
	copy(ranked, tasks)

	cells := make([]int, len(ranked))
	order := make([]int, len(ranked))
	for i := range ranked {
		ranked[i].ImpactLevel = ImpactLevelFor(ranked[i].FromScore)
		ranked[i].DifficultyLevel = DifficultyLevelFor(ranked[i].EffortLevel)
		cells[i] = priorityCell(ranked[i].ImpactLevel, ranked[i].DifficultyLevel)
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if cells[ia] != cells[ib] {
			return cells[ia] < cells[ib]
		}
		if ranked[ia].RawImpact != ranked[ib].RawImpact {
			return ranked[ia].RawImpact > ranked[ib].RawImpact
		}
		return ia < ib
	})

	out := make([]model.Task, len(ranked))
	for rank, i := range order {
		out[rank] = ranked[i]
		out[rank].PriorityRank = int32(rank + 1)
	}
	return out
}
