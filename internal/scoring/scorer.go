package scoring

import (
	"sort"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// CategoryScore is the accumulated score of one answered category.
type CategoryScore struct {
	Category model.Category
	Score    float64
	Earned   float64
	Total    float64
	Answered int
}

// Result is the output of one scoring pass. Scores only holds answered
// categories; the rest are listed in Unanswered, never defaulted.
type Result struct {
	Scores     map[model.Category]float64
	Categories []CategoryScore
	Unanswered []model.Category
	Weights    Weights

	// Excluded counts responses left out: not applicable or on a retired question.
	Excluded int

	applicable []model.ScoredResponse
}

// Score computes per-category scores from the effective option of each response.
// Weights are validated first: scoring never proceeds without a valid configuration.
func Score(responses []model.ScoredResponse, weights Weights) (Result, error) {
	if err := weights.Validate(); err != nil {
		return Result{}, err
	}

	acc := make(map[model.Category]*CategoryScore, len(model.Categories))
	res := Result{
		Scores:  make(map[model.Category]float64, len(model.Categories)),
		Weights: weights.Clone(),
	}

	for _, r := range responses {
		if !applicable(r) {
			res.Excluded++
			continue
		}
		cs, ok := acc[r.Category]
		if !ok {
			cs = &CategoryScore{Category: r.Category}
			acc[r.Category] = cs
		}
		cs.Earned += r.MaxImpactPoints * r.ScoreValue
		cs.Total += r.MaxImpactPoints
		cs.Answered++
		res.applicable = append(res.applicable, r)
	}

	for _, c := range model.Categories {
		cs, ok := acc[c]
		if !ok || cs.Total <= 0 {
			res.Unanswered = append(res.Unanswered, c)
			continue
		}
		cs.Score = cs.Earned / cs.Total
		res.Scores[c] = cs.Score
		res.Categories = append(res.Categories, *cs)
	}

	return res, nil
}

func applicable(r model.ScoredResponse) bool {
	if !r.QuestionActive || r.ConfidenceLevel == model.ConfidenceNotApplicable {
		return false
	}
	return r.Category.IsValid() && r.MaxImpactPoints > 0
}

// Answered lists the categories that have a score, in canonical order.
func (r Result) Answered() []model.Category {
	out := make([]model.Category, 0, len(r.Categories))
	for _, cs := range r.Categories {
		out = append(out, cs.Category)
	}
	return out
}

// WeakestCategories returns up to n answered categories, lowest score first.
// Ties keep the canonical category order.
func (r Result) WeakestCategories(n int) []CategoryScore {
	out := append([]CategoryScore(nil), r.Categories...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// WeakestResponses returns up to n applicable responses with the lowest score.
// Between equal scores the heavier question comes first, then response order.
func (r Result) WeakestResponses(n int) []model.ScoredResponse {
	out := append([]model.ScoredResponse(nil), r.applicable...)
	sort.SliceStable(out, func(i, j int) bool {
		if !model.SameScore(out[i].ScoreValue, out[j].ScoreValue) {
			return out[i].ScoreValue < out[j].ScoreValue
		}
		if out[i].MaxImpactPoints != out[j].MaxImpactPoints {
			return out[i].MaxImpactPoints > out[j].MaxImpactPoints
		}
		return out[i].ResponseID < out[j].ResponseID
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
