// Package valuation turns category scores into a multiple-based valuation.
// Everything here is a pure function of its inputs.
package valuation

import (
	"fmt"
	"math"
	"sort"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
)

var ErrInvalidRange = fmt.Errorf("invalid multiple range: %w", model.ErrConfiguration)

// Range is an EBITDA multiple range.
type Range struct {
	Low  float64
	High float64
}

func (r Range) Validate() error {
	if r.Low <= 0 || math.IsNaN(r.Low) || math.IsNaN(r.High) || r.High < r.Low {
		return fmt.Errorf("%.2f-%.2f: %w", r.Low, r.High, ErrInvalidRange)
	}
	return nil
}

// Input is everything a valuation depends on.
type Input struct {
	Scores  map[model.Category]float64
	Weights scoring.Weights
	EBITDA  *float64
	// Benchmark is nil when the sector has none; Default is used and the result
	// is marked estimated.
	Benchmark *model.Benchmark
	Default   Range
}

// Result holds the derived figures. Dollar fields are nil unless Status is computed.
type Result struct {
	Status         model.ValuationStatus
	OverallScore   *float64
	AppliedWeights scoring.Weights
	Range          Range
	Estimated      bool
	FinalMultiple  *float64
	CurrentValue   *float64
	PotentialValue *float64
	ValueGap       *float64
}

// Calculate computes the overall score over answered categories, renormalizing
// their weights, and derives the multiple and dollar values from it.
func Calculate(in Input) (Result, error) {
	if err := in.Weights.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Range: in.Default, Estimated: true}
	if in.Benchmark != nil {
		res.Range = Range{Low: in.Benchmark.MultipleLow, High: in.Benchmark.MultipleHigh}
		res.Estimated = false
	}
	if err := res.Range.Validate(); err != nil {
		return Result{}, err
	}

	answered := answeredCategories(in.Scores)
	applied, ok := in.Weights.Renormalize(answered)
	if !ok {
		res.Status = model.ValuationStatusUnscored
		return res, nil
	}
	res.AppliedWeights = applied

	var overall float64
	for _, c := range answered {
		overall += applied[c] * clamp01(in.Scores[c])
	}
	overall = clamp01(overall)
	res.OverallScore = &overall

	multiple := res.Range.Low + (res.Range.High-res.Range.Low)*overall
	res.FinalMultiple = &multiple

	if in.EBITDA == nil || *in.EBITDA <= 0 {
		res.Status = model.ValuationStatusNoEBITDA
		return res, nil
	}

	ebitda := *in.EBITDA
	current := ebitda * multiple
	potential := ebitda * res.Range.High
	gap := math.Max(potential-current, 0)

	res.Status = model.ValuationStatusComputed
	res.CurrentValue = &current
	res.PotentialValue = &potential
	res.ValueGap = &gap
	return res, nil
}

// Snapshot builds the insert-only record for this result.
func (r Result) Snapshot(companyID, assessmentID int64, in Input) model.ValuationSnapshot {
	scores := make(map[model.Category]float64, len(in.Scores))
	for c, v := range in.Scores {
		scores[c] = v
	}
	weights := r.AppliedWeights
	if weights == nil {
		weights = in.Weights
	}

	snap := model.ValuationSnapshot{
		CompanyID:      companyID,
		AssessmentID:   assessmentID,
		CategoryScores: scores,
		Weights:        map[model.Category]float64(weights.Clone()),
		OverallScore:   r.OverallScore,
		MultipleLow:    r.Range.Low,
		MultipleHigh:   r.Range.High,
		FinalMultiple:  r.FinalMultiple,
		CurrentValue:   r.CurrentValue,
		PotentialValue: r.PotentialValue,
		ValueGap:       r.ValueGap,
		Status:         r.Status,
		Estimated:      r.Estimated,
	}
	if in.EBITDA != nil {
		e := *in.EBITDA
		snap.EBITDA = &e
	}
	return snap
}

func answeredCategories(scores map[model.Category]float64) []model.Category {
	out := make([]model.Category, 0, len(scores))
	for c, v := range scores {
		if c.IsValid() && !math.IsNaN(v) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
