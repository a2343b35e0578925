package scoring

import (
	"fmt"
	"math"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// weightTolerance matches the company_weights table constraint.
const weightTolerance = 1e-9

var (
	ErrInvalidWeights = fmt.Errorf("invalid category weights: %w", model.ErrConfiguration)
	ErrMissingWeight  = fmt.Errorf("missing category weight: %w", model.ErrConfiguration)
)

// Weights maps every category to its share of the overall score.
type Weights map[model.Category]float64

// DefaultWeights returns the weight distribution used when a company has no override.
func DefaultWeights() Weights {
	return Weights{
		model.CategoryFinancial:       0.25,
		model.CategoryTransferability: 0.20,
		model.CategoryOperational:     0.20,
		model.CategoryMarket:          0.15,
		model.CategoryLegalTax:        0.10,
		model.CategoryPersonal:        0.10,
	}
}

// Validate checks that all six categories carry a non-negative weight and that
// the weights sum to 1.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return ErrMissingWeight
	}
	for c := range w {
		if !c.IsValid() {
			return fmt.Errorf("unknown category %q: %w", c, ErrInvalidWeights)
		}
	}

	var sum float64
	for _, c := range model.Categories {
		v, ok := w[c]
		if !ok {
			return fmt.Errorf("%s: %w", c, ErrMissingWeight)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s weight %v: %w", c, v, ErrInvalidWeights)
		}
		sum += v
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("weights sum to %v, want 1: %w", sum, ErrInvalidWeights)
	}
	return nil
}

// Renormalize keeps only the weights of the given categories and rescales them
// to sum to 1. It returns false when the kept weights sum to zero.
func (w Weights) Renormalize(categories []model.Category) (Weights, bool) {
	var sum float64
	for _, c := range categories {
		sum += w[c]
	}
	if sum <= 0 {
		return nil, false
	}
	out := make(Weights, len(categories))
	for _, c := range categories {
		out[c] = w[c] / sum
	}
	return out, true
}

// Clone returns a copy that can be stored without aliasing the caller's map.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for c, v := range w {
		out[c] = v
	}
	return out
}
