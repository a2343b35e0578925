package allocation

import (
	"fmt"
	"math"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

var (
	ErrInvalidTierSplit      = fmt.Errorf("invalid tier split: %w", model.ErrConfiguration)
	ErrInvalidEffortDivisors = fmt.Errorf("invalid effort divisors: %w", model.ErrConfiguration)
	ErrUnknownEffort         = fmt.Errorf("no divisor for effort level: %w", model.ErrConfiguration)
)

const splitTolerance = 1e-9

// TierSplit is the share of the value gap each issue tier may claim.
type TierSplit map[model.IssueTier]float64

func DefaultTierSplit() TierSplit {
	return TierSplit{
		model.IssueTierCritical:     0.60,
		model.IssueTierSignificant:  0.30,
		model.IssueTierOptimization: 0.10,
	}
}

// Validate requires a non-negative share for each of the three tiers and a
// total of exactly 1.
func (s TierSplit) Validate() error {
	for tier := range s {
		if !tier.IsValid() {
			return fmt.Errorf("%w: unknown tier %q", ErrInvalidTierSplit, tier)
		}
	}

	var sum float64
	for _, tier := range model.IssueTiers {
		share, ok := s[tier]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidTierSplit, tier)
		}
		if math.IsNaN(share) || share < 0 {
			return fmt.Errorf("%w: %s share %v", ErrInvalidTierSplit, tier, share)
		}
		sum += share
	}
	if math.Abs(sum-1) > splitTolerance {
		return fmt.Errorf("%w: shares sum to %v", ErrInvalidTierSplit, sum)
	}
	return nil
}

// EffortDivisors scale a task's raw impact down by the effort it takes.
type EffortDivisors map[model.EffortLevel]float64

func DefaultEffortDivisors() EffortDivisors {
	return EffortDivisors{
		model.EffortMinimal:  0.5,
		model.EffortLow:      1,
		model.EffortModerate: 2,
		model.EffortHigh:     4,
		model.EffortMajor:    8,
	}
}

var effortLevels = []model.EffortLevel{
	model.EffortMinimal,
	model.EffortLow,
	model.EffortModerate,
	model.EffortHigh,
	model.EffortMajor,
}

// MinEffortDivisor is the largest step between adjacent score levels. A
// divisor below it would let a tier's normalized values add up to more than
// the tier's budget.
var MinEffortDivisor = largestLevelStep()

func largestLevelStep() float64 {
	var step float64
	for i := 1; i < len(model.ScoreLevels); i++ {
		step = math.Max(step, model.ScoreLevels[i]-model.ScoreLevels[i-1])
	}
	return step
}

func (d EffortDivisors) Validate() error {
	for _, e := range effortLevels {
		v, ok := d[e]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownEffort, e)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < MinEffortDivisor-splitTolerance {
			return fmt.Errorf("%w: %s divisor %v below %v", ErrInvalidEffortDivisors, e, v, MinEffortDivisor)
		}
	}
	return nil
}

func (d EffortDivisors) divisor(e model.EffortLevel) (float64, error) {
	v, ok := d[e]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownEffort, e)
	}
	return v, nil
}
