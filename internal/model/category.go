package model

import (
	"errors"
	"math"
)

// ErrConfiguration is matched by every error that stems from invalid scoring or
// allocation configuration. Such errors abort a pass before anything is written.
var ErrConfiguration = errors.New("configuration error")

type Category string

const (
	CategoryFinancial       Category = "FINANCIAL"
	CategoryTransferability Category = "TRANSFERABILITY"
	CategoryOperational     Category = "OPERATIONAL"
	CategoryMarket          Category = "MARKET"
	CategoryLegalTax        Category = "LEGAL_TAX"
	CategoryPersonal        Category = "PERSONAL"
)

// Categories lists the six categories in their canonical order.
var Categories = []Category{
	CategoryFinancial,
	CategoryTransferability,
	CategoryOperational,
	CategoryMarket,
	CategoryLegalTax,
	CategoryPersonal,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFinancial, CategoryTransferability, CategoryOperational,
		CategoryMarket, CategoryLegalTax, CategoryPersonal:
		return true
	}
	return false
}

type IssueTier string

const (
	IssueTierCritical     IssueTier = "CRITICAL"
	IssueTierSignificant  IssueTier = "SIGNIFICANT"
	IssueTierOptimization IssueTier = "OPTIMIZATION"
)

var IssueTiers = []IssueTier{IssueTierCritical, IssueTierSignificant, IssueTierOptimization}

func (t IssueTier) IsValid() bool {
	switch t {
	case IssueTierCritical, IssueTierSignificant, IssueTierOptimization:
		return true
	}
	return false
}

type EffortLevel string

const (
	EffortMinimal  EffortLevel = "MINIMAL"
	EffortLow      EffortLevel = "LOW"
	EffortModerate EffortLevel = "MODERATE"
	EffortHigh     EffortLevel = "HIGH"
	EffortMajor    EffortLevel = "MAJOR"
)

func (e EffortLevel) IsValid() bool {
	switch e {
	case EffortMinimal, EffortLow, EffortModerate, EffortHigh, EffortMajor:
		return true
	}
	return false
}

type Complexity string

const (
	ComplexitySimple    Complexity = "SIMPLE"
	ComplexityModerate  Complexity = "MODERATE"
	ComplexityComplex   Complexity = "COMPLEX"
	ComplexityStrategic Complexity = "STRATEGIC"
)

func (c Complexity) IsValid() bool {
	switch c {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityStrategic:
		return true
	}
	return false
}

type ConfidenceLevel string

const (
	ConfidenceConfident         ConfidenceLevel = "CONFIDENT"
	ConfidenceSomewhatConfident ConfidenceLevel = "SOMEWHAT_CONFIDENT"
	ConfidenceUncertain         ConfidenceLevel = "UNCERTAIN"
	ConfidenceNotApplicable     ConfidenceLevel = "NOT_APPLICABLE"
)

// ScoreLevels are the only score values an option may carry, worst to best.
var ScoreLevels = [4]float64{0.00, 0.33, 0.67, 1.00}

const scoreEpsilon = 1e-6

// ScoreLevelIndex returns the position of score in ScoreLevels, or -1 when the
// value is not one of the discrete levels.
func ScoreLevelIndex(score float64) int {
	for i, level := range ScoreLevels {
		if math.Abs(score-level) < scoreEpsilon {
			return i
		}
	}
	return -1
}

// IsAdjacentUpgrade reports whether to is exactly one level above from.
func IsAdjacentUpgrade(from, to float64) bool {
	fi, ti := ScoreLevelIndex(from), ScoreLevelIndex(to)
	return fi >= 0 && ti >= 0 && ti == fi+1
}

// SameScore compares two option scores with the tolerance used for level matching.
func SameScore(a, b float64) bool {
	return math.Abs(a-b) < scoreEpsilon
}
