package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		inputs   Inputs
		expected float64
	}{
		{
			name: "best possible visit",
			inputs: Inputs{
				ProductVisibilityScore: 100,
				TrainingProvided:       true,
				CommercialOutcome:      OutcomeNewOrder,
				OverallSatisfaction:    10,
			},
			expected: 100,
		},
		{
			name:     "empty visit scores zero",
			inputs:   Inputs{CommercialOutcome: OutcomeNoOutcome},
			expected: 0,
		},
		{
			name: "weighted sum without clamping",
			inputs: Inputs{
				ProductVisibilityScore: 50,
				TrainingProvided:       false,
				CommercialOutcome:      OutcomePriceNegotiation,
				OverallSatisfaction:    6,
			},
			expected: 45,
		},
		{
			name: "unrecognized outcome contributes nothing",
			inputs: Inputs{
				ProductVisibilityScore: 50,
				CommercialOutcome:      "partnership_signed",
				OverallSatisfaction:    6,
			},
			expected: 30,
		},
		{
			name: "out-of-range sub-scores clamped at the end only",
			inputs: Inputs{
				ProductVisibilityScore: 500,
				TrainingProvided:       true,
				CommercialOutcome:      OutcomeNewOrder,
				OverallSatisfaction:    10,
			},
			expected: 100,
		},
		{
			name: "negative sub-scores clamped to zero",
			inputs: Inputs{
				ProductVisibilityScore: -300,
				OverallSatisfaction:    2,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Score(tt.inputs), 1e-9)
		})
	}
}

func TestScoreStaysInRange(t *testing.T) {
	extremes := []Inputs{
		{ProductVisibilityScore: 1e6, TrainingProvided: true, CommercialOutcome: OutcomeNewOrder, OverallSatisfaction: 1e6},
		{ProductVisibilityScore: -1e6, OverallSatisfaction: -1e6},
		{},
	}
	for _, in := range extremes {
		s := Score(in)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	base := Inputs{
		ProductVisibilityScore: 40,
		CommercialOutcome:      OutcomeInformationOnly,
		OverallSatisfaction:    5,
	}
	baseScore := Score(base)

	moreVisible := base
	moreVisible.ProductVisibilityScore = 60
	assert.GreaterOrEqual(t, Score(moreVisible), baseScore, "score must not decrease with better visibility")

	moreSatisfied := base
	moreSatisfied.OverallSatisfaction = 8
	assert.GreaterOrEqual(t, Score(moreSatisfied), baseScore, "score must not decrease with better satisfaction")

	trained := base
	trained.TrainingProvided = true
	assert.GreaterOrEqual(t, Score(trained), baseScore, "score must not decrease when training was provided")
}

func TestPriorityBands(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{100, PriorityLow},
		{80, PriorityLow},
		{79.999, PriorityMedium},
		{60, PriorityMedium},
		{59.999, PriorityHigh},
		{0, PriorityHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Priority(tt.score), "priority for score %v", tt.score)
	}
}
