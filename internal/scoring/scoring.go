package scoring

// Priority tiers are inverted on purpose: a high quality score means the shop
// needs little follow-up, so it lands in the low priority bucket.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Commercial outcome values recognized by the scoring formula.
const (
	OutcomeNewOrder          = "new_order"
	OutcomeOrderCommitment   = "order_commitment"
	OutcomePriceNegotiation  = "price_negotiation"
	OutcomeComplaintResolved = "complaint_resolved"
	OutcomeInformationOnly   = "information_only"
	OutcomeNoOutcome         = "no_outcome"
)

var outcomePoints = map[string]float64{
	OutcomeNewOrder:          25,
	OutcomeOrderCommitment:   20,
	OutcomePriceNegotiation:  15,
	OutcomeComplaintResolved: 10,
	OutcomeInformationOnly:   5,
	OutcomeNoOutcome:         0,
}

// Inputs are the visit fields contributing to the quality score.
// Zero values stand in for anything the caller omitted.
type Inputs struct {
	ProductVisibilityScore float64
	TrainingProvided       bool
	CommercialOutcome      string
	OverallSatisfaction    float64
}

// Score computes the visit quality score as a weighted sum clamped into [0,100].
// Sub-scores are not range-checked, only the final sum is clamped.
// An unrecognized commercial outcome contributes 0 points rather than an error.
func Score(in Inputs) float64 {
	score := in.ProductVisibilityScore * 0.3

	if in.TrainingProvided {
		score += 20
	}

	score += outcomePoints[in.CommercialOutcome]
	score += in.OverallSatisfaction * 2.5

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Priority maps a score onto a follow-up priority tier.
func Priority(score float64) string {
	switch {
	case score >= 80:
		return PriorityLow
	case score >= 60:
		return PriorityMedium
	default:
		return PriorityHigh
	}
}
