package model

import "time"

// Visit is one sales visit to a customer shop by a user.
// CalculatedScore and PriorityLevel are derived fields - they are written
// by the scoring engine on every create/update and never taken from the caller.
type Visit struct {
	ID                     string    `json:"id"`
	CustomerID             string    `json:"customer_id"`
	UserID                 string    `json:"user_id"`
	ShopName               string    `json:"shop_name"`
	CustomerShopName       *string   `json:"customer_shop_name,omitempty"`
	VisitDate              time.Time `json:"visit_date"`
	VisitPurpose           string    `json:"visit_purpose"`
	ProductVisibilityScore float64   `json:"product_visibility_score"`
	ProductsDiscussed      []string  `json:"products_discussed"`
	TrainingProvided       bool      `json:"training_provided"`
	CommercialOutcome      string    `json:"commercial_outcome"`
	CompetitorPresence     *string   `json:"competitor_presence"`
	OverallSatisfaction    float64   `json:"overall_satisfaction"`
	Notes                  *string   `json:"notes"`
	Photos                 []string  `json:"photos"`
	CalculatedScore        float64   `json:"calculated_score"`
	PriorityLevel          string    `json:"priority_level"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
