package response_models

import (
	"skillsphere/internal/models/db_models"
	"skillsphere/pkg/utils"
)

type SubscriptionPlan struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Features  []string `json:"features"`
	Price     float64  `json:"price"`
	CreatedAt string   `json:"created_at"`
}

type SubscriptionResponse struct {
	ID        uint    `json:"id"`
	UserID    uint    `json:"user_id"`
	PlanName  string  `json:"plan"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Active    bool    `json:"active"`
}

func NewSubscriptionPlan(p db_models.SubscriptionPlan) SubscriptionPlan {
	features := []string(p.Features)
	if features == nil {
		features = []string{}
	}
	return SubscriptionPlan{
		ID:        p.ID,
		Name:      p.Name,
		Features:  features,
		Price:     p.Price,
		CreatedAt: utils.FormatRFC3339(p.CreatedAt),
	}
}

func NewSubscriptionPlans(plans []db_models.SubscriptionPlan) []SubscriptionPlan {
	out := make([]SubscriptionPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewSubscriptionPlan(p))
	}
	return out
}

func NewSubscriptionResponse(s db_models.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		PlanName:  s.PlanName,
		StartDate: utils.FormatRFC3339(s.StartDate),
		EndDate:   utils.FormatRFC3339Ptr(s.EndDate),
		Active:    s.Active,
	}
}

func NewSubscriptionResponses(subs []db_models.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, NewSubscriptionResponse(s))
	}
	return out
}
