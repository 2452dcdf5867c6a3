package request_models

type SubscriptionRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// AdminSubscriptionRequest creates a subscription on behalf of a user.
type AdminSubscriptionRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Plan   string `json:"plan" binding:"required"`
}

type UpdateSubscriptionRequest struct {
	Plan   string `json:"plan" binding:"required"`
	Active *bool  `json:"active" binding:"required"`
}

// PlanRequest describes a subscription plan. Description is a comma
// separated list of features.
type PlanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}
