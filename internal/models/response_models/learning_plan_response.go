package response_models

import (
	"skillsphere/internal/models/db_models"
	"skillsphere/pkg/utils"
)

type LearningPlanResponse struct {
	ID           uint   `json:"id"`
	OwnerID      uint   `json:"owner_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     *int   `json:"duration,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func NewLearningPlanResponse(p db_models.LearningPlan) LearningPlanResponse {
	return LearningPlanResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Title:        p.Title,
		Description:  p.Description,
		Duration:     p.Duration,
		ThumbnailURL: p.ThumbnailURL,
		Status:       string(p.Status),
		CreatedAt:    utils.FormatRFC3339(p.CreatedAt),
		UpdatedAt:    utils.FormatRFC3339(p.UpdatedAt),
	}
}

func NewLearningPlanResponses(plans []db_models.LearningPlan) []LearningPlanResponse {
	out := make([]LearningPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewLearningPlanResponse(p))
	}
	return out
}
