package request_models

type LearningPlanRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Duration     *int   `json:"duration"`
	ThumbnailURL string `json:"thumbnail_url"`
	Status       string `json:"status"`
}

type LearningPlanStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
