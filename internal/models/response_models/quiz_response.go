package response_models

import (
	"skillsphere/internal/models/db_models"
	"skillsphere/pkg/utils"
)

type QuizResponse struct {
	ID        uint                     `json:"id"`
	OwnerID   uint                     `json:"owner_id"`
	Title     string                   `json:"title"`
	Questions []db_models.QuizQuestion `json:"questions"`
	CreatedAt string                   `json:"created_at"`
}

func NewQuizResponse(q db_models.Quiz) QuizResponse {
	questions := []db_models.QuizQuestion(q.Questions)
	if questions == nil {
		questions = []db_models.QuizQuestion{}
	}
	return QuizResponse{
		ID:        q.ID,
		OwnerID:   q.OwnerID,
		Title:     q.Title,
		Questions: questions,
		CreatedAt: utils.FormatRFC3339(q.CreatedAt),
	}
}

func NewQuizResponses(quizzes []db_models.Quiz) []QuizResponse {
	out := make([]QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, NewQuizResponse(q))
	}
	return out
}
