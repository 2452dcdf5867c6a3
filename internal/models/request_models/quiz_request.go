package request_models

type QuizQuestionRequest struct {
	Text    string   `json:"text" binding:"required"`
	Options []string `json:"options" binding:"required,min=2"`
	Answer  *int     `json:"answer" binding:"required"`
}

type QuizRequest struct {
	Title     string                `json:"title" binding:"required,max=255"`
	Questions []QuizQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}
