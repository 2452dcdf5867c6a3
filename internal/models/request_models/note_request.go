package request_models

type NoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}
