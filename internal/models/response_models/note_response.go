package response_models

import (
	"skillsphere/internal/models/db_models"
	"skillsphere/pkg/utils"
)

type NoteResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func NewNoteResponses(notes []db_models.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewNoteResponse(n))
	}
	return out
}

func NewNoteResponse(n db_models.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: utils.FormatRFC3339(n.CreatedAt),
	}
}
