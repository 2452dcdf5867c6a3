package response_models

import (
	"skillsphere/internal/models/db_models"
	"skillsphere/pkg/utils"
)

type PostResponse struct {
	ID        uint     `json:"id"`
	OwnerID   uint     `json:"owner_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags"`
	Images    []string `json:"images"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type CommentResponse struct {
	ID        uint   `json:"id"`
	PostID    uint   `json:"post_id"`
	AuthorID  uint   `json:"author_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type PostDetailResponse struct {
	PostResponse
	Comments   []CommentResponse `json:"comments"`
	Reactions  map[string]int64  `json:"reactions"`
	MyReaction string            `json:"my_reaction,omitempty"`
}

type ReactionResponse struct {
	Outcome   string           `json:"outcome"`
	Current   string           `json:"current,omitempty"`
	Reactions map[string]int64 `json:"reactions"`
}

func NewPostResponse(p db_models.Post) PostResponse {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return PostResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		Tags:      tags,
		Images:    images,
		CreatedAt: utils.FormatRFC3339(p.CreatedAt),
		UpdatedAt: utils.FormatRFC3339(p.UpdatedAt),
	}
}

func NewPostResponses(posts []db_models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}

func NewCommentResponse(c db_models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: utils.FormatRFC3339(c.CreatedAt),
	}
}

func NewReactionCounts(summary map[db_models.ReactionType]int64) map[string]int64 {
	counts := make(map[string]int64, len(db_models.ReactionTypes))
	for _, t := range db_models.ReactionTypes {
		counts[string(t)] = summary[t]
	}
	return counts
}
