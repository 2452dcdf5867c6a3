package response_models

import (
	"skillsphere/internal/models/db_models"
	"skillsphere/pkg/utils"
)

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type ProfileResponse struct {
	ID        uint           `json:"id"`
	Username  string         `json:"username"`
	IsAdmin   bool           `json:"is_admin"`
	CreatedAt string         `json:"created_at"`
	Followers []UserSummary  `json:"followers"`
	Following []UserSummary  `json:"following"`
	Posts     []PostResponse `json:"posts"`
}

func newUserSummaries(users []db_models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{ID: u.ID, Username: u.Username})
	}
	return out
}

func NewProfileResponse(user db_models.User, followers, following []db_models.User, posts []db_models.Post) ProfileResponse {
	resp := ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: utils.FormatRFC3339(user.CreatedAt),
		Followers: newUserSummaries(followers),
		Following: newUserSummaries(following),
		Posts:     make([]PostResponse, 0, len(posts)),
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, NewPostResponse(p))
	}
	return resp
}
