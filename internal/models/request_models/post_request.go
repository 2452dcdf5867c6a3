package request_models

type PostRequest struct {
	Title    string   `json:"title" binding:"required,max=255"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Images   []string `json:"images" binding:"max=10,dive,url"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type ReactionRequest struct {
	Type string `json:"type" binding:"required"`
}
