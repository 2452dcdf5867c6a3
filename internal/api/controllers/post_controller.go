package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"skillsphere/internal/models/request_models"
	"skillsphere/internal/models/response_models"
	"skillsphere/internal/services"
	"skillsphere/pkg/middleware"
	"skillsphere/pkg/utils"
)

type PostController struct {
	postService     services.PostServiceInterface
	contentService  services.ContentServiceInterface
	reactionService services.ReactionServiceInterface
}

func NewPostController(postService services.PostServiceInterface,
	contentService services.ContentServiceInterface,
	reactionService services.ReactionServiceInterface) *PostController {
	return &PostController{
		postService:     postService,
		contentService:  contentService,
		reactionService: reactionService,
	}
}

func postInput(req request_models.PostRequest) services.PostInput {
	return services.PostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
		Images:   req.Images,
	}
}

// ListPosts godoc
// @Summary List posts, newest first
// @Tags Posts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/posts [get]
func (p *PostController) ListPosts(c *gin.Context) {
	posts, err := p.postService.ListPosts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPostResponses(posts), "Posts fetched successfully")
}

// GetPost godoc
// @Summary Get a post with its comments and reactions
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/posts/{id} [get]
func (p *PostController) GetPost(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := p.postService.GetPost(c.Request.Context(), postID, middleware.PrincipalFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	comments := make([]response_models.CommentResponse, 0, len(detail.Comments))
	for _, cm := range detail.Comments {
		comments = append(comments, response_models.NewCommentResponse(cm))
	}

	utils.RespondSuccess(c, response_models.PostDetailResponse{
		PostResponse: response_models.NewPostResponse(detail.Post),
		Comments:     comments,
		Reactions:    response_models.NewReactionCounts(detail.Reactions),
		MyReaction:   string(detail.MyReaction),
	}, "Post fetched successfully")
}

// CreatePost godoc
// @Summary Create a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.PostRequest true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/posts [post]
func (p *PostController) CreatePost(c *gin.Context) {
	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.CreatePost(c.Request.Context(), middleware.PrincipalFrom(c), postInput(req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPostResponse(*post), "Post created successfully")
}

// UpdatePost godoc
// @Summary Update a post (owner only)
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body request_models.PostRequest true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/posts/{id} [put]
func (p *PostController) UpdatePost(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.contentService.UpdatePost(c.Request.Context(), postID, middleware.PrincipalFrom(c), postInput(req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPostResponse(*post), "Post updated successfully")
}

// DeletePost godoc
// @Summary Delete a post with its comments and reactions (owner only)
// @Tags Posts
// @Param id path int true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/posts/{id} [delete]
func (p *PostController) DeletePost(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := p.contentService.DeletePost(c.Request.Context(), postID, middleware.PrincipalFrom(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}

func (p *PostController) AddComment(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := p.postService.AddComment(c.Request.Context(), postID, middleware.PrincipalFrom(c), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCommentResponse(*comment), "Comment added successfully")
}

func (p *PostController) UpdateComment(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := idParam(c, "commentId")
	if !ok {
		return
	}

	var req request_models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := p.contentService.UpdateComment(c.Request.Context(), postID, commentID, middleware.PrincipalFrom(c), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCommentResponse(*comment), "Comment updated successfully")
}

func (p *PostController) DeleteComment(c *gin.Context) {
	commentID, ok := idParam(c, "commentId")
	if !ok {
		return
	}

	if err := p.contentService.DeleteComment(c.Request.Context(), commentID, middleware.PrincipalFrom(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}

// React godoc
// @Summary Toggle a reaction on a post
// @Description Same type twice removes the reaction, a different type replaces it
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body request_models.ReactionRequest true "Reaction payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/posts/{id}/reactions [post]
func (p *PostController) React(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := p.reactionService.React(c.Request.Context(), postID, middleware.PrincipalFrom(c), req.Type)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ReactionResponse{
		Outcome:   string(res.Outcome),
		Current:   string(res.Current),
		Reactions: response_models.NewReactionCounts(res.Summary),
	}, "Reaction recorded")
}
