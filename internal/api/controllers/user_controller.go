package controllers

import (
	"github.com/gin-gonic/gin"
	"skillsphere/internal/models/response_models"
	"skillsphere/internal/services"
	"skillsphere/pkg/middleware"
	"skillsphere/pkg/utils"
)

type UserController struct {
	followService services.FollowServiceInterface
}

func NewUserController(followService services.FollowServiceInterface) *UserController {
	return &UserController{followService: followService}
}

func profileResponse(p *services.Profile) response_models.ProfileResponse {
	return response_models.NewProfileResponse(p.User, p.Followers, p.Following, p.Posts)
}

// Follow godoc
// @Summary Follow a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/users/{id}/follow [post]
func (u *UserController) Follow(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	profile, err := u.followService.Follow(c.Request.Context(), userID, middleware.PrincipalFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profileResponse(profile), "User followed successfully")
}

func (u *UserController) Unfollow(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	profile, err := u.followService.Unfollow(c.Request.Context(), userID, middleware.PrincipalFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profileResponse(profile), "User unfollowed successfully")
}

// GetProfile godoc
// @Summary Get a user's public profile
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/profile/{userId} [get]
func (u *UserController) GetProfile(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	profile, err := u.followService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profileResponse(profile), "Profile fetched successfully")
}
