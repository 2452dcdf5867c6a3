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

type AccountController struct {
	accountService  services.AccountServiceInterface
	identityService services.IdentityServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface,
	identityService services.IdentityServiceInterface) *AccountController {
	return &AccountController{
		accountService:  accountService,
		identityService: identityService,
	}
}

func loginResponse(res *services.AuthResult) response_models.AccountLoginResponse {
	return response_models.AccountLoginResponse{
		Token: res.Token,
		AccountResponse: response_models.AccountResponse{
			UserID:   res.Principal.ID,
			Username: res.Principal.DisplayName,
			IsAdmin:  res.Principal.IsAdmin,
		},
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := a.accountService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, loginResponse(res), "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user or admin and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := a.accountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, loginResponse(res), "Login successful")
}

// Me godoc
// @Summary Current principal
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (a *AccountController) Me(c *gin.Context) {
	principal, err := a.accountService.Me(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountResponse{
		UserID:   principal.ID,
		Username: principal.DisplayName,
		IsAdmin:  principal.IsAdmin,
	}, "Account fetched successfully")
}

// Logout revokes the presented token until it expires.
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if err := a.identityService.Revoke(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out")
}
