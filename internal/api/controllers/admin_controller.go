package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"skillsphere/internal/models/request_models"
	"skillsphere/internal/models/response_models"
	"skillsphere/internal/services"
	"skillsphere/pkg/utils"
)

// AdminController serves the /api/admin group; RequireAdmin guards every route.
type AdminController struct {
	subscriptionService services.SubscriptionServiceInterface
	contentService      services.ContentServiceInterface
}

func NewAdminController(subscriptionService services.SubscriptionServiceInterface,
	contentService services.ContentServiceInterface) *AdminController {
	return &AdminController{
		subscriptionService: subscriptionService,
		contentService:      contentService,
	}
}

func planInput(req request_models.PlanRequest) services.PlanInput {
	return services.PlanInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}
}

// ListSubscriptions godoc
// @Summary List every subscription
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/subscriptions [get]
func (a *AdminController) ListSubscriptions(c *gin.Context) {
	subs, err := a.subscriptionService.GetAllSubscriptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionResponses(subs), "Subscriptions fetched successfully")
}

func (a *AdminController) CreateSubscription(c *gin.Context) {
	var req request_models.AdminSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := a.subscriptionService.CreateSubscription(c.Request.Context(), req.UserID, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionResponse(*sub), "Subscription created successfully")
}

func (a *AdminController) ListPlans(c *gin.Context) {
	plans, err := a.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionPlans(plans), "Plans fetched successfully")
}

// CreatePlan godoc
// @Summary Create a subscription plan
// @Description Description is a comma separated feature list
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/subscription-plans [post]
func (a *AdminController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := a.subscriptionService.CreatePlan(c.Request.Context(), planInput(req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionPlan(*plan), "Plan created successfully")
}

func (a *AdminController) UpdatePlan(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := a.subscriptionService.UpdatePlan(c.Request.Context(), planID, planInput(req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionPlan(*plan), "Plan updated successfully")
}

// DeletePlan godoc
// @Summary Delete a subscription plan
// @Description Refused with 409 while any subscription references the plan
// @Tags Admin
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/subscription-plans/{id} [delete]
func (a *AdminController) DeletePlan(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := a.contentService.DeleteSubscriptionPlan(c.Request.Context(), planID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}
