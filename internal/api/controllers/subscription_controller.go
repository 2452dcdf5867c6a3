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

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
	contentService      services.ContentServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface,
	contentService services.ContentServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		contentService:      contentService,
	}
}

// CreateSubscription godoc
// @Summary Subscribe the caller to a plan
// @Description Any currently active subscription of the caller is closed first
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.SubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/subscriptions [post]
func (s *SubscriptionController) CreateSubscription(c *gin.Context) {
	var req request_models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	principal := middleware.PrincipalFrom(c)
	if principal.Source != services.SourceUser {
		utils.RespondError(c, http.StatusForbidden, "Only users can subscribe")
		return
	}

	sub, err := s.subscriptionService.CreateSubscription(c.Request.Context(), principal.ID, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionResponse(*sub), "Subscription created successfully")
}

func (s *SubscriptionController) GetUserSubscriptions(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if principal.Source != services.SourceUser {
		utils.RespondSuccess(c, []response_models.SubscriptionResponse{}, "Subscriptions fetched successfully")
		return
	}

	subs, err := s.subscriptionService.GetUserSubscriptions(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionResponses(subs), "Subscriptions fetched successfully")
}

// GetActiveSubscription godoc
// @Summary Get the caller's active subscription
// @Description Data is null when the caller has no active subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/subscriptions/user/active [get]
func (s *SubscriptionController) GetActiveSubscription(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if principal.Source != services.SourceUser {
		utils.RespondSuccess(c, nil, "No active subscription")
		return
	}

	sub, err := s.subscriptionService.GetActiveSubscription(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if sub == nil {
		utils.RespondSuccess(c, nil, "No active subscription")
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionResponse(*sub), "Active subscription fetched successfully")
}

func (s *SubscriptionController) UpdateSubscription(c *gin.Context) {
	subID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := s.subscriptionService.UpdateSubscription(c.Request.Context(), subID, req.Plan, *req.Active, middleware.PrincipalFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionResponse(*sub), "Subscription updated successfully")
}

func (s *SubscriptionController) DeleteSubscription(c *gin.Context) {
	subID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := s.contentService.DeleteSubscription(c.Request.Context(), subID, middleware.PrincipalFrom(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription deleted successfully")
}

// ListPlans godoc
// @Summary List subscription plans
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/subscriptions/plans [get]
func (s *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := s.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSubscriptionPlans(plans), "Plans fetched successfully")
}
