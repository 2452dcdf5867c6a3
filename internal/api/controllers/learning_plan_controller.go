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

type LearningPlanController struct {
	learningPlanService services.LearningPlanServiceInterface
	contentService      services.ContentServiceInterface
}

func NewLearningPlanController(learningPlanService services.LearningPlanServiceInterface,
	contentService services.ContentServiceInterface) *LearningPlanController {
	return &LearningPlanController{
		learningPlanService: learningPlanService,
		contentService:      contentService,
	}
}

func learningPlanInput(req request_models.LearningPlanRequest) services.LearningPlanInput {
	return services.LearningPlanInput{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		ThumbnailURL: req.ThumbnailURL,
		Status:       req.Status,
	}
}

// CreateLearningPlan godoc
// @Summary Create a learning plan
// @Tags LearningPlans
// @Accept json
// @Produce json
// @Param request body request_models.LearningPlanRequest true "Learning plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/learning-plans [post]
func (l *LearningPlanController) CreateLearningPlan(c *gin.Context) {
	var req request_models.LearningPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := l.learningPlanService.Create(c.Request.Context(), middleware.PrincipalFrom(c), learningPlanInput(req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewLearningPlanResponse(*plan), "Learning plan created successfully")
}

func (l *LearningPlanController) ListMyLearningPlans(c *gin.Context) {
	plans, err := l.learningPlanService.ListMine(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewLearningPlanResponses(plans), "Learning plans fetched successfully")
}

// ListAllLearningPlans godoc
// @Summary List every learning plan
// @Tags LearningPlans
// @Produce json
// @Param status query string false "NOT_STARTED, IN_PROGRESS or COMPLETED"
// @Success 200 {object} utils.APIResponse
// @Router /api/learning-plans/all [get]
func (l *LearningPlanController) ListAllLearningPlans(c *gin.Context) {
	plans, err := l.learningPlanService.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewLearningPlanResponses(plans), "Learning plans fetched successfully")
}

func (l *LearningPlanController) UpdateLearningPlan(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.LearningPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := l.learningPlanService.Update(c.Request.Context(), planID, middleware.PrincipalFrom(c), learningPlanInput(req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewLearningPlanResponse(*plan), "Learning plan updated successfully")
}

func (l *LearningPlanController) UpdateLearningPlanStatus(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.LearningPlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := l.learningPlanService.UpdateStatus(c.Request.Context(), planID, middleware.PrincipalFrom(c), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewLearningPlanResponse(*plan), "Learning plan status updated")
}

func (l *LearningPlanController) DeleteLearningPlan(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := l.contentService.DeleteLearningPlan(c.Request.Context(), planID, middleware.PrincipalFrom(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Learning plan deleted successfully")
}
