package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/models/request_models"
	"skillsphere/internal/models/response_models"
	"skillsphere/internal/services"
	"skillsphere/pkg/middleware"
	"skillsphere/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// CreateQuiz godoc
// @Summary Create a quiz authored by the caller
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body request_models.QuizRequest true "Quiz payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/quizzes [post]
func (q *QuizController) CreateQuiz(c *gin.Context) {
	var req request_models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	in := services.QuizInput{Title: req.Title}
	for _, question := range req.Questions {
		in.Questions = append(in.Questions, db_models.QuizQuestion{
			Text:    question.Text,
			Options: question.Options,
			Answer:  *question.Answer,
		})
	}

	quiz, err := q.quizService.CreateQuiz(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewQuizResponse(*quiz), "Quiz created successfully")
}

func (q *QuizController) ListQuizzes(c *gin.Context) {
	quizzes, err := q.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewQuizResponses(quizzes), "Quizzes fetched successfully")
}
