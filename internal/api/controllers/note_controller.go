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

type NoteController struct {
	noteService    services.NoteServiceInterface
	contentService services.ContentServiceInterface
}

func NewNoteController(noteService services.NoteServiceInterface, contentService services.ContentServiceInterface) *NoteController {
	return &NoteController{
		noteService:    noteService,
		contentService: contentService,
	}
}

func (n *NoteController) CreateNote(c *gin.Context) {
	var req request_models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	note, err := n.noteService.CreateNote(c.Request.Context(), middleware.PrincipalFrom(c), req.Title, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewNoteResponse(*note), "Note created successfully")
}

func (n *NoteController) ListNotes(c *gin.Context) {
	notes, err := n.noteService.ListNotes(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewNoteResponses(notes), "Notes fetched successfully")
}

func (n *NoteController) UpdateNote(c *gin.Context) {
	noteID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	note, err := n.noteService.UpdateNote(c.Request.Context(), noteID, middleware.PrincipalFrom(c), req.Title, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewNoteResponse(*note), "Note updated successfully")
}

func (n *NoteController) DeleteNote(c *gin.Context) {
	noteID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := n.contentService.DeleteNote(c.Request.Context(), noteID, middleware.PrincipalFrom(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Note deleted successfully")
}
