package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/summitlabs/ascent-backend/internal/services"
)

// AdminHandler backs the data-viewer pages: raw dumps of users and score
// history for operators.
type AdminHandler struct {
	userService       services.UserService
	assessmentService services.AssessmentService
}

func NewAdminHandler(userService services.UserService, assessmentService services.AssessmentService) *AdminHandler {
	return &AdminHandler{userService: userService, assessmentService: assessmentService}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	RespondOK(c, gin.H{"users": users})
}

func (h *AdminHandler) ListScores(c *gin.Context) {
	records, err := h.assessmentService.AllRecords(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	RespondOK(c, gin.H{"records": records})
}
