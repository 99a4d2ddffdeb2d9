package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/summitlabs/ascent-backend/internal/services"
)

type AdviceHandler struct {
	adviceService     services.AdviceService
	assessmentService services.AssessmentService
}

func NewAdviceHandler(adviceService services.AdviceService, assessmentService services.AssessmentService) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService, assessmentService: assessmentService}
}

// Narrative returns the long-form recommendation for the caller's most
// recent assessment.
func (h *AdviceHandler) Narrative(c *gin.Context) {
	userID, err := callerUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "identity_required", err)
		return
	}
	record, err := h.assessmentService.Latest(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	if record == nil {
		RespondError(c, http.StatusBadRequest, "no_assessment", errors.New("complete an assessment before requesting advice"))
		return
	}
	advice, err := h.adviceService.Narrative(c.Request.Context(), userID, record)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	RespondOK(c, advice)
}
