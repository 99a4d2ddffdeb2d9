package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/summitlabs/ascent-backend/internal/requestdata"
	"github.com/summitlabs/ascent-backend/internal/scoring"
	"github.com/summitlabs/ascent-backend/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// AnswerPayload is the wire shape of one submitted answer. Which fields are
// populated depends on the question type in the form.
type AnswerPayload struct {
	SelectedOption string `json:"selected_option"`
	Text           string `json:"text"`
	AdditionalText string `json:"additional_text"`
}

func (p AnswerPayload) toAnswer() scoring.Answer {
	switch {
	case p.Text != "" && p.SelectedOption == "":
		return scoring.FreeTextAnswer(p.Text)
	case p.AdditionalText != "":
		return scoring.MultiChoiceAnswer(p.SelectedOption, p.AdditionalText)
	default:
		return scoring.LikertAnswer(p.SelectedOption)
	}
}

// Complete scores a submitted questionnaire and appends the snapshot to the
// caller's history.
func (h *AssessmentHandler) Complete(c *gin.Context) {
	userID, err := callerUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "identity_required", err)
		return
	}
	var req struct {
		Answers map[string]AnswerPayload `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	answers := make(map[string]scoring.Answer, len(req.Answers))
	for id, payload := range req.Answers {
		answers[id] = payload.toAnswer()
	}
	record, err := h.assessmentService.CompleteAssessment(c.Request.Context(), userID, answers)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	RespondOK(c, gin.H{"record": record})
}

func (h *AssessmentHandler) History(c *gin.Context) {
	userID, err := callerUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "identity_required", err)
		return
	}
	records, err := h.assessmentService.History(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	RespondOK(c, gin.H{"records": records})
}

func (h *AssessmentHandler) Latest(c *gin.Context) {
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
		RespondError(c, http.StatusNotFound, "no_assessment", errors.New("no assessment completed yet"))
		return
	}
	RespondOK(c, gin.H{"record": record})
}

func callerUserID(c *gin.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("no user in request context")
	}
	return rd.UserID, nil
}
