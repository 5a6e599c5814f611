package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rane/models"
	"rane/services/wizard"
)

// WizardHandler exposes the wizard action set over HTTP.
type WizardHandler struct {
	Svc    wizard.WizardService
	Logger *zap.Logger
}

// NewWizardHandler constructs a WizardHandler.
func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// sessionError maps service errors onto HTTP responses.
func (h *WizardHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard session not found or expired"})
	case errors.Is(err, wizard.ErrNotReady):
		c.JSON(http.StatusConflict, gin.H{"error": "session is not ready for submission"})
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": "session already submitted"})
	default:
		h.Logger.Error("wizard action failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// StartSession handles POST /api/wizard/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	var input struct {
		PractitionerID string `json:"practitionerId"`
	}
	// The body is optional; a bare POST starts a blank session.
	_ = c.ShouldBindJSON(&input)

	session, err := h.Svc.StartSession(input.PractitionerID, c.GetHeader("X-Device-ID"), c.Request.UserAgent())
	if err != nil {
		h.Logger.Error("StartSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start wizard session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"session":   session,
	})
}

// GetSession handles GET /api/wizard/session/:sessionID.
func (h *WizardHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.GetSession(sessionID)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	steps, err := h.Svc.EffectivePath(sessionID)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "steps": steps})
}

// SelectTopic handles POST /api/wizard/session/:sessionID/topic.
func (h *WizardHandler) SelectTopic(c *gin.Context) {
	var input struct {
		TopicID string `json:"topicId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectTopic(c.Param("sessionID"), input.TopicID)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectTherapist handles POST /api/wizard/session/:sessionID/therapist.
func (h *WizardHandler) SelectTherapist(c *gin.Context) {
	var input struct {
		TherapistID string `json:"therapistId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectTherapist(c.Param("sessionID"), input.TherapistID)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectSlot handles POST /api/wizard/session/:sessionID/slot.
func (h *WizardHandler) SelectSlot(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectSlot(c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetVisitedAnswer handles POST /api/wizard/session/:sessionID/visited.
func (h *WizardHandler) SetVisitedAnswer(c *gin.Context) {
	var input struct {
		Answer string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SetVisitedAnswer(c.Param("sessionID"), models.VisitedAnswer(input.Answer))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdatePersonalInfo handles PATCH /api/wizard/session/:sessionID/personal.
func (h *WizardHandler) UpdatePersonalInfo(c *gin.Context) {
	var input models.PersonalInfoUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.UpdatePersonalInfo(c.Param("sessionID"), input)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateIntake handles PATCH /api/wizard/session/:sessionID/intake.
func (h *WizardHandler) UpdateIntake(c *gin.Context) {
	var input models.IntakeUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.UpdateIntake(c.Param("sessionID"), input)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ToggleAgreement handles POST /api/wizard/session/:sessionID/agreement.
func (h *WizardHandler) ToggleAgreement(c *gin.Context) {
	var input struct {
		Agreed bool `json:"agreed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.ToggleAgreement(c.Param("sessionID"), input.Agreed)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetShowAll handles POST /api/wizard/session/:sessionID/show-all.
func (h *WizardHandler) SetShowAll(c *gin.Context) {
	var input struct {
		ShowAll bool `json:"showAll"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SetShowAll(c.Param("sessionID"), input.ShowAll)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GoNext handles POST /api/wizard/session/:sessionID/next. A guard rejection
// is not an error: the unchanged session is returned with moved=false.
func (h *WizardHandler) GoNext(c *gin.Context) {
	session, moved, err := h.Svc.GoNext(c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "moved": moved})
}

// GoPrev handles POST /api/wizard/session/:sessionID/prev.
func (h *WizardHandler) GoPrev(c *gin.Context) {
	session, moved, err := h.Svc.GoPrev(c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "moved": moved})
}

// Submit handles POST /api/wizard/session/:sessionID/submit.
func (h *WizardHandler) Submit(c *gin.Context) {
	summary, err := h.Svc.Submit(c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"trackingCode": summary.TrackingCode,
		"summary":      summary,
	})
}

// Restart handles POST /api/wizard/session/:sessionID/restart.
func (h *WizardHandler) Restart(c *gin.Context) {
	session, err := h.Svc.Restart(c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CancelSession handles DELETE /api/wizard/session/:sessionID.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Param("sessionID")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Practitioners handles GET /api/wizard/session/:sessionID/practitioners:
// the recommended-vs-all derived view for the session.
func (h *WizardHandler) Practitioners(c *gin.Context) {
	practitioners, err := h.Svc.PractitionersForSession(c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioners": practitioners})
}
