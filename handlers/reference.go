package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	referenceRepo "rane/database/repository/reference"
	"rane/services/wizard"
)

// ReferenceHandler serves the read-only topic/practitioner catalog and the
// per-date slot view.
type ReferenceHandler struct {
	Refs   referenceRepo.Repository
	Svc    wizard.WizardService
	Logger *zap.Logger
}

// NewReferenceHandler constructs a ReferenceHandler.
func NewReferenceHandler(refs referenceRepo.Repository, svc wizard.WizardService, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{Refs: refs, Svc: svc, Logger: logger}
}

// GetTopics handles GET /api/reference/topics.
func (h *ReferenceHandler) GetTopics(c *gin.Context) {
	topics, err := h.Refs.GetTopics(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetTopics: failed to fetch topics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch topics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// GetPractitioners handles GET /api/reference/practitioners. With ?topic=<id>
// the list is filtered to recommendations; ?all=true returns everyone.
func (h *ReferenceHandler) GetPractitioners(c *gin.Context) {
	ctx := c.Request.Context()

	all, err := h.Refs.GetPractitioners(ctx)
	if err != nil {
		h.Logger.Error("GetPractitioners: failed to fetch practitioners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch practitioners"})
		return
	}

	topicID := c.Query("topic")
	if topicID == "" || c.Query("all") == "true" {
		c.JSON(http.StatusOK, gin.H{"practitioners": all})
		return
	}

	topic, err := h.Refs.GetTopicByID(ctx, topicID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioners": wizard.RecommendPractitioners(topic, all)})
}

// GetSlots handles GET /api/reference/slots/:date.
func (h *ReferenceHandler) GetSlots(c *gin.Context) {
	date := c.Param("date")
	slots, err := h.Svc.SlotsForDate(date)
	if err != nil {
		h.Logger.Error("GetSlots: failed to resolve slots", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
