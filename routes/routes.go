package routes

import (
	"net/http"
	"time"

	"rane/handlers"
	"rane/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReferenceRoutes registers the read-only catalog endpoints.
func RegisterReferenceRoutes(r *gin.Engine, rh *handlers.ReferenceHandler) {
	api := r.Group("/api/reference")
	{
		api.GET("/topics", rh.GetTopics)
		api.GET("/practitioners", rh.GetPractitioners)
		api.GET("/slots/:date", rh.GetSlots)
	}
}

// RegisterWizardRoutes sets up the endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, wh *handlers.WizardHandler) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.POST("/session", wh.StartSession)
		wizardGroup.GET("/session/:sessionID", wh.GetSession)
		wizardGroup.DELETE("/session/:sessionID", wh.CancelSession)

		wizardGroup.POST("/session/:sessionID/topic", wh.SelectTopic)
		wizardGroup.POST("/session/:sessionID/therapist", wh.SelectTherapist)
		wizardGroup.POST("/session/:sessionID/slot", wh.SelectSlot)
		wizardGroup.POST("/session/:sessionID/visited", wh.SetVisitedAnswer)
		wizardGroup.PATCH("/session/:sessionID/personal", wh.UpdatePersonalInfo)
		wizardGroup.PATCH("/session/:sessionID/intake", wh.UpdateIntake)
		wizardGroup.POST("/session/:sessionID/agreement", wh.ToggleAgreement)
		wizardGroup.POST("/session/:sessionID/show-all", wh.SetShowAll)

		wizardGroup.POST("/session/:sessionID/next", wh.GoNext)
		wizardGroup.POST("/session/:sessionID/prev", wh.GoPrev)
		wizardGroup.POST("/session/:sessionID/submit", wh.Submit)
		wizardGroup.POST("/session/:sessionID/restart", wh.Restart)

		wizardGroup.GET("/session/:sessionID/practitioners", wh.Practitioners)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, rh *handlers.ReferenceHandler, wh *handlers.WizardHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReferenceRoutes(r, rh)
	RegisterWizardRoutes(r, wh)
	RegisterHealthRoute(r)
}
