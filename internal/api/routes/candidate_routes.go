package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sagheerabbass/talenttrack/internal/api/handlers"
)

// RegisterCandidateRoutes registers all routes related to candidates. Direct
// submission also accepts the automation service credential so the intake
// pipeline can push candidates without an operator session.
func RegisterCandidateRoutes(rg *gin.RouterGroup, candidateHandler *handlers.CandidateHandler, authMiddleware, serviceAuthMiddleware gin.HandlerFunc) {
	candidates := rg.Group("/candidates")
	{
		candidates.POST("", serviceAuthMiddleware, candidateHandler.CreateCandidate)
	}
	candidates.Use(authMiddleware)
	{
		candidates.GET("", candidateHandler.GetCandidates)
		// Registered before /:id so gin does not treat "stats" as an ID
		candidates.GET("/stats/overview", candidateHandler.GetCandidateStats)
		candidates.POST("/workflow", candidateHandler.RunWorkflow)
		candidates.GET("/:id", candidateHandler.GetCandidateByID)
		candidates.PUT("/:id", candidateHandler.UpdateCandidate)
		candidates.PATCH("/:id/status", candidateHandler.UpdateCandidateStatus)
		candidates.POST("/:id/invite", candidateHandler.SendInvite)
	}
}
