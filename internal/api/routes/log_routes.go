package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sagheerabbass/talenttrack/internal/api/handlers"
)

// RegisterLogRoutes registers all routes related to the audit log. Appending
// accepts the automation service credential as well, since workflow runs
// report their actions here.
func RegisterLogRoutes(rg *gin.RouterGroup, logHandler *handlers.LogHandler, authMiddleware, serviceAuthMiddleware gin.HandlerFunc) {
	logs := rg.Group("/logs")
	{
		logs.POST("", serviceAuthMiddleware, logHandler.CreateLog)
		logs.GET("", authMiddleware, logHandler.GetLogs)
	}
}
