package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sagheerabbass/talenttrack/internal/api/handlers"
)

// RegisterUserRoutes registers all routes related to authentication.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, loginLimiter gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", loginLimiter, userHandler.Register)
		auth.POST("/login", loginLimiter, userHandler.Login)
		auth.POST("/refresh", userHandler.Refresh)
		auth.POST("/logout", userHandler.Logout)
	}
}
