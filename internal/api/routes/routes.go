package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sagheerabbass/talenttrack/internal/api/handlers"
	"github.com/sagheerabbass/talenttrack/internal/api/middleware"
	"github.com/sagheerabbass/talenttrack/internal/app"
	"github.com/sagheerabbass/talenttrack/internal/metrics"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, application *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	userHandler := handlers.NewUserHandler(application.Users, application.Validator, application.Logger)
	candidateHandler := handlers.NewCandidateHandler(application.Candidates, application.Automation, application.Validator, application.Logger)
	logHandler := handlers.NewLogHandler(application.Logs, application.Validator, application.Logger)
	healthHandler := handlers.NewHealthHandler(application.MongoClient)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(application.Config.JWT.Secret, application.Logger)
	serviceAuthMiddleware := middleware.ServiceOrJWTAuthMiddleware(application.Config.Automation.Token, application.Config.JWT.Secret, application.Logger)
	rateLimiter := middleware.NewRateLimiter(rateLimitConfig(application))

	apiV1.Use(rateLimiter.General())

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, rateLimiter.Login())
	RegisterCandidateRoutes(apiV1, candidateHandler, authMiddleware, serviceAuthMiddleware)
	RegisterLogRoutes(apiV1, logHandler, authMiddleware, serviceAuthMiddleware)

	// --- Health Check ---
	router.GET("/health", healthHandler.HealthCheck)

	// --- Prometheus Metrics ---
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// --- Swagger UI ---
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func rateLimitConfig(application *app.Application) middleware.RateLimitConfig {
	cfg := middleware.DefaultRateLimitConfig()
	rl := application.Config.RateLimit
	if rl.GeneralRPS > 0 {
		cfg.GeneralRate = rate.Limit(rl.GeneralRPS)
	}
	if rl.GeneralBurst > 0 {
		cfg.GeneralBurst = rl.GeneralBurst
	}
	if rl.LoginRPS > 0 {
		cfg.LoginRate = rate.Limit(rl.LoginRPS)
	}
	if rl.LoginBurst > 0 {
		cfg.LoginBurst = rl.LoginBurst
	}
	return cfg
}
