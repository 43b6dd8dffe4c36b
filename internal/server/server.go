package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/api/middleware"
	"github.com/sagheerabbass/talenttrack/internal/api/routes"
	"github.com/sagheerabbass/talenttrack/internal/app"
	"github.com/sagheerabbass/talenttrack/internal/metrics"
)

type Server struct {
	router *gin.Engine
	app    *app.Application
	http   *http.Server
}

func NewServer(application *app.Application) *Server {
	if application.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(application.Logger))
	router.Use(metrics.Middleware())

	application.Logger.Info("configuring CORS", zap.Strings("origins", application.Config.CORS.AllowedOrigins))
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range application.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.SetTrustedProxies(nil)

	addr := fmt.Sprintf("%s:%d", application.Config.Server.Host, application.Config.Server.Port)

	return &Server{
		router: router,
		app:    application,
		http: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start registers all routes and serves until Shutdown is called or the
// listener fails.
func (s *Server) Start() error {
	routes.RegisterRoutes(s.router, s.app)

	s.app.Logger.Info("server starting", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight requests
// until the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
