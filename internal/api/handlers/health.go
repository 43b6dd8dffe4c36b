package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports service and database liveness.
type HealthHandler struct {
	client  *mongo.Client
	started time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{client: client, started: time.Now()}
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Reports whether the API and its database connection are up.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any "API is healthy"
// @Failure      503  {object}  map[string]any "Database unreachable"
// @Router       /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "ok"
	database := "connected"
	code := http.StatusOK

	if err := h.client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
		status = "degraded"
		database = "disconnected"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": database,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
