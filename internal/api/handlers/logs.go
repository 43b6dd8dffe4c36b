package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/services"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// LogHandler holds the service dependency for audit log operations.
type LogHandler struct {
	logs      services.LogService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logs services.LogService, validate *validator.Validate, logger *zap.Logger) *LogHandler {
	return &LogHandler{logs: logs, validator: validate, logger: logger}
}

type createLogRequest struct {
	Action      string `json:"action" validate:"required"`
	CandidateID string `json:"candidateId" validate:"required"`
}

// CreateLog godoc
// @Summary      Append an audit log entry
// @Description  Records an action taken against an existing candidate.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        entry body createLogRequest true "Entry to append"
// @Success      201  {object}  dto.Envelope{data=models.Log}
// @Failure      400  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /logs [post]
func (h *LogHandler) CreateLog(c *gin.Context) {
	var req createLogRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	entry, err := h.logs.Append(c.Request.Context(), req.Action, req.CandidateID)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to append log entry")
		return
	}

	respondCreated(c, entry, "Log entry recorded")
}

// GetLogs godoc
// @Summary      List audit log entries
// @Description  Returns a filtered, paginated page of audit entries, newest first, with candidate summaries attached where the candidate still exists.
// @Tags         logs
// @Produce      json
// @Param        page         query  int     false  "Page number (1-indexed)"
// @Param        limit        query  int     false  "Page size (max 100)"
// @Param        action       query  string  false  "Filter by action text (substring)"
// @Param        candidateId  query  string  false  "Filter by candidate ID"
// @Param        start        query  string  false  "Entries at or after this time (RFC3339)"
// @Param        end          query  string  false  "Entries at or before this time (RFC3339)"
// @Success      200  {object}  dto.Envelope{data=dto.Page[dto.LogResponse]}
// @Failure      400  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /logs [get]
func (h *LogHandler) GetLogs(c *gin.Context) {
	var filter dto.LogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	page, limit := parsePagination(c)

	entries, pagination, err := h.logs.List(c.Request.Context(), &filter, page, limit)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to retrieve logs")
		return
	}

	respondOK(c, dto.Page[dto.LogResponse]{Items: entries, Pagination: pagination})
}
