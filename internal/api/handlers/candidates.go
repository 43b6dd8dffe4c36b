package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/metrics"
	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/services"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// CandidateHandler holds the service dependencies for candidate operations.
type CandidateHandler struct {
	candidates services.CandidateService
	automation services.AutomationService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(candidates services.CandidateService, automation services.AutomationService, validate *validator.Validate, logger *zap.Logger) *CandidateHandler {
	return &CandidateHandler{
		candidates: candidates,
		automation: automation,
		validator:  validate,
		logger:     logger,
	}
}

// CreateCandidate godoc
// @Summary      Create a candidate
// @Description  Registers a candidate submitted directly through the dashboard.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate body dto.CreateCandidateRequest true "Candidate to create"
// @Success      201  {object}  dto.Envelope{data=models.Candidate}
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates [post]
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	candidate, err := h.candidates.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to create candidate")
		return
	}

	respondCreated(c, candidate, "Candidate created successfully")
}

// GetCandidates godoc
// @Summary      List candidates
// @Description  Returns a filtered, paginated page of candidates, newest first.
// @Tags         candidates
// @Produce      json
// @Param        page           query  int     false  "Page number (1-indexed)"
// @Param        limit          query  int     false  "Page size (max 100)"
// @Param        status         query  string  false  "Filter by status"
// @Param        source         query  string  false  "Filter by source"
// @Param        position       query  string  false  "Filter by applied position (substring)"
// @Param        search         query  string  false  "Search name, email and position"
// @Param        minExperience  query  number  false  "Minimum years of experience"
// @Param        maxExperience  query  number  false  "Maximum years of experience"
// @Param        minScore       query  number  false  "Minimum score"
// @Param        maxScore       query  number  false  "Maximum score"
// @Success      200  {object}  dto.Envelope{data=dto.Page[models.Candidate]}
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates [get]
func (h *CandidateHandler) GetCandidates(c *gin.Context) {
	var filter dto.CandidateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	page, limit := parsePagination(c)

	candidates, pagination, err := h.candidates.List(c.Request.Context(), &filter, page, limit)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to retrieve candidates")
		return
	}

	respondOK(c, dto.Page[models.Candidate]{Items: candidates, Pagination: pagination})
}

// GetCandidateByID godoc
// @Summary      Get a candidate by ID
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  dto.Envelope{data=models.Candidate}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
	candidate, err := h.candidates.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to retrieve candidate")
		return
	}

	respondOK(c, candidate)
}

// UpdateCandidate godoc
// @Summary      Update candidate details
// @Description  Partially updates a candidate. Status changes must go through the status endpoint.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id        path  string                      true  "Candidate ID"
// @Param        candidate body  dto.UpdateCandidateRequest  true  "Fields to update"
// @Success      200  {object}  dto.Envelope{data=models.Candidate}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req dto.UpdateCandidateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	candidate, err := h.candidates.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to update candidate")
		return
	}

	respondOK(c, candidate)
}

// UpdateCandidateStatus godoc
// @Summary      Update candidate status
// @Description  Moves a candidate to another funnel stage and records the transition.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path  string                            true  "Candidate ID"
// @Param        status body  dto.UpdateCandidateStatusRequest  true  "New status"
// @Success      200  {object}  dto.Envelope{data=models.Candidate}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates/{id}/status [patch]
func (h *CandidateHandler) UpdateCandidateStatus(c *gin.Context) {
	var req dto.UpdateCandidateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	candidate, err := h.candidates.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to update candidate status")
		return
	}

	respondOK(c, candidate)
}

// GetCandidateStats godoc
// @Summary      Funnel statistics
// @Description  Returns counts per status, the most applied-for positions and recent arrivals.
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.CandidateStats}
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates/stats/overview [get]
func (h *CandidateHandler) GetCandidateStats(c *gin.Context) {
	stats, err := h.candidates.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to compute candidate statistics")
		return
	}

	respondOK(c, stats)
}

// RunWorkflow godoc
// @Summary      Ingest a candidate via the automation workflow
// @Description  Delegates resume intake to the workflow automation service and stores the result.
// @Tags         automation
// @Produce      json
// @Success      201  {object}  dto.Envelope{data=models.Candidate}
// @Failure      409  {object}  dto.Envelope
// @Failure      502  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates/workflow [post]
func (h *CandidateHandler) RunWorkflow(c *gin.Context) {
	candidate, err := h.automation.RunWorkflow(c.Request.Context())
	metrics.RecordWorkflowRun(err == nil)
	if err != nil {
		respondServiceError(c, h.logger, err, "Workflow execution failed")
		return
	}

	respondCreated(c, candidate, "Candidate processed via automation")
}

// SendInvite godoc
// @Summary      Send an interview invite
// @Description  Asks the automation service to deliver a WhatsApp invite to the candidate.
// @Tags         automation
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  dto.Envelope{data=dto.InviteResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      502  {object}  dto.Envelope
// @Security     BearerAuth
// @Router       /candidates/{id}/invite [post]
func (h *CandidateHandler) SendInvite(c *gin.Context) {
	resp, err := h.automation.SendInvite(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to send invite")
		return
	}

	respondOK(c, resp)
}
