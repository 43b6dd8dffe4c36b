package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/services"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// UserHandler holds the service dependency for operator account operations.
type UserHandler struct {
	users     services.UserService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users services.UserService, validate *validator.Validate, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, validator: validate, logger: logger}
}

// Register godoc
// @Summary      Register an operator account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.RegisterRequest true "Account credentials"
// @Success      201  {object}  dto.Envelope{data=models.User}
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to register user")
		return
	}

	respondCreated(c, user, "Account created successfully")
}

type loginResponse struct {
	User   any           `json:"user"`
	Tokens dto.TokenPair `json:"tokens"`
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges credentials for an access token and a refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Account credentials"
// @Success      200  {object}  dto.Envelope{data=loginResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	user, tokens, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to log in")
		return
	}

	respondOK(c, loginResponse{User: user, Tokens: *tokens})
}

// Refresh godoc
// @Summary      Rotate a refresh token
// @Description  Exchanges a valid refresh token for a fresh token pair; the old refresh token is revoked.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.Envelope{data=dto.TokenPair}
// @Failure      400  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	tokens, err := h.users.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, h.logger, err, "Failed to refresh session")
		return
	}

	respondOK(c, tokens)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the presented refresh token. Idempotent.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationErrors(c, err)
		return
	}

	if err := h.users.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondServiceError(c, h.logger, err, "Failed to log out")
		return
	}

	respondMessage(c, "Logged out")
}
