package services

import (
	"context"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// CandidateService defines the interface for candidate lifecycle logic.
type CandidateService interface {
	Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error)
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	List(ctx context.Context, filter *dto.CandidateFilter, page, limit int) ([]models.Candidate, dto.Pagination, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Candidate, error)
	Update(ctx context.Context, id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	Stats(ctx context.Context) (*dto.CandidateStats, error)
}

// LogService defines the interface for audit log recording and listing.
type LogService interface {
	Append(ctx context.Context, action string, candidateID string) (*models.Log, error)
	List(ctx context.Context, filter *dto.LogFilter, page, limit int) ([]dto.LogResponse, dto.Pagination, error)
}

// UserService defines the interface for operator account logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	SeedAdmin(ctx context.Context, email, password string) error
}

// AutomationService defines the workflow delegation boundary.
type AutomationService interface {
	RunWorkflow(ctx context.Context) (*models.Candidate, error)
	SendInvite(ctx context.Context, candidateID string) (*dto.InviteResponse, error)
}

// AutomationClient is the transport-level contract with the external
// automation service.
type AutomationClient interface {
	RunWorkflow(ctx context.Context) (*dto.RunWorkflowResponse, error)
	SendInvite(ctx context.Context, req *dto.InviteRequest) (*dto.InviteResponse, error)
}
