package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/storage"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

type automationService struct {
	client     AutomationClient
	candidates storage.CandidateRepository
	logs       storage.LogRepository
	logger     *zap.Logger
}

// NewAutomationService creates a new instance of AutomationService.
func NewAutomationService(client AutomationClient, candidates storage.CandidateRepository, logs storage.LogRepository, logger *zap.Logger) AutomationService {
	return &automationService{
		client:     client,
		candidates: candidates,
		logs:       logs,
		logger:     logger,
	}
}

// RunWorkflow asks the automation service to run its resume intake and
// absorbs the returned payload into a new candidate. The payload must carry
// at least a non-empty email; an existing candidate with that email is
// never overwritten.
func (s *automationService) RunWorkflow(ctx context.Context) (*models.Candidate, error) {
	resp, err := s.client.RunWorkflow(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: run-workflow call failed: %v", ErrUpstream, err)
	}
	payload := resp.Candidate
	if payload == nil || payload.Email == "" {
		return nil, fmt.Errorf("%w: no candidate data returned from workflow", ErrUpstream)
	}
	if payload.Experience < 0 || payload.Score < 0 || payload.Score > 100 {
		return nil, fmt.Errorf("%w: workflow returned an unusable candidate payload", ErrUpstream)
	}

	if _, err := s.candidates.GetByEmail(ctx, payload.Email); err == nil {
		return nil, fmt.Errorf("%w: candidate with email %s already exists", ErrConflict, payload.Email)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "checking workflow candidate email")
	}

	source := models.SourceAIIntern
	if payload.Source != "" {
		if candidateSource := models.CandidateSource(payload.Source); candidateSource.Valid() {
			source = candidateSource
		}
	}

	candidate := &models.Candidate{
		Name:            payload.Name,
		Email:           payload.Email,
		Phone:           payload.Phone,
		Skills:          payload.Skills,
		Experience:      payload.Experience,
		ResumeURL:       payload.ResumeURL,
		AppliedPosition: payload.AppliedPosition,
		Status:          models.StatusPending,
		Source:          source,
		Score:           payload.Score,
	}

	created, err := s.candidates.Create(ctx, candidate)
	if err != nil {
		return nil, MapRepoError(err, "creating workflow candidate")
	}

	action := fmt.Sprintf("Candidate %s processed via automation (position: %s)", created.Name, created.AppliedPosition)
	if _, err := s.logs.Append(ctx, &models.Log{Action: action, CandidateID: created.ID}); err != nil {
		s.logger.Warn("audit log append failed after workflow candidate write",
			zap.String("candidate_id", created.ID.Hex()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("candidate %s stored but audit log append failed: %w", created.ID.Hex(), err)
	}
	return created, nil
}

// SendInvite delegates the invite notification to the automation service.
// The audit entry is appended only after the HTTP-level call succeeds; an
// upstream failure leaves no log entry behind.
func (s *automationService) SendInvite(ctx context.Context, candidateID string) (*dto.InviteResponse, error) {
	oid, err := parseObjectID(candidateID)
	if err != nil {
		return nil, err
	}

	candidate, err := s.candidates.GetByID(ctx, oid)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching candidate %s for invite", candidateID))
	}

	resp, err := s.client.SendInvite(ctx, &dto.InviteRequest{
		Email:    candidate.Email,
		Name:     candidate.Name,
		Position: candidate.AppliedPosition,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: send-invite call failed: %v", ErrUpstream, err)
	}

	action := fmt.Sprintf("WhatsApp invite sent to %s", candidate.Name)
	if _, err := s.logs.Append(ctx, &models.Log{Action: action, CandidateID: candidate.ID}); err != nil {
		s.logger.Warn("audit log append failed after invite",
			zap.String("candidate_id", candidate.ID.Hex()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invite sent but audit log append failed: %w", err)
	}
	return resp, nil
}
