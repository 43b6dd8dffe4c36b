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

type candidateService struct {
	candidates storage.CandidateRepository
	logs       storage.LogRepository
	logger     *zap.Logger
}

// NewCandidateService creates a new instance of CandidateService.
func NewCandidateService(candidates storage.CandidateRepository, logs storage.LogRepository, logger *zap.Logger) CandidateService {
	return &candidateService{
		candidates: candidates,
		logs:       logs,
		logger:     logger,
	}
}

// Create validates and persists a direct candidate submission, then appends
// the audit entry. The candidate write and the log append are not
// transactional: when the append fails the candidate stays persisted and
// the error is surfaced to the caller (see appendLog).
func (s *candidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	status := models.StatusPending
	if req.Status != "" {
		status = models.CandidateStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q, must be one of %v", ErrValidation, req.Status, models.CandidateStatuses())
		}
	}
	source := models.SourceDirect
	if req.Source != "" {
		source = models.CandidateSource(req.Source)
		if !source.Valid() {
			return nil, fmt.Errorf("%w: invalid source %q", ErrValidation, req.Source)
		}
	}

	// Friendly pre-check; the unique index remains the authoritative
	// arbiter under concurrent submissions of the same email.
	if _, err := s.candidates.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: candidate with email %s already exists", ErrConflict, req.Email)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "checking candidate email")
	}

	candidate := &models.Candidate{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Skills:           req.Skills,
		Experience:       *req.Experience,
		ResumeURL:        req.ResumeURL,
		AppliedPosition:  req.AppliedPosition,
		Status:           status,
		Source:           source,
		InterviewAnswers: req.InterviewAnswers,
		Notes:            req.Notes,
		InterviewDate:    req.InterviewDate,
	}
	if req.Score != nil {
		candidate.Score = *req.Score
	}

	created, err := s.candidates.Create(ctx, candidate)
	if err != nil {
		return nil, MapRepoError(err, "creating candidate")
	}

	if err := s.appendLog(ctx, fmt.Sprintf("Candidate %s created via direct submission", created.Name), created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *candidateService) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	candidate, err := s.candidates.GetByID(ctx, oid)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching candidate %s", id))
	}
	return candidate, nil
}

func (s *candidateService) List(ctx context.Context, filter *dto.CandidateFilter, page, limit int) ([]models.Candidate, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)
	candidates, total, err := s.candidates.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.Pagination{}, MapRepoError(err, "listing candidates")
	}
	return candidates, dto.NewPagination(page, limit, total), nil
}

// UpdateStatus transitions a candidate to a new funnel stage. The target
// status is validated strictly before any read or write, and exactly one
// audit entry records the transition.
func (s *candidateService) UpdateStatus(ctx context.Context, id string, status string) (*models.Candidate, error) {
	newStatus := models.CandidateStatus(status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q, must be one of %v", ErrValidation, status, models.CandidateStatuses())
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	candidate, err := s.candidates.GetByID(ctx, oid)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching candidate %s for status update", id))
	}
	oldStatus := candidate.Status

	updated, err := s.candidates.UpdateStatus(ctx, oid, newStatus)
	if err != nil {
		return nil, MapRepoError(err, "updating candidate status")
	}

	action := fmt.Sprintf("Status updated from %s to %s for %s", oldStatus, newStatus, updated.Name)
	if err := s.appendLog(ctx, action, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Update applies free-form field edits (the PUT variant). Status changes
// are excluded; they go through UpdateStatus so every transition is audited
// with its prior stage.
func (s *candidateService) Update(ctx context.Context, id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := map[string]any{}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Skills != nil {
		set["skills"] = req.Skills
	}
	if req.Experience != nil {
		set["experience"] = *req.Experience
	}
	if req.ResumeURL != nil {
		set["resume_url"] = *req.ResumeURL
	}
	if req.AppliedPosition != nil {
		set["applied_position"] = *req.AppliedPosition
	}
	if req.Score != nil {
		set["score"] = *req.Score
	}
	if req.InterviewAnswers != nil {
		set["interview_answers"] = req.InterviewAnswers
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.InterviewDate != nil {
		set["interview_date"] = *req.InterviewDate
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	updated, err := s.candidates.UpdateFields(ctx, oid, set)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("updating candidate %s", id))
	}

	if err := s.appendLog(ctx, fmt.Sprintf("Candidate %s details updated", updated.Name), updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Stats aggregates the dashboard overview: totals per funnel stage, the
// most common applied positions, and the five most recent candidates.
func (s *candidateService) Stats(ctx context.Context) (*dto.CandidateStats, error) {
	stats := &dto.CandidateStats{}

	total, err := s.candidates.Count(ctx)
	if err != nil {
		return nil, MapRepoError(err, "counting candidates")
	}
	stats.Total = total

	counts := map[models.CandidateStatus]*int64{
		models.StatusPending:     &stats.Pending,
		models.StatusShortlisted: &stats.Shortlisted,
		models.StatusRejected:    &stats.Rejected,
		models.StatusInterviewed: &stats.Interviewed,
		models.StatusHired:       &stats.Hired,
	}
	for _, status := range models.CandidateStatuses() {
		n, err := s.candidates.CountByStatus(ctx, status)
		if err != nil {
			return nil, MapRepoError(err, fmt.Sprintf("counting %s candidates", status))
		}
		*counts[status] = n
	}

	stats.TopPositions, err = s.candidates.TopPositions(ctx, 5)
	if err != nil {
		return nil, MapRepoError(err, "aggregating top positions")
	}

	stats.Recent, err = s.candidates.Recent(ctx, 5)
	if err != nil {
		return nil, MapRepoError(err, "fetching recent candidates")
	}
	return stats, nil
}

// appendLog records the audit entry for a state-changing operation. A
// failure here is reported to the caller, but the candidate write that
// preceded it is deliberately not rolled back; the result is a
// state-consistent candidate with a missing audit entry.
func (s *candidateService) appendLog(ctx context.Context, action string, candidate *models.Candidate) error {
	_, err := s.logs.Append(ctx, &models.Log{Action: action, CandidateID: candidate.ID})
	if err != nil {
		s.logger.Warn("audit log append failed after candidate write",
			zap.String("candidate_id", candidate.ID.Hex()),
			zap.String("action", action),
			zap.Error(err),
		)
		return fmt.Errorf("candidate %s stored but audit log append failed: %w", candidate.ID.Hex(), err)
	}
	return nil
}
