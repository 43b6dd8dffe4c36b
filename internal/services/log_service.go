package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/storage"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

type logService struct {
	logs       storage.LogRepository
	candidates storage.CandidateRepository
	logger     *zap.Logger
}

// NewLogService creates a new instance of LogService.
func NewLogService(logs storage.LogRepository, candidates storage.CandidateRepository, logger *zap.Logger) LogService {
	return &logService{
		logs:       logs,
		candidates: candidates,
		logger:     logger,
	}
}

// Append records an audit entry. A candidate id that does not reference an
// existing candidate is rejected; entries never dangle at write time. The
// read path still tolerates candidates deleted after the fact.
func (s *logService) Append(ctx context.Context, action string, candidateID string) (*models.Log, error) {
	oid, err := parseObjectID(candidateID)
	if err != nil {
		return nil, err
	}
	if action == "" {
		return nil, fmt.Errorf("%w: action must not be empty", ErrValidation)
	}

	if _, err := s.candidates.GetByID(ctx, oid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: candidate %s does not exist", ErrValidation, candidateID)
		}
		return nil, MapRepoError(err, "resolving log candidate")
	}

	entry, err := s.logs.Append(ctx, &models.Log{Action: action, CandidateID: oid})
	if err != nil {
		return nil, MapRepoError(err, "appending audit log")
	}
	return entry, nil
}

// List returns one window of audit entries, newest first, each joined with
// a read-only projection of its candidate. The join is best-effort: entries
// whose candidate has vanished carry a nil projection.
func (s *logService) List(ctx context.Context, filter *dto.LogFilter, page, limit int) ([]dto.LogResponse, dto.Pagination, error) {
	page, limit = normalizePage(page, limit)

	entries, total, err := s.logs.List(ctx, filter, page, limit)
	if err != nil {
		return nil, dto.Pagination{}, MapRepoError(err, "listing audit logs")
	}

	ids := make([]primitive.ObjectID, 0, len(entries))
	seen := make(map[primitive.ObjectID]bool, len(entries))
	for _, entry := range entries {
		if !seen[entry.CandidateID] {
			seen[entry.CandidateID] = true
			ids = append(ids, entry.CandidateID)
		}
	}

	candidates, err := s.candidates.GetByIDs(ctx, ids)
	if err != nil {
		return nil, dto.Pagination{}, MapRepoError(err, "resolving log candidates")
	}

	responses := make([]dto.LogResponse, 0, len(entries))
	for _, entry := range entries {
		resp := dto.LogResponse{
			ID:        entry.ID,
			Action:    entry.Action,
			Timestamp: entry.Timestamp,
		}
		if c, ok := candidates[entry.CandidateID]; ok {
			resp.Candidate = &dto.CandidateRef{
				ID:              c.ID,
				Name:            c.Name,
				Email:           c.Email,
				AppliedPosition: c.AppliedPosition,
			}
		}
		responses = append(responses, resp)
	}
	return responses, dto.NewPagination(page, limit, total), nil
}
