package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// CandidateRepository defines the interface for candidate data operations.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	// List returns one page ordered by creation time descending plus the
	// total count matching the filter, independent of the window.
	List(ctx context.Context, filter *dto.CandidateFilter, page, limit int) ([]models.Candidate, int64, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Candidate, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CandidateStatus) (*models.Candidate, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set map[string]any) (*models.Candidate, error)
	CountByStatus(ctx context.Context, status models.CandidateStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	TopPositions(ctx context.Context, limit int) ([]dto.PositionCount, error)
	Recent(ctx context.Context, limit int) ([]models.Candidate, error)
}

// LogRepository defines the interface for audit log operations. Entries are
// append-only; there is no update or delete.
type LogRepository interface {
	Append(ctx context.Context, entry *models.Log) (*models.Log, error)
	List(ctx context.Context, filter *dto.LogFilter, page, limit int) ([]models.Log, int64, error)
}

// UserRepository defines the interface for operator account operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// TokenStore persists opaque refresh tokens with a TTL.
type TokenStore interface {
	Save(ctx context.Context, token string, userID string, ttl time.Duration) error
	UserID(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
