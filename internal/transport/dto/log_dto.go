package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogFilter collects the optional audit-log list parameters. Start/End are
// inclusive bounds on the entry timestamp.
type LogFilter struct {
	Action      string     `form:"action"`
	CandidateID string     `form:"candidateId"`
	Start       *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End         *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
}

// CandidateRef is the read-only projection of the referenced candidate
// attached to each log entry in list responses.
type CandidateRef struct {
	ID              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	AppliedPosition string             `json:"appliedPosition"`
}

// LogResponse is one audit entry joined with its candidate projection. The
// projection is nil when the referenced candidate no longer exists.
type LogResponse struct {
	ID        primitive.ObjectID `json:"id"`
	Action    string             `json:"action"`
	Candidate *CandidateRef      `json:"candidate,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}
