package dto

import (
	"time"

	"github.com/sagheerabbass/talenttrack/internal/models"
)

// CreateCandidateRequest defines the payload for direct candidate submission.
// Experience and Score are pointers so that an explicit zero survives the
// required/omitempty checks.
type CreateCandidateRequest struct {
	Name             string                   `json:"name" validate:"required,max=50"`
	Email            string                   `json:"email" validate:"required,email"`
	Phone            string                   `json:"phone" validate:"required"`
	Skills           []string                 `json:"skills" validate:"required,min=1,dive,required"`
	Experience       *float64                 `json:"experience" validate:"required,gte=0"`
	ResumeURL        string                   `json:"resumeUrl" validate:"required,url"`
	AppliedPosition  string                   `json:"appliedPosition" validate:"required"`
	Status           string                   `json:"status" validate:"omitempty"`
	Source           string                   `json:"source" validate:"omitempty"`
	Score            *float64                 `json:"score" validate:"omitempty,gte=0,lte=100"`
	InterviewAnswers []models.InterviewAnswer `json:"interviewAnswers" validate:"omitempty,dive"`
	Notes            string                   `json:"notes" validate:"omitempty,max=500"`
	InterviewDate    *time.Time               `json:"interviewDate"`
}

// UpdateCandidateRequest defines the free-form edit payload (PUT variant).
// Only non-nil fields are applied. Status changes go through the dedicated
// status endpoint.
type UpdateCandidateRequest struct {
	Phone            *string                  `json:"phone" validate:"omitempty"`
	Skills           []string                 `json:"skills" validate:"omitempty,min=1,dive,required"`
	Experience       *float64                 `json:"experience" validate:"omitempty,gte=0"`
	ResumeURL        *string                  `json:"resumeUrl" validate:"omitempty,url"`
	AppliedPosition  *string                  `json:"appliedPosition" validate:"omitempty"`
	Score            *float64                 `json:"score" validate:"omitempty,gte=0,lte=100"`
	InterviewAnswers []models.InterviewAnswer `json:"interviewAnswers" validate:"omitempty,dive"`
	Notes            *string                  `json:"notes" validate:"omitempty,max=500"`
	InterviewDate    *time.Time               `json:"interviewDate"`
}

// UpdateCandidateStatusRequest carries the target funnel stage.
type UpdateCandidateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CandidateFilter collects the optional list-query parameters. Unrecognized
// status/source values are ignored on reads rather than rejected.
type CandidateFilter struct {
	Status        string   `form:"status"`
	Source        string   `form:"source"`
	Position      string   `form:"position"`
	Search        string   `form:"search"`
	MinExperience *float64 `form:"minExperience"`
	MaxExperience *float64 `form:"maxExperience"`
	MinScore      *float64 `form:"minScore"`
	MaxScore      *float64 `form:"maxScore"`
}

// PositionCount is one entry of the top-positions aggregate.
type PositionCount struct {
	Position string `json:"position" bson:"_id"`
	Count    int64  `json:"count" bson:"count"`
}

// CandidateStats is the payload of GET /candidates/stats/overview.
type CandidateStats struct {
	Total        int64              `json:"total"`
	Pending      int64              `json:"pending"`
	Shortlisted  int64              `json:"shortlisted"`
	Rejected     int64              `json:"rejected"`
	Interviewed  int64              `json:"interviewed"`
	Hired        int64              `json:"hired"`
	TopPositions []PositionCount    `json:"topPositions"`
	Recent       []models.Candidate `json:"recent"`
}
