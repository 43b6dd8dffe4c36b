package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Candidate Status Enum ---
type CandidateStatus string

const (
	StatusPending     CandidateStatus = "pending"
	StatusShortlisted CandidateStatus = "shortlisted"
	StatusRejected    CandidateStatus = "rejected"
	StatusInterviewed CandidateStatus = "interviewed"
	StatusHired       CandidateStatus = "hired"
)

// Valid reports whether the status is one of the five funnel stages.
func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusRejected, StatusInterviewed, StatusHired:
		return true
	default:
		return false
	}
}

// CandidateStatuses lists every valid status, in funnel order.
func CandidateStatuses() []CandidateStatus {
	return []CandidateStatus{StatusPending, StatusShortlisted, StatusRejected, StatusInterviewed, StatusHired}
}

// --- Candidate Source Enum ---
type CandidateSource string

const (
	SourceLinkedIn CandidateSource = "linkedin"
	SourceIndeed   CandidateSource = "indeed"
	SourceReferral CandidateSource = "referral"
	SourceDirect   CandidateSource = "direct"
	SourceAIIntern CandidateSource = "ai_intern"
)

// Valid reports whether the source is a recognized sourcing channel.
func (s CandidateSource) Valid() bool {
	switch s {
	case SourceLinkedIn, SourceIndeed, SourceReferral, SourceDirect, SourceAIIntern:
		return true
	default:
		return false
	}
}

// InterviewAnswer is one question/answer pair recorded during screening.
type InterviewAnswer struct {
	Question string  `json:"question" bson:"question"`
	Answer   string  `json:"answer" bson:"answer"`
	Score    float64 `json:"score" bson:"score"`
}

// Candidate represents an applicant tracked through the hiring funnel.
type Candidate struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Email            string             `json:"email" bson:"email"`
	Phone            string             `json:"phone" bson:"phone"`
	Skills           []string           `json:"skills" bson:"skills"`
	Experience       float64            `json:"experience" bson:"experience"`
	ResumeURL        string             `json:"resumeUrl" bson:"resume_url"`
	AppliedPosition  string             `json:"appliedPosition" bson:"applied_position"`
	Status           CandidateStatus    `json:"status" bson:"status"`
	Source           CandidateSource    `json:"source" bson:"source"`
	Score            float64            `json:"score" bson:"score"`
	InterviewAnswers []InterviewAnswer  `json:"interviewAnswers,omitempty" bson:"interview_answers,omitempty"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
	InterviewDate    *time.Time         `json:"interviewDate,omitempty" bson:"interview_date,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Log is one immutable audit entry describing an action taken against a
// candidate. The candidate reference is weak: the entry survives even if
// the candidate disappears.
type Log struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Action      string             `json:"action" bson:"action"`
	CandidateID primitive.ObjectID `json:"candidateId" bson:"candidate_id"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}

// User is an operator account for the admin dashboard.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}
