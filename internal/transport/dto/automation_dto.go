package dto

// WorkflowCandidate is the candidate payload returned by the automation
// service's run-workflow endpoint. Field names follow its JSON contract.
type WorkflowCandidate struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	Experience      float64  `json:"experience"`
	ResumeURL       string   `json:"resumeUrl"`
	AppliedPosition string   `json:"appliedPosition"`
	Score           float64  `json:"score"`
	Source          string   `json:"source"`
}

// RunWorkflowResponse is the automation service's response to run-workflow.
type RunWorkflowResponse struct {
	Candidate *WorkflowCandidate `json:"candidate"`
}

// InviteRequest is sent to the automation service to trigger an invite.
type InviteRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// InviteResponse echoes whatever the automation service reports back; the
// content is passed through to the caller untouched.
type InviteResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
