package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jiruejeta/resume-matcher/internal/matching"
)

// CreateJobPostingRequest represents the request to register a job posting
// for matching. Description holds the full posting text the scorer reads.
type CreateJobPostingRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Company     string `json:"company" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	SourceURL   string `json:"source_url,omitempty" validate:"omitempty,url"`
}

// MatchRequest represents a batch of résumé texts to score against a posting.
type MatchRequest struct {
	Resumes []string `json:"resumes" validate:"required,min=1,dive,required"`
}

// JobPostingResponse represents a stored job posting.
type JobPostingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MatchRunResponse represents the outcome of one scoring invocation.
type MatchRunResponse struct {
	RunID   uuid.UUID              `json:"run_id"`
	Results []matching.ScoreResult `json:"results"`
}

// Validate validates the CreateJobPostingRequest using the validator.
func (r *CreateJobPostingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
