package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jiruejeta/resume-matcher/internal/matching"
)

// User represents a recruiter account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobPosting represents a stored job description to score résumés against.
type JobPosting struct {
	ID          uuid.UUID `json:"id"`
	RecruiterID uuid.UUID `json:"recruiter_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MatchRun records one invocation of the scoring engine for a posting.
type MatchRun struct {
	ID           uuid.UUID `json:"id"`
	JobPostingID uuid.UUID `json:"job_posting_id"`
	ResumeCount  int       `json:"resume_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// MatchResult is one stored per-résumé score. Position is the résumé's
// 0-based index within its run, preserving the submission order the engine
// guarantees.
type MatchResult struct {
	ID              uuid.UUID             `json:"id"`
	RunID           uuid.UUID             `json:"run_id"`
	Position        int                   `json:"position"`
	ContentScore    float64               `json:"content_score"`
	SimilarityScore float64               `json:"similarity_score"`
	CombinedScore   float64               `json:"combined_score"`
	Details         matching.MatchDetails `json:"details"`
	CreatedAt       time.Time             `json:"created_at"`
}
