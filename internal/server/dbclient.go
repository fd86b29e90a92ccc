// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jiruejeta/resume-matcher/internal/db"
	"github.com/jiruejeta/resume-matcher/internal/matching"
)

// DBClient is the subset of database operations the server depends on.
// *db.DB satisfies it; tests substitute a stub.
type DBClient interface {
	// Users
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)

	// Job postings
	CreateJobPosting(ctx context.Context, recruiterID uuid.UUID, title, company, description, sourceURL string) (uuid.UUID, error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*db.JobPosting, error)
	ListJobPostings(ctx context.Context, recruiterID uuid.UUID) ([]db.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id uuid.UUID) error

	// Match runs
	SaveMatchRun(ctx context.Context, jobPostingID uuid.UUID, results []matching.ScoreResult) (uuid.UUID, error)
	ListMatchResults(ctx context.Context, jobPostingID uuid.UUID, top int) ([]db.MatchResult, error)
	ListMatchRuns(ctx context.Context, jobPostingID uuid.UUID) ([]db.MatchRun, error)
}
