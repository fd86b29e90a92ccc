package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateJobPosting inserts a job posting and returns its ID.
func (db *DB) CreateJobPosting(ctx context.Context, recruiterID uuid.UUID, title, company, description, sourceURL string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (recruiter_id, title, company, description, source_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		recruiterID, title, company, description, sourceURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job posting: %w", err)
	}
	return id, nil
}

// GetJobPosting retrieves a posting by ID, or nil when absent.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	var p JobPosting
	err := db.pool.QueryRow(ctx,
		`SELECT id, recruiter_id, title, company, description, COALESCE(source_url, ''), created_at
		 FROM job_postings WHERE id = $1`, id,
	).Scan(&p.ID, &p.RecruiterID, &p.Title, &p.Company, &p.Description, &p.SourceURL, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return &p, nil
}

// ListJobPostings returns a recruiter's postings, newest first.
func (db *DB) ListJobPostings(ctx context.Context, recruiterID uuid.UUID) ([]JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, recruiter_id, title, company, description, COALESCE(source_url, ''), created_at
		 FROM job_postings WHERE recruiter_id = $1 ORDER BY created_at DESC`, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []JobPosting
	for rows.Next() {
		var p JobPosting
		if err := rows.Scan(&p.ID, &p.RecruiterID, &p.Title, &p.Company, &p.Description, &p.SourceURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

// DeleteJobPosting removes a posting and, via cascading constraints, its
// match runs and results.
func (db *DB) DeleteJobPosting(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	return nil
}
