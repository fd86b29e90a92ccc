package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jiruejeta/resume-matcher/internal/matching"
)

// SaveMatchRun stores one scoring invocation and its per-résumé results and
// returns the run ID. Results keep their submission order via the position
// column.
func (db *DB) SaveMatchRun(ctx context.Context, jobPostingID uuid.UUID, results []matching.ScoreResult) (uuid.UUID, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var runID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO match_runs (job_posting_id, resume_count) VALUES ($1, $2) RETURNING id`,
		jobPostingID, len(results),
	).Scan(&runID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match run: %w", err)
	}

	for position, result := range results {
		details, err := json.Marshal(result.Details)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal details: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO match_results (run_id, position, content_score, similarity_score, combined_score, details)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			runID, position, result.ContentScore, result.SimilarityScore, result.CombinedScore, details,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to save match result %d: %w", position, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit match run: %w", err)
	}
	return runID, nil
}

// ListMatchResults returns a posting's most recent run results ordered by
// combined score descending. A positive top bounds the result count;
// top <= 0 returns everything.
func (db *DB) ListMatchResults(ctx context.Context, jobPostingID uuid.UUID, top int) ([]MatchResult, error) {
	query := `SELECT r.id, r.run_id, r.position, r.content_score, r.similarity_score, r.combined_score, r.details, r.created_at
		 FROM match_results r
		 JOIN match_runs mr ON mr.id = r.run_id
		 WHERE mr.job_posting_id = $1
		   AND mr.id = (SELECT id FROM match_runs WHERE job_posting_id = $1 ORDER BY created_at DESC LIMIT 1)
		 ORDER BY r.combined_score DESC, r.position ASC`
	args := []any{jobPostingID}
	if top > 0 {
		query += ` LIMIT $2`
		args = append(args, top)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var r MatchResult
		var details []byte
		if err := rows.Scan(&r.ID, &r.RunID, &r.Position, &r.ContentScore, &r.SimilarityScore, &r.CombinedScore, &details, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		if err := json.Unmarshal(details, &r.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal details: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListMatchRuns returns a posting's runs, newest first.
func (db *DB) ListMatchRuns(ctx context.Context, jobPostingID uuid.UUID) ([]MatchRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_posting_id, resume_count, created_at
		 FROM match_runs WHERE job_posting_id = $1 ORDER BY created_at DESC`, jobPostingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	var runs []MatchRun
	for rows.Next() {
		var run MatchRun
		if err := rows.Scan(&run.ID, &run.JobPostingID, &run.ResumeCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
