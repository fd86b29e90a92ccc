package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jiruejeta/resume-matcher/internal/matching"
	"github.com/jiruejeta/resume-matcher/internal/types"
)

// handleMatch scores a batch of résumés against a posting's description and
// persists the run.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	posting, ok := s.ownedPosting(w, r)
	if !ok {
		return
	}

	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if len(req.Resumes) > s.cfg.MaxResumes {
		err := &ErrBatchTooLarge{Count: len(req.Resumes), Limit: s.cfg.MaxResumes}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	for i, resume := range req.Resumes {
		if len(resume) > s.cfg.MaxDocumentBytes {
			err := &ErrDocumentTooLarge{Position: i, Size: len(resume), Limit: s.cfg.MaxDocumentBytes}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	results := matching.CombinedScores(posting.Description, req.Resumes)

	runID, err := s.db.SaveMatchRun(r.Context(), posting.ID, results)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.MatchRunResponse{
		RunID:   runID,
		Results: results,
	})
}

// handleListMatches returns the latest run's results for a posting, ranked by
// combined score. An optional top query parameter bounds the result count.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	posting, ok := s.ownedPosting(w, r)
	if !ok {
		return
	}

	top := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		parsed, err := strconv.Atoi(topStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "top must be a positive integer")
			return
		}
		top = parsed
	}

	results, err := s.db.ListMatchResults(r.Context(), posting.ID, top)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// handleListMatchRuns returns a posting's run history, newest first.
func (s *Server) handleListMatchRuns(w http.ResponseWriter, r *http.Request) {
	posting, ok := s.ownedPosting(w, r)
	if !ok {
		return
	}

	runs, err := s.db.ListMatchRuns(r.Context(), posting.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"runs":  runs,
		"count": len(runs),
	})
}
