package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jiruejeta/resume-matcher/internal/db"
	"github.com/jiruejeta/resume-matcher/internal/server/middleware"
	"github.com/jiruejeta/resume-matcher/internal/types"
)

// handleCreateJobPosting registers a job posting owned by the authenticated recruiter.
func (s *Server) handleCreateJobPosting(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := middleware.RecruiterID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	postingID, err := s.db.CreateJobPosting(r.Context(), recruiterID, req.Title, req.Company, req.Description, req.SourceURL)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	posting, err := s.db.GetJobPosting(r.Context(), postingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, posting)
}

// handleListJobPostings lists the authenticated recruiter's postings, newest first.
func (s *Server) handleListJobPostings(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := middleware.RecruiterID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postings, err := s.db.ListJobPostings(r.Context(), recruiterID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"postings": postings,
		"count":    len(postings),
	})
}

// handleGetJobPosting retrieves a job posting by its ID.
func (s *Server) handleGetJobPosting(w http.ResponseWriter, r *http.Request) {
	posting, ok := s.ownedPosting(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, posting)
}

// handleDeleteJobPosting deletes a posting and its match runs.
func (s *Server) handleDeleteJobPosting(w http.ResponseWriter, r *http.Request) {
	posting, ok := s.ownedPosting(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteJobPosting(r.Context(), posting.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ownedPosting resolves the {id} path value to a posting owned by the
// authenticated recruiter, writing the error response itself on failure.
func (s *Server) ownedPosting(w http.ResponseWriter, r *http.Request) (*db.JobPosting, bool) {
	recruiterID, err := middleware.RecruiterID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	postingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return nil, false
	}

	posting, err := s.db.GetJobPosting(r.Context(), postingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	// Hide other recruiters' postings behind the same 404
	if posting == nil || posting.RecruiterID != recruiterID {
		s.errorResponse(w, http.StatusNotFound, "Job posting not found")
		return nil, false
	}

	return posting, true
}
