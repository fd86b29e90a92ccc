package server

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jiruejeta/resume-matcher/internal/config"
	"github.com/jiruejeta/resume-matcher/internal/db"
	"github.com/jiruejeta/resume-matcher/internal/matching"
)

// stubDB is an in-memory DBClient for handler and service tests.
type stubDB struct {
	users    map[uuid.UUID]*db.User
	postings map[uuid.UUID]*db.JobPosting
	runs     map[uuid.UUID][]db.MatchRun    // keyed by posting ID
	results  map[uuid.UUID][]db.MatchResult // keyed by posting ID, latest run only
	err      error                          // when set, every call fails with it
}

func newStubDB() *stubDB {
	return &stubDB{
		users:    make(map[uuid.UUID]*db.User),
		postings: make(map[uuid.UUID]*db.JobPosting),
		runs:     make(map[uuid.UUID][]db.MatchRun),
		results:  make(map[uuid.UUID][]db.MatchResult),
	}
}

func (s *stubDB) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	id := uuid.New()
	now := time.Now()
	s.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (s *stubDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if s.err != nil {
		return s.err
	}
	if user, ok := s.users[userID]; ok {
		user.PasswordHash = passwordHash
		user.PasswordSet = true
	}
	return nil
}

func (s *stubDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[userID], nil
}

func (s *stubDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	user, _ := s.GetUserByEmail(context.Background(), email)
	return user != nil, nil
}

func (s *stubDB) CreateJobPosting(_ context.Context, recruiterID uuid.UUID, title, company, description, sourceURL string) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	id := uuid.New()
	s.postings[id] = &db.JobPosting{
		ID:          id,
		RecruiterID: recruiterID,
		Title:       title,
		Company:     company,
		Description: description,
		SourceURL:   sourceURL,
		CreatedAt:   time.Now(),
	}
	return id, nil
}

func (s *stubDB) GetJobPosting(_ context.Context, id uuid.UUID) (*db.JobPosting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.postings[id], nil
}

func (s *stubDB) ListJobPostings(_ context.Context, recruiterID uuid.UUID) ([]db.JobPosting, error) {
	if s.err != nil {
		return nil, s.err
	}
	var postings []db.JobPosting
	for _, p := range s.postings {
		if p.RecruiterID == recruiterID {
			postings = append(postings, *p)
		}
	}
	sort.Slice(postings, func(i, j int) bool {
		return postings[i].CreatedAt.After(postings[j].CreatedAt)
	})
	return postings, nil
}

func (s *stubDB) DeleteJobPosting(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	delete(s.postings, id)
	delete(s.runs, id)
	delete(s.results, id)
	return nil
}

func (s *stubDB) SaveMatchRun(_ context.Context, jobPostingID uuid.UUID, results []matching.ScoreResult) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	runID := uuid.New()
	s.runs[jobPostingID] = append(s.runs[jobPostingID], db.MatchRun{
		ID:           runID,
		JobPostingID: jobPostingID,
		ResumeCount:  len(results),
		CreatedAt:    time.Now(),
	})
	stored := make([]db.MatchResult, 0, len(results))
	for position, result := range results {
		stored = append(stored, db.MatchResult{
			ID:              uuid.New(),
			RunID:           runID,
			Position:        position,
			ContentScore:    result.ContentScore,
			SimilarityScore: result.SimilarityScore,
			CombinedScore:   result.CombinedScore,
			Details:         result.Details,
			CreatedAt:       time.Now(),
		})
	}
	s.results[jobPostingID] = stored
	return runID, nil
}

func (s *stubDB) ListMatchResults(_ context.Context, jobPostingID uuid.UUID, top int) ([]db.MatchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	results := append([]db.MatchResult(nil), s.results[jobPostingID]...)
	sort.Slice(results, func(i, j int) bool {
		if results[i].CombinedScore != results[j].CombinedScore {
			return results[i].CombinedScore > results[j].CombinedScore
		}
		return results[i].Position < results[j].Position
	})
	if top > 0 && top < len(results) {
		results = results[:top]
	}
	return results, nil
}

func (s *stubDB) ListMatchRuns(_ context.Context, jobPostingID uuid.UUID) ([]db.MatchRun, error) {
	if s.err != nil {
		return nil, s.err
	}
	runs := append([]db.MatchRun(nil), s.runs[jobPostingID]...)
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

// newTestServer wires a Server around the stub with rate limiting disabled.
func newTestServer(stub *stubDB) *Server {
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	jwtService := newTestJWTService()

	s := &Server{
		db: stub,
		cfg: &config.ServerConfig{
			Port:             8080,
			MaxResumes:       10,
			MaxDocumentBytes: 1 << 16,
		},
		jwtService: jwtService,
	}
	s.userService = NewUserService(stub, passwordConfig)
	s.authHandler = NewAuthHandler(s.userService, jwtService)
	return s
}
