package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"judgesim/internal/cache"
	"judgesim/internal/model"
	"judgesim/internal/repository"
	"judgesim/internal/session"
)

// SessionService wraps the in-memory orchestrator with snapshot caching and
// report persistence. Cache and repo failures are logged, never fatal: the
// in-memory session is the source of truth while it lives.
type SessionService struct {
	manager      *session.Manager
	sessionCache cache.SessionCache
	reportRepo   repository.ReportRepo
	reportCache  cache.ReportCache
}

// NewSessionService creates a session service and hooks report persistence
// into session completion
func NewSessionService(manager *session.Manager, sessionCache cache.SessionCache, reportRepo repository.ReportRepo, reportCache cache.ReportCache) *SessionService {
	s := &SessionService{
		manager:      manager,
		sessionCache: sessionCache,
		reportRepo:   reportRepo,
		reportCache:  reportCache,
	}
	manager.SetOnComplete(s.persistReport)
	return s
}

// Manager exposes the orchestrator for transports that need direct access
func (s *SessionService) Manager() *session.Manager {
	return s.manager
}

// Start begins a session for the user and snapshots it
func (s *SessionService) Start(ctx context.Context, userID string, req *model.StartSessionRequest) (*model.SessionState, error) {
	iv, err := s.manager.Start(userID, req)
	if err != nil {
		return nil, err
	}
	state := iv.State()
	s.snapshot(ctx, state)
	return state, nil
}

// Get returns the live session state, falling back to the cached snapshot
// when the in-memory session is gone (e.g. after a server restart)
func (s *SessionService) Get(ctx context.Context, id string) (*model.SessionState, error) {
	iv, err := s.manager.Get(id)
	if err == nil {
		return iv.State(), nil
	}
	if s.sessionCache != nil {
		cached, cerr := s.sessionCache.Get(ctx, id)
		if cerr == nil && cached != nil {
			return cached, nil
		}
	}
	return nil, err
}

// SubmitAnswer records an answer and advances the session
func (s *SessionService) SubmitAnswer(ctx context.Context, id, answerText string) (*model.SessionState, error) {
	iv, err := s.manager.SubmitAnswer(id, answerText)
	if err != nil {
		return nil, err
	}
	state := iv.State()
	s.snapshot(ctx, state)
	return state, nil
}

// SaveDraft stores in-progress answer text
func (s *SessionService) SaveDraft(ctx context.Context, id, draft string) error {
	return s.manager.SaveDraft(id, draft)
}

// UseHint returns coach hints for the current question
func (s *SessionService) UseHint(ctx context.Context, id string) ([]string, error) {
	return s.manager.UseHint(id)
}

// Finish force-ends a session
func (s *SessionService) Finish(ctx context.Context, id string) (*model.SessionState, error) {
	iv, err := s.manager.Finish(id)
	if err != nil {
		return nil, err
	}
	state := iv.State()
	s.snapshot(ctx, state)
	return state, nil
}

// Restart resets a session back to setup
func (s *SessionService) Restart(ctx context.Context, id string) (*model.SessionState, error) {
	iv, err := s.manager.Restart(id)
	if err != nil {
		return nil, err
	}
	state := iv.State()
	s.snapshot(ctx, state)
	return state, nil
}

func (s *SessionService) snapshot(ctx context.Context, state *model.SessionState) {
	if s.sessionCache == nil {
		return
	}
	if err := s.sessionCache.Set(ctx, state); err != nil {
		log.Printf("session cache set failed for %s: %v", state.ID, err)
	}
}

// persistReport runs on session completion, outside the session lock
func (s *SessionService) persistReport(iv *session.Interview) {
	state := iv.State()
	if state.Report == nil {
		return
	}

	stored := &model.StoredReport{
		ID:        uuid.New().String(),
		UserID:    iv.UserID,
		SessionID: state.ID,
		Award:     state.Award,
		Report:    *state.Report,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.reportRepo != nil {
		if err := s.reportRepo.Save(ctx, stored); err != nil {
			log.Printf("report save failed for session %s: %v", state.ID, err)
		}
	}
	if s.reportCache != nil && iv.UserID != "" {
		if err := s.reportCache.SetLatest(ctx, iv.UserID, stored); err != nil {
			log.Printf("report cache set failed for user %s: %v", iv.UserID, err)
		}
	}
	s.snapshot(ctx, state)
}
