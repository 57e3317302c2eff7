// Package session drives a practice interview through its stages:
// setup → interview (or voice-interview) → results. One goroutine owns the
// countdown ticker per session; all other access goes through the session
// mutex.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"judgesim/internal/catalog"
	"judgesim/internal/model"
	"judgesim/internal/rubric"
)

var (
	ErrNotFound   = errors.New("session not found")
	ErrWrongStage = errors.New("action not valid in current stage")
)

// MaxVoiceExchanges caps a voice interview's question count
const MaxVoiceExchanges = 6

// questionCountFor maps the session duration tier to a question count
func questionCountFor(durationMin int) int {
	switch durationMin {
	case 5:
		return 3
	case 15:
		return 8
	default:
		return 5
	}
}

// Interview is one live practice session. All fields are guarded by mu.
type Interview struct {
	mu sync.Mutex

	ID         string
	UserID     string
	Stage      model.Stage
	Award      string
	Mode       model.InterviewMode
	Difficulty model.DifficultyLevel
	JudgeStyle model.JudgeStyle
	Duration   int // minutes

	Questions []model.Question
	Answers   []model.Answer
	Current   int
	Draft     string
	HintsUsed int

	History   []model.ChatMessage // voice mode conversation
	Exchanges int

	Remaining int // seconds
	Report    *model.FeedbackReport
	StartedAt time.Time

	stopTimer chan struct{}
	stopOnce  sync.Once
}

// Manager owns all live sessions for the process
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Interview
	bank     *catalog.Bank

	// onComplete runs after a session reaches results, outside the session
	// lock. Used to persist the report.
	onComplete func(*Interview)
}

// NewManager creates a session manager backed by the given question bank
func NewManager(bank *catalog.Bank) *Manager {
	return &Manager{
		sessions: make(map[string]*Interview),
		bank:     bank,
	}
}

// SetOnComplete registers the completion hook
func (m *Manager) SetOnComplete(fn func(*Interview)) {
	m.onComplete = fn
}

// Start creates a session and moves it out of setup. Text mode draws
// questions from the bank sized by the duration tier; voice mode defers
// question flow to the judge service. A zero-question draw degrades
// immediately to results with an empty answer set.
func (m *Manager) Start(userID string, req *model.StartSessionRequest) (*Interview, error) {
	if req.Award == "" {
		return nil, fmt.Errorf("award is required")
	}
	if req.Mode == "" {
		req.Mode = model.ModeText
	}
	if req.Difficulty == "" {
		req.Difficulty = model.LevelStandard
	}
	if req.JudgeStyle == "" {
		req.JudgeStyle = model.StyleStandard
	}
	if req.DurationMin == 0 {
		req.DurationMin = 10
	}

	s := &Interview{
		ID:         uuid.New().String(),
		UserID:     userID,
		Award:      req.Award,
		Mode:       req.Mode,
		Difficulty: req.Difficulty,
		JudgeStyle: req.JudgeStyle,
		Duration:   req.DurationMin,
		Remaining:  req.DurationMin * 60,
		StartedAt:  time.Now(),
		stopTimer:  make(chan struct{}),
	}

	if req.Mode == model.ModeVoice {
		s.Stage = model.StageVoiceInterview
		s.History = []model.ChatMessage{{Role: model.RoleUser, Content: "Start the interview"}}
	} else {
		s.Stage = model.StageInterview
		s.Questions = m.bank.SelectForSession(req.Award, questionCountFor(req.DurationMin))
		if len(s.Questions) == 0 {
			// No questions for this award: score the empty answer set and
			// land on results right away.
			s.Stage = model.StageResults
			s.Report = rubric.CalculateScores(nil, s.Award)
		} else {
			m.startTimer(s)
		}
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	if s.Stage == model.StageResults && m.onComplete != nil {
		m.onComplete(s)
	}
	return s, nil
}

// Get returns a live session by id
func (m *Manager) Get(id string) (*Interview, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// startTimer runs the 1s countdown. The ticker is cancelled exactly once via
// stopTimer; a tick that lost the race with a stage change is a no-op.
func (m *Manager) startTimer(s *Interview) {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopTimer:
				return
			case <-ticker.C:
				if expired := m.tick(s); expired {
					return
				}
			}
		}
	}()
}

// tick decrements the countdown; at zero it force-finishes the interview.
// Returns true once the timer should stop.
func (m *Manager) tick(s *Interview) bool {
	s.mu.Lock()
	if s.Stage != model.StageInterview {
		// Late tick after a stage change: ignore.
		s.mu.Unlock()
		return true
	}
	s.Remaining--
	if s.Remaining > 0 {
		s.mu.Unlock()
		return false
	}

	// Timer expiry: auto-submit whatever partial answer exists (even empty)
	// before scoring.
	s.Remaining = 0
	if len(s.Answers) < len(s.Questions) {
		q := s.Questions[s.Current]
		s.Answers = append(s.Answers, model.Answer{
			QuestionID:     q.ID,
			QuestionText:   q.Text,
			AnswerText:     s.Draft,
			CoachHintsUsed: s.HintsUsed,
		})
	}
	m.finishLocked(s)
	s.mu.Unlock()

	if m.onComplete != nil {
		m.onComplete(s)
	}
	return true
}

// SubmitAnswer records the answer to the current question and advances.
// When the last question is answered the session is scored and moves to
// results.
func (m *Manager) SubmitAnswer(id, answerText string) (*Interview, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.Stage != model.StageInterview {
		s.mu.Unlock()
		return nil, ErrWrongStage
	}

	q := s.Questions[s.Current]
	s.Answers = append(s.Answers, model.Answer{
		QuestionID:     q.ID,
		QuestionText:   q.Text,
		AnswerText:     answerText,
		CoachHintsUsed: s.HintsUsed,
	})
	s.Draft = ""
	s.HintsUsed = 0

	finished := false
	if s.Current < len(s.Questions)-1 {
		s.Current++
	} else {
		m.finishLocked(s)
		finished = true
	}
	s.mu.Unlock()

	if finished && m.onComplete != nil {
		m.onComplete(s)
	}
	return s, nil
}

// SaveDraft stores in-progress answer text so timer expiry can capture it
func (m *Manager) SaveDraft(id, draft string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Stage != model.StageInterview {
		return ErrWrongStage
	}
	s.Draft = draft
	return nil
}

// UseHint returns coach hints for the current question and counts the use
func (m *Manager) UseHint(id string) ([]string, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Stage != model.StageInterview {
		return nil, ErrWrongStage
	}
	s.HintsUsed++
	return catalog.HintsFor(s.Questions[s.Current].ID), nil
}

// Finish force-ends an interview, auto-submitting the current draft
func (m *Manager) Finish(id string) (*Interview, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.Stage != model.StageInterview && s.Stage != model.StageVoiceInterview {
		s.mu.Unlock()
		return nil, ErrWrongStage
	}
	if s.Stage == model.StageInterview && len(s.Answers) < len(s.Questions) {
		q := s.Questions[s.Current]
		s.Answers = append(s.Answers, model.Answer{
			QuestionID:     q.ID,
			QuestionText:   q.Text,
			AnswerText:     s.Draft,
			CoachHintsUsed: s.HintsUsed,
		})
	}
	if s.Stage == model.StageVoiceInterview {
		s.Answers = transcriptToAnswers(s.History)
	}
	m.finishLocked(s)
	s.mu.Unlock()

	if m.onComplete != nil {
		m.onComplete(s)
	}
	return s, nil
}

// finishLocked scores the session and lands on results. Caller holds s.mu.
func (m *Manager) finishLocked(s *Interview) {
	s.stopOnce.Do(func() { close(s.stopTimer) })
	s.Report = rubric.CalculateScores(s.Answers, s.Award)
	s.Stage = model.StageResults
}

// Restart clears all session state back to setup. The old timer is stopped;
// the session id survives so clients can reuse their handle.
func (m *Manager) Restart(id string) (*Interview, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopOnce.Do(func() { close(s.stopTimer) })
	s.Stage = model.StageSetup
	s.Questions = nil
	s.Answers = nil
	s.Current = 0
	s.Draft = ""
	s.HintsUsed = 0
	s.History = nil
	s.Exchanges = 0
	s.Remaining = 0
	s.Report = nil
	s.stopTimer = make(chan struct{})
	s.stopOnce = sync.Once{}
	return s, nil
}

// Remove drops a session from the manager, stopping its timer
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.stopOnce.Do(func() { close(s.stopTimer) })
	}
}

// State snapshots a session for transport
func (s *Interview) State() *model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &model.SessionState{
		ID:               s.ID,
		Stage:            s.Stage,
		Award:            s.Award,
		Mode:             s.Mode,
		Difficulty:       s.Difficulty,
		JudgeStyle:       s.JudgeStyle,
		DurationMin:      s.Duration,
		QuestionIndex:    s.Current,
		QuestionTotal:    len(s.Questions),
		RemainingSeconds: s.Remaining,
		Report:           s.Report,
		StartedAt:        s.StartedAt,
	}
	if s.Stage == model.StageInterview && s.Current < len(s.Questions) {
		q := s.Questions[s.Current]
		state.CurrentQuestion = &q
	}
	return state
}
