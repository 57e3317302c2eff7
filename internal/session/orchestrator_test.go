package session

import (
	"testing"

	"judgesim/internal/catalog"
	"judgesim/internal/model"
)

func newTestManager() *Manager {
	return NewManager(catalog.NewBank())
}

func startText(t *testing.T, m *Manager, award string, minutes int) *Interview {
	t.Helper()
	s, err := m.Start("user-1", &model.StartSessionRequest{
		Award:       award,
		Mode:        model.ModeText,
		DurationMin: minutes,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStartDrawsQuestionsByDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{5, 3},
		{10, 5},
		{15, 8},
	}
	for _, tt := range tests {
		m := newTestManager()
		s := startText(t, m, "think", tt.minutes)
		state := s.State()

		if state.Stage != model.StageInterview {
			t.Fatalf("stage = %s, want interview", state.Stage)
		}
		if state.QuestionTotal != tt.want {
			t.Errorf("%d minutes drew %d questions, want %d", tt.minutes, state.QuestionTotal, tt.want)
		}
		if state.RemainingSeconds != tt.minutes*60 {
			t.Errorf("remaining = %d, want %d", state.RemainingSeconds, tt.minutes*60)
		}
		if state.CurrentQuestion == nil {
			t.Error("interview stage must expose the current question")
		}
	}
}

func TestStartRequiresAward(t *testing.T) {
	m := newTestManager()
	if _, err := m.Start("user-1", &model.StartSessionRequest{}); err == nil {
		t.Fatal("expected error for missing award")
	}
}

func TestStartZeroQuestionAward(t *testing.T) {
	m := newTestManager()
	s := startText(t, m, "no-such-award", 5)
	state := s.State()

	if state.Stage != model.StageResults {
		t.Fatalf("stage = %s, want results", state.Stage)
	}
	if state.Report == nil {
		t.Fatal("zero-question session must still be scored")
	}
}

func TestSubmitAnswerAdvancesAndFinishes(t *testing.T) {
	m := newTestManager()
	completed := 0
	m.SetOnComplete(func(*Interview) { completed++ })

	s := startText(t, m, "think", 5)
	for i := 0; i < 3; i++ {
		if _, err := m.SubmitAnswer(s.ID, "We iterated on the design and collected test data."); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
	}

	state := s.State()
	if state.Stage != model.StageResults {
		t.Fatalf("stage = %s after final answer, want results", state.Stage)
	}
	if state.Report == nil {
		t.Fatal("finished session has no report")
	}
	if completed != 1 {
		t.Errorf("completion hook ran %d times, want 1", completed)
	}

	if _, err := m.SubmitAnswer(s.ID, "late"); err != ErrWrongStage {
		t.Errorf("answering after results returned %v, want ErrWrongStage", err)
	}
}

func TestFinishCapturesDraft(t *testing.T) {
	m := newTestManager()
	s := startText(t, m, "think", 5)

	if err := m.SaveDraft(s.ID, "half-written answer about our prototype"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	if _, err := m.Finish(s.ID); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Answers) != 1 {
		t.Fatalf("got %d answers, want 1 auto-submitted draft", len(s.Answers))
	}
	if s.Answers[0].AnswerText != "half-written answer about our prototype" {
		t.Errorf("draft text lost: %q", s.Answers[0].AnswerText)
	}
}

func TestTimerExpiryForcesFinish(t *testing.T) {
	m := newTestManager()
	s := startText(t, m, "think", 5)

	if err := m.SaveDraft(s.ID, "partial"); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	// Drive the countdown directly instead of waiting on the real ticker.
	s.mu.Lock()
	s.Remaining = 1
	s.mu.Unlock()

	if expired := m.tick(s); !expired {
		t.Fatal("tick at zero should report expiry")
	}

	state := s.State()
	if state.Stage != model.StageResults {
		t.Fatalf("stage = %s after expiry, want results", state.Stage)
	}
	if state.RemainingSeconds != 0 {
		t.Errorf("remaining = %d, want 0", state.RemainingSeconds)
	}

	s.mu.Lock()
	got := s.Answers[0].AnswerText
	s.mu.Unlock()
	if got != "partial" {
		t.Errorf("expiry captured %q, want the saved draft", got)
	}
}

func TestLateTickIsNoOp(t *testing.T) {
	m := newTestManager()
	s := startText(t, m, "think", 5)

	if _, err := m.Finish(s.ID); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	before := s.State()
	if expired := m.tick(s); !expired {
		t.Error("tick after results should tell the timer to stop")
	}
	after := s.State()

	if before.RemainingSeconds != after.RemainingSeconds {
		t.Error("late tick mutated the finished session")
	}
}

func TestRestartClearsState(t *testing.T) {
	m := newTestManager()
	s := startText(t, m, "think", 5)

	if _, err := m.SubmitAnswer(s.ID, "first answer"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, err := m.Restart(s.ID); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	state := s.State()
	if state.Stage != model.StageSetup {
		t.Fatalf("stage = %s after restart, want setup", state.Stage)
	}
	if state.QuestionTotal != 0 || state.Report != nil || state.RemainingSeconds != 0 {
		t.Error("restart must clear questions, report, and timer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Answers) != 0 || s.Draft != "" {
		t.Error("restart must clear answers and draft")
	}
}

func TestVoiceExchangeCap(t *testing.T) {
	m := newTestManager()
	s, err := m.Start("user-1", &model.StartSessionRequest{
		Award: "inspire",
		Mode:  model.ModeVoice,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State().Stage != model.StageVoiceInterview {
		t.Fatalf("stage = %s, want voice-interview", s.State().Stage)
	}

	var done bool
	for i := 0; i < MaxVoiceExchanges; i++ {
		done, err = m.RecordExchange(s.ID, "What makes your team unique?", "We mentor rookie teams.")
		if err != nil {
			t.Fatalf("RecordExchange %d: %v", i, err)
		}
	}
	if !done {
		t.Errorf("interview not done after %d exchanges", MaxVoiceExchanges)
	}
}

func TestVoiceClosingPhraseEnds(t *testing.T) {
	m := newTestManager()
	s, _ := m.Start("user-1", &model.StartSessionRequest{Award: "inspire", Mode: model.ModeVoice})

	done, err := m.RecordExchange(s.ID, "Thank you for your time, that was great.", "Thanks!")
	if err != nil {
		t.Fatalf("RecordExchange: %v", err)
	}
	if !done {
		t.Error("closing phrase should end the interview")
	}
}

func TestVoiceFinishBuildsTranscriptAnswers(t *testing.T) {
	m := newTestManager()
	s, _ := m.Start("user-1", &model.StartSessionRequest{Award: "inspire", Mode: model.ModeVoice})

	m.RecordExchange(s.ID, "Tell us about your robot.", "It has a custom intake.")
	m.RecordExchange(s.ID, "How did you test it?", "We ran 40 trials and logged the data.")

	iv, err := m.Finish(s.ID)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	iv.mu.Lock()
	defer iv.mu.Unlock()
	if len(iv.Answers) != 2 {
		t.Fatalf("got %d answers from transcript, want 2", len(iv.Answers))
	}
	if iv.Answers[0].QuestionID != "voice-1" || iv.Answers[1].QuestionID != "voice-2" {
		t.Errorf("voice answer ids = %s, %s", iv.Answers[0].QuestionID, iv.Answers[1].QuestionID)
	}
	if iv.Answers[1].QuestionText != "How did you test it?" {
		t.Errorf("answer paired with wrong question: %q", iv.Answers[1].QuestionText)
	}
	if iv.Report == nil {
		t.Error("voice finish must score the transcript")
	}
}

func TestUseHintCountsPerQuestion(t *testing.T) {
	m := newTestManager()
	s := startText(t, m, "think", 5)

	hints, err := m.UseHint(s.ID)
	if err != nil {
		t.Fatalf("UseHint: %v", err)
	}
	if len(hints) == 0 {
		t.Fatal("hints must never be empty")
	}
	m.UseHint(s.ID)

	if _, err := m.SubmitAnswer(s.ID, "an answer"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Answers[0].CoachHintsUsed != 2 {
		t.Errorf("recorded %d hint uses, want 2", s.Answers[0].CoachHintsUsed)
	}
	if s.HintsUsed != 0 {
		t.Error("hint counter must reset for the next question")
	}
}

func TestGetUnknownSession(t *testing.T) {
	m := newTestManager()
	if _, err := m.Get("missing"); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
