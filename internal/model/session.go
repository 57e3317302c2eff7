package model

import "time"

// Stage is the session state machine position
type Stage string

const (
	StageSetup          Stage = "setup"
	StageInterview      Stage = "interview"
	StageVoiceInterview Stage = "voice-interview"
	StageResults        Stage = "results"
)

// InterviewMode selects text or voice question flow
type InterviewMode string

const (
	ModeText  InterviewMode = "text"
	ModeVoice InterviewMode = "voice"
)

// DifficultyLevel tunes the judge persona for generated questions
type DifficultyLevel string

const (
	LevelRookie   DifficultyLevel = "rookie"
	LevelStandard DifficultyLevel = "standard"
	LevelAdvanced DifficultyLevel = "advanced"
)

// JudgeStyle tunes the judge's tone
type JudgeStyle string

const (
	StyleFriendly JudgeStyle = "friendly"
	StyleStandard JudgeStyle = "standard"
	StylePressure JudgeStyle = "pressure"
)

// StartSessionRequest begins a practice session
type StartSessionRequest struct {
	Award       string          `json:"award"`
	Mode        InterviewMode   `json:"mode"`
	Difficulty  DifficultyLevel `json:"difficulty"`
	JudgeStyle  JudgeStyle      `json:"judgeStyle"`
	DurationMin int             `json:"durationMin"`
}

// SessionState is the client-facing view of a live session
type SessionState struct {
	ID               string          `json:"id"`
	Stage            Stage           `json:"stage"`
	Award            string          `json:"award"`
	Mode             InterviewMode   `json:"mode"`
	Difficulty       DifficultyLevel `json:"difficulty"`
	JudgeStyle       JudgeStyle      `json:"judgeStyle"`
	DurationMin      int             `json:"durationMin"`
	QuestionIndex    int             `json:"questionIndex"`
	QuestionTotal    int             `json:"questionTotal"`
	CurrentQuestion  *Question       `json:"currentQuestion,omitempty"`
	RemainingSeconds int             `json:"remainingSeconds"`
	Report           *FeedbackReport `json:"report,omitempty"`
	StartedAt        time.Time       `json:"startedAt"`
}

// SubmitAnswerRequest submits the answer to the current question
type SubmitAnswerRequest struct {
	AnswerText string `json:"answerText"`
}
