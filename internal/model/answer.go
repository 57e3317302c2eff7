package model

// Answer is one submitted response within a session. QuestionText is a
// snapshot taken at answer time since the catalog may change between releases.
type Answer struct {
	QuestionID     string `json:"questionId"`
	QuestionText   string `json:"questionText"`
	AnswerText     string `json:"answerText"`
	CoachHintsUsed int    `json:"coachHintsUsed,omitempty"`
}

// ChatRole identifies who produced a conversation turn
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in a voice-interview conversation
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
