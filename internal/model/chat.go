package model

// GenerateQuestionRequest asks the judge service for the next interview
// question given the conversation so far
type GenerateQuestionRequest struct {
	Award               string          `json:"award"`
	Difficulty          DifficultyLevel `json:"difficulty,omitempty"`
	Mode                JudgeStyle      `json:"mode,omitempty"`
	ConversationHistory []ChatMessage   `json:"conversationHistory,omitempty"`
	TeamContext         string          `json:"teamContext,omitempty"`
}

// GenerateQuestionResponse carries the generated question text
type GenerateQuestionResponse struct {
	Question string `json:"question"`
}
