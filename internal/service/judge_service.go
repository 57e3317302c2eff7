package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"judgesim/internal/config"
	"judgesim/internal/model"
	"judgesim/internal/prompt"
)

// fallbackQuestion is returned whenever the AI provider is unreachable,
// misconfigured, or returns garbage. The interview keeps moving either way.
const fallbackQuestion = "Can you tell me more about your process?"

// JudgeService generates interview questions via the Groq chat API
type JudgeService struct {
	config *config.AIConfig
	client *http.Client
}

// NewJudgeService creates a judge service from the default AI config
func NewJudgeService() *JudgeService {
	cfg := config.DefaultAIConfig()
	return &JudgeService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// NewJudgeServiceWith creates a judge service with an explicit config,
// used by tests to point at a stub server.
func NewJudgeServiceWith(cfg *config.AIConfig) *JudgeService {
	return &JudgeService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// GenerateQuestion produces the judge's next question for the conversation.
// Every failure path degrades to the canned fallback question, never an
// error: a broken AI provider must not break a practice session.
func (s *JudgeService) GenerateQuestion(ctx context.Context, req *model.GenerateQuestionRequest) string {
	if !s.config.IsEnabled() {
		return fallbackQuestion
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.LevelStandard
	}
	style := req.Mode
	if style == "" {
		style = model.StyleStandard
	}

	messages := prompt.BuildMessages(req.Award, difficulty, style, req.ConversationHistory, req.TeamContext)
	text, err := s.callChat(ctx, messages, s.config.MaxTokens)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallbackQuestion
	}
	return text
}

// AnalyzeAnswer produces a one-line judge reaction to an answer, used by the
// voice flow between questions. Falls back to a neutral acknowledgement.
func (s *JudgeService) AnalyzeAnswer(ctx context.Context, req *model.GenerateQuestionRequest, answer string) string {
	const fallback = "Thank you for that answer."
	if !s.config.IsEnabled() {
		return fallback
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.LevelStandard
	}
	style := req.Mode
	if style == "" {
		style = model.StyleStandard
	}

	analysis := fmt.Sprintf(`Analyze this answer from a team member: "%s"

Provide brief feedback (1-2 sentences):
- If they mentioned specific data/evidence: acknowledge it
- If answer was vague: note what's missing
- If strong: encourage them to continue

Keep feedback constructive and brief.`, answer)

	messages := prompt.BuildMessages(req.Award, difficulty, style, req.ConversationHistory, req.TeamContext)
	messages = append(messages,
		model.ChatMessage{Role: model.RoleUser, Content: answer},
		model.ChatMessage{Role: model.RoleSystem, Content: analysis},
	)

	text, err := s.callChat(ctx, messages, 100)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

// callChat posts a chat completion request and returns the first choice
func (s *JudgeService) callChat(ctx context.Context, messages []model.ChatMessage, maxTokens int) (string, error) {
	reqBody := map[string]interface{}{
		"messages":    messages,
		"model":       s.config.Model,
		"temperature": s.config.Temperature,
		"max_tokens":  maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion failed with status %d", resp.StatusCode)
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) > 0 {
		return chatResp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("empty response from chat completion")
}
