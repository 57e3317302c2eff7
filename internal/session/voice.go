package session

import (
	"fmt"
	"strings"

	"judgesim/internal/model"
)

// Voice conversation phases. The UI mirrors these so the student knows
// whether the judge is waiting, thinking, or talking.
const (
	VoiceIdle       = "idle"
	VoiceListening  = "listening"
	VoiceProcessing = "processing"
	VoiceSpeaking   = "speaking"
)

// isClosing reports whether a judge reply wraps up the interview. Judges are
// prompted to stay in question mode, so a thank-you reads as a goodbye.
func isClosing(question string) bool {
	return strings.Contains(strings.ToLower(question), "thank you")
}

// RecordExchange appends one question/answer round to the voice transcript.
// It returns true when the interview should end: either the judge closed the
// conversation or the exchange cap was hit.
func (m *Manager) RecordExchange(id, question, transcript string) (bool, error) {
	s, err := m.Get(id)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Stage != model.StageVoiceInterview {
		return false, ErrWrongStage
	}

	s.History = append(s.History,
		model.ChatMessage{Role: model.RoleAssistant, Content: question},
		model.ChatMessage{Role: model.RoleUser, Content: transcript},
	)
	s.Exchanges++

	return s.Exchanges >= MaxVoiceExchanges || isClosing(question), nil
}

// VoiceHistory snapshots the conversation so far for prompt building
func (m *Manager) VoiceHistory(id string) ([]model.ChatMessage, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Stage != model.StageVoiceInterview {
		return nil, ErrWrongStage
	}
	out := make([]model.ChatMessage, len(s.History))
	copy(out, s.History)
	return out, nil
}

// transcriptToAnswers pairs each user turn with the assistant question that
// preceded it, skipping the synthetic opener.
func transcriptToAnswers(history []model.ChatMessage) []model.Answer {
	var answers []model.Answer
	question := ""
	for _, msg := range history {
		switch msg.Role {
		case model.RoleAssistant:
			question = msg.Content
		case model.RoleUser:
			if question == "" {
				continue
			}
			answers = append(answers, model.Answer{
				QuestionID:   fmt.Sprintf("voice-%d", len(answers)+1),
				QuestionText: question,
				AnswerText:   msg.Content,
			})
			question = ""
		}
	}
	return answers
}
