package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"judgesim/internal/config"
	"judgesim/internal/model"
)

func testAIConfig(baseURL string) *config.AIConfig {
	return &config.AIConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "llama3-70b-8192",
		Temperature: 0.7,
		MaxTokens:   150,
		TimeoutMS:   2000,
	}
}

func chatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
}

func TestGenerateQuestionSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(chatResponse("How did you validate your intake design?"))
	}))
	defer srv.Close()

	svc := NewJudgeServiceWith(testAIConfig(srv.URL))
	question := svc.GenerateQuestion(context.Background(), &model.GenerateQuestionRequest{
		Award: "think",
		ConversationHistory: []model.ChatMessage{
			{Role: model.RoleUser, Content: "Start the interview"},
		},
	})

	if question != "How did you validate your intake design?" {
		t.Errorf("got %q", question)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody["model"] != "llama3-70b-8192" {
		t.Errorf("model = %v", gotBody["model"])
	}
	msgs, ok := gotBody["messages"].([]interface{})
	if !ok || len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system prompt plus history", len(msgs))
	}
	system := msgs[0].(map[string]interface{})
	if system["role"] != "system" {
		t.Error("first message must be the system prompt")
	}
}

func TestGenerateQuestionFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewJudgeServiceWith(testAIConfig(srv.URL))
	question := svc.GenerateQuestion(context.Background(), &model.GenerateQuestionRequest{Award: "think"})
	if question != fallbackQuestion {
		t.Errorf("got %q, want fallback", question)
	}
}

func TestGenerateQuestionFallsBackOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	svc := NewJudgeServiceWith(testAIConfig(srv.URL))
	question := svc.GenerateQuestion(context.Background(), &model.GenerateQuestionRequest{Award: "think"})
	if question != fallbackQuestion {
		t.Errorf("got %q, want fallback", question)
	}
}

func TestGenerateQuestionFallsBackOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	svc := NewJudgeServiceWith(testAIConfig(srv.URL))
	question := svc.GenerateQuestion(context.Background(), &model.GenerateQuestionRequest{Award: "think"})
	if question != fallbackQuestion {
		t.Errorf("got %q, want fallback", question)
	}
}

func TestGenerateQuestionDisabledWithoutKey(t *testing.T) {
	cfg := testAIConfig("http://localhost:1")
	cfg.APIKey = ""

	svc := NewJudgeServiceWith(cfg)
	question := svc.GenerateQuestion(context.Background(), &model.GenerateQuestionRequest{Award: "think"})
	if question != fallbackQuestion {
		t.Errorf("got %q, want fallback when disabled", question)
	}
}

func TestAnalyzeAnswerFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewJudgeServiceWith(testAIConfig(srv.URL))
	got := svc.AnalyzeAnswer(context.Background(), &model.GenerateQuestionRequest{Award: "think"}, "an answer")
	if got != "Thank you for that answer." {
		t.Errorf("got %q, want neutral acknowledgement", got)
	}
}
