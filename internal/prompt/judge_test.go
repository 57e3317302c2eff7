package prompt

import (
	"strings"
	"testing"

	"judgesim/internal/model"
)

func TestBuildJudgePromptComposition(t *testing.T) {
	p := BuildJudgePrompt("think", model.LevelAdvanced, model.StylePressure)

	for _, want := range []string{"THINK AWARD", "ADVANCED", "PRESSURE", "CRITICAL RULES"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q section", want)
		}
	}
}

func TestBuildJudgePromptFallbacks(t *testing.T) {
	p := BuildJudgePrompt("no-such-award", "", "")

	if !strings.Contains(p, "INSPIRE AWARD") {
		t.Error("unknown award must fall back to inspire")
	}
	if !strings.Contains(p, "DIFFICULTY LEVEL: STANDARD") {
		t.Error("empty difficulty must fall back to standard")
	}
	if !strings.Contains(p, "INTERVIEW MODE: STANDARD") {
		t.Error("empty style must fall back to standard")
	}
}

func TestBuildMessagesOrder(t *testing.T) {
	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "Start the interview"},
		{Role: model.RoleAssistant, Content: "Tell us about your robot."},
	}
	msgs := BuildMessages("impact", model.LevelRookie, model.StyleFriendly, history, "rookie team, first season")

	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[0].Role != model.RoleSystem {
		t.Error("system prompt must come first")
	}
	if !strings.Contains(msgs[0].Content, "rookie team, first season") {
		t.Error("team context missing from system prompt")
	}
	if msgs[1] != history[0] || msgs[2] != history[1] {
		t.Error("history must follow unchanged")
	}
}
