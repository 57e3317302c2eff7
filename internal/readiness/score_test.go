package readiness

import (
	"reflect"
	"testing"

	"judgesim/internal/model"
)

func TestCalculateScorePerfect(t *testing.T) {
	answers := make(map[string]int)
	for _, q := range quiz {
		answers[q.ID] = maxOptionScore(q)
	}

	result := CalculateScore(answers)
	if result.Percentage != 100 {
		t.Errorf("perfect answers scored %d%%, want 100%%", result.Percentage)
	}
	if result.TotalScore != 100 {
		t.Errorf("total = %d, want 100", result.TotalScore)
	}
	for category, cs := range result.CategoryScores {
		if cs.Score != cs.Max {
			t.Errorf("category %s scored %d/%d, want full marks", category, cs.Score, cs.Max)
		}
	}
}

func TestCalculateScoreEmpty(t *testing.T) {
	result := CalculateScore(map[string]int{})
	if result.Percentage != 0 || result.TotalScore != 0 {
		t.Errorf("empty answers scored %d%% (%d points), want zero", result.Percentage, result.TotalScore)
	}
}

func TestCalculateScoreMissingAnswersCountZero(t *testing.T) {
	result := CalculateScore(map[string]int{"r1": 10})
	if result.TotalScore != 10 {
		t.Errorf("total = %d, want 10", result.TotalScore)
	}
	if result.Percentage != 10 {
		t.Errorf("percentage = %d, want 10", result.Percentage)
	}
	if cs := result.CategoryScores[model.ReadinessEvidence]; cs.Score != 10 {
		t.Errorf("evidence score = %d, want 10", cs.Score)
	}
}

func TestActionPlanFallsBackToSevenDays(t *testing.T) {
	if got := ActionPlan(40, 10); !reflect.DeepEqual(got, ActionPlan(40, 7)) {
		t.Error("unrecognized day count must fall back to the 7-day plan")
	}
}

func TestActionPlanIgnoresPercentage(t *testing.T) {
	if !reflect.DeepEqual(ActionPlan(10, 7), ActionPlan(90, 7)) {
		t.Error("plan content must not vary with percentage")
	}
}

func TestActionPlanLengths(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{3, 3},
		{7, 5},
		{14, 8},
	}
	for _, tt := range tests {
		if got := len(ActionPlan(50, tt.days)); got != tt.want {
			t.Errorf("%d-day plan has %d steps, want %d", tt.days, got, tt.want)
		}
	}
}
