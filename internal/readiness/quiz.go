package readiness

import "judgesim/internal/model"

// quiz is the fixed self-assessment. Each question's maximum option score
// contributes to the fixed percentage denominator.
var quiz = []model.ReadinessQuestion{
	{
		ID:       "r1",
		Text:     "Do you have documented test results for your robot in your Engineering Notebook?",
		Category: model.ReadinessEvidence,
		Options: []model.ReadinessOption{
			{Text: "Yes, with multiple tests, data, and charts", Score: 10},
			{Text: "Yes, but limited data", Score: 6},
			{Text: "Some documentation, but incomplete", Score: 3},
			{Text: "No test results documented", Score: 0},
		},
	},
	{
		ID:       "r2",
		Text:     "Can you quantify your community outreach impact?",
		Category: model.ReadinessImpact,
		Options: []model.ReadinessOption{
			{Text: "Yes, with numbers (students reached, events held, etc.)", Score: 10},
			{Text: "Somewhat, but vague estimates", Score: 5},
			{Text: "No, we don't track numbers", Score: 0},
		},
	},
	{
		ID:       "r3",
		Text:     "How many design iterations did your team go through this season?",
		Category: model.ReadinessProcess,
		Options: []model.ReadinessOption{
			{Text: "5+ iterations with documented changes", Score: 10},
			{Text: "3-4 iterations", Score: 7},
			{Text: "1-2 iterations", Score: 4},
			{Text: "No formal iterations", Score: 0},
		},
	},
	{
		ID:       "r4",
		Text:     "Have you practiced answering judging questions under time pressure?",
		Category: model.ReadinessPractice,
		Options: []model.ReadinessOption{
			{Text: "Multiple practice sessions", Score: 10},
			{Text: "Once or twice", Score: 5},
			{Text: "Not yet", Score: 0},
		},
	},
	{
		ID:       "r5",
		Text:     "Do you have specific examples of team collaboration and conflict resolution?",
		Category: model.ReadinessProcess,
		Options: []model.ReadinessOption{
			{Text: "Yes, multiple concrete examples", Score: 10},
			{Text: "One or two examples", Score: 6},
			{Text: "General statements, no specific examples", Score: 2},
			{Text: "Haven't thought about this", Score: 0},
		},
	},
	{
		ID:       "r6",
		Text:     "Can you explain why you made each major design decision?",
		Category: model.ReadinessProcess,
		Options: []model.ReadinessOption{
			{Text: "Yes, with trade-offs and data", Score: 10},
			{Text: "Yes, but mostly intuition", Score: 5},
			{Text: "No, we just built what seemed right", Score: 0},
		},
	},
	{
		ID:       "r7",
		Text:     "Do you have evidence of Gracious Professionalism?",
		Category: model.ReadinessImpact,
		Options: []model.ReadinessOption{
			{Text: "Yes, specific stories and examples", Score: 10},
			{Text: "General understanding, no specific examples", Score: 4},
			{Text: "Not sure what this means", Score: 0},
		},
	},
	{
		ID:       "r8",
		Text:     "How detailed is your Engineering Notebook?",
		Category: model.ReadinessEvidence,
		Options: []model.ReadinessOption{
			{Text: "Very detailed: dates, photos, data, iterations", Score: 10},
			{Text: "Somewhat detailed, but gaps", Score: 6},
			{Text: "Minimal documentation", Score: 2},
			{Text: "No notebook or almost empty", Score: 0},
		},
	},
	{
		ID:       "r9",
		Text:     "Can all team members answer questions about the robot and team?",
		Category: model.ReadinessPractice,
		Options: []model.ReadinessOption{
			{Text: "Yes, everyone is prepared", Score: 10},
			{Text: "Most members are prepared", Score: 7},
			{Text: "Only 1-2 members can answer", Score: 3},
			{Text: "We haven't discussed this", Score: 0},
		},
	},
	{
		ID:       "r10",
		Text:     "Do you have a plan for team sustainability (passing knowledge to new members)?",
		Category: model.ReadinessProcess,
		Options: []model.ReadinessOption{
			{Text: "Yes, documented processes and mentoring plan", Score: 10},
			{Text: "Some ideas, not formalized", Score: 5},
			{Text: "No plan yet", Score: 0},
		},
	},
}

// Quiz returns the fixed readiness quiz
func Quiz() []model.ReadinessQuestion {
	out := make([]model.ReadinessQuestion, len(quiz))
	copy(out, quiz)
	return out
}
