package catalog

import "judgesim/internal/model"

// questions is the full interview question catalog. Award tags control which
// questions a session can draw; ids are stable across releases.
var questions = []model.Question{
	// General / Inspire
	{
		ID:         "q1",
		Text:       "Tell us about your team. What makes you unique?",
		Category:   model.CategoryGeneral,
		Awards:     []string{"inspire", "think", "design"},
		Difficulty: model.DifficultyEasy,
	},
	{
		ID:         "q2",
		Text:       "What are you most proud of this season?",
		Category:   model.CategoryGeneral,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyEasy,
	},

	// Engineering Process / Think
	{
		ID:         "q3",
		Text:       "Walk us through your engineering process this season.",
		Category:   model.CategoryProcess,
		Awards:     []string{"think", "inspire"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q4",
		Text:       "What was your biggest engineering challenge, and how did you solve it?",
		Category:   model.CategoryProcess,
		Awards:     []string{"think", "design", "inspire"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q5",
		Text:       "How do you document your engineering work?",
		Category:   model.CategoryProcess,
		Awards:     []string{"think"},
		Difficulty: model.DifficultyEasy,
	},
	{
		ID:         "q6",
		Text:       "Tell us about a design iteration that didn't work. What did you learn?",
		Category:   model.CategoryProcess,
		Awards:     []string{"think", "design"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q7",
		Text:       "How do you test your robot? What data do you collect?",
		Category:   model.CategoryProcess,
		Awards:     []string{"think", "design"},
		Difficulty: model.DifficultyMedium,
	},

	// Design
	{
		ID:         "q8",
		Text:       "Why did you choose this robot design?",
		Category:   model.CategoryInnovation,
		Awards:     []string{"design", "think"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q9",
		Text:       "What is the most innovative part of your robot?",
		Category:   model.CategoryInnovation,
		Awards:     []string{"design", "inspire"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q10",
		Text:       "How did you prototype your mechanisms before building the final robot?",
		Category:   model.CategoryProcess,
		Awards:     []string{"design"},
		Difficulty: model.DifficultyHard,
	},

	// Outreach / Impact
	{
		ID:         "q11",
		Text:       "Tell us about your outreach activities this season.",
		Category:   model.CategoryImpact,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyEasy,
	},
	{
		ID:         "q12",
		Text:       "How do you measure the impact of your outreach?",
		Category:   model.CategoryImpact,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyHard,
	},
	{
		ID:         "q13",
		Text:       "How does your team spread FIRST values in your community?",
		Category:   model.CategoryImpact,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyMedium,
	},

	// Teamwork
	{
		ID:         "q14",
		Text:       "How does your team make decisions?",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q15",
		Text:       "Tell us about a conflict your team faced and how you resolved it.",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyHard,
	},
	{
		ID:         "q16",
		Text:       "How do you ensure everyone on the team is involved?",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q17",
		Text:       "Give us an example of Gracious Professionalism from your team.",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyMedium,
	},

	// Strategy & Planning
	{
		ID:         "q18",
		Text:       "How did you decide which game tasks to prioritize?",
		Category:   model.CategoryProcess,
		Awards:     []string{"think", "design"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q19",
		Text:       "How do you manage your timeline and deadlines?",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"think", "inspire"},
		Difficulty: model.DifficultyEasy,
	},

	// Specific Technical
	{
		ID:         "q20",
		Text:       "What sensors does your robot use, and why?",
		Category:   model.CategoryInnovation,
		Awards:     []string{"design", "think"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q21",
		Text:       "How does your autonomous program work?",
		Category:   model.CategoryInnovation,
		Awards:     []string{"think", "design"},
		Difficulty: model.DifficultyHard,
	},
	{
		ID:         "q22",
		Text:       "What trade-offs did you make in your robot design?",
		Category:   model.CategoryProcess,
		Awards:     []string{"design", "think"},
		Difficulty: model.DifficultyHard,
	},

	// Sustainability & Future
	{
		ID:         "q23",
		Text:       "How is your team sustainable? How will you pass knowledge to new members?",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyMedium,
	},
	{
		ID:         "q24",
		Text:       "What would you do differently if you started the season over?",
		Category:   model.CategoryGeneral,
		Awards:     []string{"inspire", "think"},
		Difficulty: model.DifficultyMedium,
	},

	// Collaboration
	{
		ID:         "q25",
		Text:       "Have you helped other teams this season? How?",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyEasy,
	},
	{
		ID:         "q26",
		Text:       "What resources or mentors helped your team this year?",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyEasy,
	},

	// Learning
	{
		ID:         "q27",
		Text:       "What did you personally learn this season?",
		Category:   model.CategoryGeneral,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyEasy,
	},
	{
		ID:         "q28",
		Text:       "What skills did team members develop this season?",
		Category:   model.CategoryTeamwork,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyMedium,
	},

	// Unique / Deeper
	{
		ID:         "q29",
		Text:       "If you could give advice to a rookie team, what would it be?",
		Category:   model.CategoryGeneral,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyEasy,
	},
	{
		ID:         "q30",
		Text:       "Why does FIRST matter to your team?",
		Category:   model.CategoryGeneral,
		Awards:     []string{"inspire"},
		Difficulty: model.DifficultyMedium,
	},
}
