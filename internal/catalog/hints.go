package catalog

// Coach hints are guiding questions, never answers. Keyed by question id;
// unmapped ids get the generic fallback set.
var coachHints = map[string][]string{
	"q3": { // Walk us through your engineering process
		"What was your starting point? What problem did you identify first?",
		"How many design iterations did you go through?",
		"What data or tests guided your decisions?",
		"What was the biggest change you made between iterations?",
	},
	"q4": { // Biggest engineering challenge
		"What exactly was the problem? Be specific.",
		"What did you try first? Why didn't it work?",
		"How did you know your solution worked? What data proved it?",
		"What would you do differently if you faced this again?",
	},
	"q6": { // Design iteration that didn't work
		"What were you trying to achieve with that iteration?",
		"What specific problem or failure did you encounter?",
		"What did you learn from that failure?",
		"How did that learning influence your next design?",
	},
	"q7": { // How do you test your robot?
		"What specific metrics do you measure? (e.g., time, accuracy, consistency)",
		"How many tests do you run before making a decision?",
		"Where do you record your test data?",
		"Can you give an example of a test that led to a design change?",
	},
	"q8": { // Why did you choose this robot design?
		"What were your alternatives? Why did you reject them?",
		"What game tasks did you prioritize?",
		"What trade-offs did you make? (e.g., speed vs. stability)",
		"Was there research or inspiration that influenced your design?",
	},
	"q11": { // Tell us about your outreach
		"How many students or people did you reach?",
		"How many events or workshops did you hold?",
		"What specific FIRST values did you teach or demonstrate?",
		"What evidence do you have of your impact? (photos, testimonials, numbers)",
	},
	"q12": { // How do you measure outreach impact?
		"Do you track numbers? (attendees, participants, teams helped)",
		"Do you collect feedback or testimonials?",
		"Have you seen any long-term results? (e.g., new teams formed, students joining STEM)",
		"How do you know your outreach was effective?",
	},
	"q14": { // How does your team make decisions?
		"Do you vote? Discuss? Defer to experts?",
		"Can you give a specific example of a major decision?",
		"How do you ensure everyone's voice is heard?",
		"What happens when there's disagreement?",
	},
	"q15": { // Tell us about a conflict
		"What was the conflict about? Be specific.",
		"Who was involved? How did it affect the team?",
		"What steps did you take to resolve it?",
		"What did your team learn from that experience?",
	},
	"q17": { // Example of Gracious Professionalism
		"Can you describe a specific situation or event?",
		"What actions did your team take that demonstrated GP?",
		"How did the other team or person react?",
		"Why was this example important to your team?",
	},
}

var defaultHints = []string{
	"Can you provide a specific example?",
	"What data or evidence supports your answer?",
	"How does this relate to your team's overall goals?",
	"What was the outcome or result?",
}

// HintsFor returns the coach hints for a question id. Never empty: unmapped
// ids get the generic fallback list.
func HintsFor(questionID string) []string {
	if hints, ok := coachHints[questionID]; ok {
		return hints
	}
	return defaultHints
}
