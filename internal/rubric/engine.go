// Package rubric scores a completed practice session against the six
// feedback categories. Scoring is a pure function of the answer texts and
// the target award: no I/O, no randomness.
package rubric

import (
	"regexp"
	"strings"

	"judgesim/internal/model"
)

// Keywords for scoring. Matching is case-insensitive substring containment
// over the concatenated answer text.
var (
	evidenceKeywords = []string{"test", "data", "measured", "result", "metric", "percent", "%", "number", "increase", "decrease", "improved", "performance"}
	processKeywords  = []string{"iteration", "prototype", "design", "problem", "solution", "challenge", "changed", "modified", "learned", "failed", "tried"}
	teamworkKeywords = []string{"team", "together", "collaborated", "worked with", "our", "we", "member", "role", "shared"}
	impactKeywords   = []string{"community", "outreach", "students", "taught", "helped", "reached", "event", "workshop", "impact", "spread"}
)

var (
	digitsRe        = regexp.MustCompile(`\d+`)
	impactReachRe   = regexp.MustCompile(`\d+\s*(students|people|teams|events)`)
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

func countKeywords(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func scoreClarity(answer string) (int, string) {
	length := len(strings.TrimSpace(answer))
	sentences := 0
	for _, s := range sentenceSplitRe.Split(answer, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	if length < 50 {
		return 1, "Answer is too brief. Provide more detail and examples."
	}
	if length < 150 {
		return 2, "Answer is somewhat clear but could use more structure and detail."
	}
	if sentences >= 3 {
		return 4, "Answer is clear, well-structured, and detailed."
	}
	return 3, "Answer is clear with good detail. Consider adding more specific examples."
}

func scoreEvidence(answer string) (int, string) {
	lower := strings.ToLower(answer)
	count := countKeywords(lower, evidenceKeywords)
	hasNumbers := digitsRe.MatchString(answer)

	// Band order matters: the top band is carved out before the
	// one-keyword-or-bare-digits band can cap the score at 2.
	if count == 0 && !hasNumbers {
		return 1, "No specific evidence or data mentioned. Add metrics, test results, or concrete examples."
	}
	if count >= 2 && hasNumbers {
		return 4, "Excellent use of evidence and data. Your answer is well-supported."
	}
	if count == 1 || hasNumbers {
		return 2, "Some evidence provided. Include more specific data or test results."
	}
	return 3, "Good evidence. Consider adding more quantitative data."
}

func scoreProcess(answer string) (int, string) {
	count := countKeywords(strings.ToLower(answer), processKeywords)

	if count == 0 {
		return 1, "No engineering process described. Explain your design iterations and problem-solving."
	}
	if count == 1 {
		return 2, "Some process mentioned. Describe more iterations, challenges, and learnings."
	}
	if count >= 3 {
		return 4, "Strong description of engineering process with iterations and learning."
	}
	return 3, "Good process description. Add more detail about specific challenges."
}

func scoreTeamwork(answer string) (int, string) {
	count := countKeywords(strings.ToLower(answer), teamworkKeywords)

	if count == 0 {
		return 1, "No team collaboration mentioned. Judges want to hear about teamwork."
	}
	if count == 1 {
		return 2, "Team mentioned but not emphasized. Describe specific collaborative efforts."
	}
	if count >= 3 {
		return 4, "Excellent emphasis on team collaboration and roles."
	}
	return 3, "Good teamwork mentioned. Add specific examples of collaboration."
}

func scoreImpact(answer string) (int, string) {
	lower := strings.ToLower(answer)
	count := countKeywords(lower, impactKeywords)
	hasReach := impactReachRe.MatchString(lower)

	if count == 0 {
		return 1, "No community impact or outreach mentioned."
	}
	if hasReach {
		return 4, "Excellent description of measurable community impact."
	}
	if count >= 2 {
		return 3, "Good impact mentioned. Quantify the reach (e.g., number of students)."
	}
	return 2, "Some impact mentioned. Add more details and measurable outcomes."
}

func scoreAlignment(answer, awardID string) (int, string) {
	lower := strings.ToLower(answer)

	switch awardID {
	case "think":
		hasEngineering := countKeywords(lower, processKeywords) > 0
		hasData := countKeywords(lower, evidenceKeywords) > 0
		if hasEngineering && hasData {
			return 4, "Answer aligns well with Think Award focus on engineering."
		}
		if hasEngineering || hasData {
			return 3, "Good engineering focus. Add more technical details."
		}
		return 2, "Not enough engineering process for Think Award. Describe iterations and data."

	case "design":
		hasDesign := strings.Contains(lower, "design") || strings.Contains(lower, "cad") || strings.Contains(lower, "prototype")
		if hasDesign {
			return 4, "Answer aligns well with Design Award focus."
		}
		return 2, "For Design Award, emphasize design decisions, CAD, and prototyping."

	case "inspire":
		balanced := 0
		for _, keywords := range [][]string{evidenceKeywords, processKeywords, teamworkKeywords, impactKeywords} {
			if countKeywords(lower, keywords) > 0 {
				balanced++
			}
		}
		if balanced >= 3 {
			return 4, "Balanced answer covering multiple aspects—perfect for Inspire Award."
		}
		if balanced >= 2 {
			return 3, "Good coverage. Inspire Award judges want to see excellence in all areas."
		}
		return 2, "Inspire Award requires comprehensive excellence. Cover engineering, teamwork, and impact."
	}

	return 3, "Answer is relevant to the award."
}

// CalculateScores scores all answers of a session for the given award.
// Answers are concatenated and scored as one text; each category returns its
// score and feedback as a pair so they never disagree. Deterministic for
// identical input, and safe for an empty answer set (all floors).
func CalculateScores(answers []model.Answer, awardID string) *model.FeedbackReport {
	texts := make([]string, 0, len(answers))
	for _, a := range answers {
		texts = append(texts, a.AnswerText)
	}
	combined := strings.Join(texts, " ")

	type scored struct {
		category model.RubricCategory
		fn       func(string) (int, string)
	}

	scores := make([]model.RubricScore, 0, len(model.RubricCategories))
	for _, s := range []scored{
		{model.RubricClarity, scoreClarity},
		{model.RubricEvidence, scoreEvidence},
		{model.RubricProcess, scoreProcess},
		{model.RubricTeamwork, scoreTeamwork},
		{model.RubricImpact, scoreImpact},
		{model.RubricAlignment, func(text string) (int, string) { return scoreAlignment(text, awardID) }},
	} {
		score, feedback := s.fn(combined)
		scores = append(scores, model.RubricScore{Category: s.category, Score: score, Feedback: feedback})
	}

	var strengths, weaknesses, recommendations []string
	for _, s := range scores {
		if s.Score >= 4 {
			strengths = append(strengths, s.Feedback)
		}
		if s.Score <= 2 {
			weaknesses = append(weaknesses, s.Feedback)
		}
	}

	byCategory := func(c model.RubricCategory) int {
		for _, s := range scores {
			if s.Category == c {
				return s.Score
			}
		}
		return 0
	}

	if byCategory(model.RubricEvidence) <= 2 {
		recommendations = append(recommendations, "Add specific test data and metrics to your Engineering Notebook.")
	}
	if byCategory(model.RubricProcess) <= 2 {
		recommendations = append(recommendations, "Document your design iterations with dates, changes, and reasons.")
	}
	if byCategory(model.RubricTeamwork) <= 2 {
		recommendations = append(recommendations, "Highlight specific team roles and collaborative efforts.")
	}
	if byCategory(model.RubricImpact) <= 2 {
		recommendations = append(recommendations, `Quantify your outreach impact (e.g., "We taught 150 students at 5 workshops").`)
	}
	if byCategory(model.RubricClarity) <= 2 {
		recommendations = append(recommendations, "Practice structuring answers: Problem → Action → Result.")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Great work! Keep practicing to maintain consistency under pressure.")
	}
	if len(strengths) == 0 {
		strengths = []string{"You provided detailed responses."}
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{"Minor improvements possible—see recommendations."}
	}

	return &model.FeedbackReport{
		Scores:          scores,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}
