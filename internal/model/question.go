package model

// QuestionCategory classifies what an interview question probes for
type QuestionCategory string

const (
	CategoryProcess    QuestionCategory = "process"
	CategoryImpact     QuestionCategory = "impact"
	CategoryTeamwork   QuestionCategory = "teamwork"
	CategoryInnovation QuestionCategory = "innovation"
	CategoryGeneral    QuestionCategory = "general"
)

// Difficulty tiers a question by how much depth it demands
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is one interview prompt from the static catalog.
// Loaded once at startup, never mutated.
type Question struct {
	ID         string           `json:"id" bson:"_id"`
	Text       string           `json:"text" bson:"text"`
	Category   QuestionCategory `json:"category" bson:"category"`
	Awards     []string         `json:"awards" bson:"awards"`
	Difficulty Difficulty       `json:"difficulty" bson:"difficulty"`
}

// ForAward reports whether this question applies to the given award
func (q *Question) ForAward(awardID string) bool {
	for _, a := range q.Awards {
		if a == awardID {
			return true
		}
	}
	return false
}
