package model

import "time"

// RubricCategory is one of the six fixed feedback categories
type RubricCategory string

const (
	RubricClarity   RubricCategory = "clarity"
	RubricEvidence  RubricCategory = "evidence"
	RubricProcess   RubricCategory = "process"
	RubricTeamwork  RubricCategory = "teamwork"
	RubricImpact    RubricCategory = "impact"
	RubricAlignment RubricCategory = "alignment"
)

// RubricCategories lists all categories in report order
var RubricCategories = []RubricCategory{
	RubricClarity,
	RubricEvidence,
	RubricProcess,
	RubricTeamwork,
	RubricImpact,
	RubricAlignment,
}

// RubricScore is one category rating, 0-4, with its feedback line.
// Score and feedback are produced together so they never disagree.
type RubricScore struct {
	Category RubricCategory `json:"category" bson:"category"`
	Score    int            `json:"score" bson:"score"`
	Feedback string         `json:"feedback" bson:"feedback"`
}

// FeedbackReport is the scored outcome of a completed session
type FeedbackReport struct {
	Scores          []RubricScore `json:"scores" bson:"scores"`
	Strengths       []string      `json:"strengths" bson:"strengths"`
	Weaknesses      []string      `json:"weaknesses" bson:"weaknesses"`
	Recommendations []string      `json:"recommendations" bson:"recommendations"`
}

// StoredReport is a feedback report persisted for the dashboard history
type StoredReport struct {
	ID        string         `json:"id" bson:"_id"`
	UserID    string         `json:"userId" bson:"userId"`
	SessionID string         `json:"sessionId" bson:"sessionId"`
	Award     string         `json:"award" bson:"award"`
	Report    FeedbackReport `json:"report" bson:"report"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}
