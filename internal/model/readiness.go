package model

// ReadinessCategory groups quiz questions for the breakdown
type ReadinessCategory string

const (
	ReadinessEvidence ReadinessCategory = "evidence"
	ReadinessProcess  ReadinessCategory = "process"
	ReadinessImpact   ReadinessCategory = "impact"
	ReadinessPractice ReadinessCategory = "practice"
)

// ReadinessOption is one selectable answer with its point value
type ReadinessOption struct {
	Text  string `json:"text" bson:"text"`
	Score int    `json:"score" bson:"score"`
}

// ReadinessQuestion is one fixed self-assessment quiz question
type ReadinessQuestion struct {
	ID       string            `json:"id" bson:"_id"`
	Text     string            `json:"text" bson:"text"`
	Category ReadinessCategory `json:"category" bson:"category"`
	Options  []ReadinessOption `json:"options" bson:"options"`
}

// CategoryScore is earned vs achievable points within one category
type CategoryScore struct {
	Score int `json:"score"`
	Max   int `json:"max"`
}

// ReadinessResult is the scored quiz outcome
type ReadinessResult struct {
	TotalScore     int                                 `json:"totalScore"`
	Percentage     int                                 `json:"percentage"`
	CategoryScores map[ReadinessCategory]CategoryScore `json:"categoryScores"`
}
