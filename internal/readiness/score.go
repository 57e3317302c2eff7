// Package readiness scores the fixed self-assessment quiz and serves the
// canned preparation plans.
package readiness

import (
	"math"

	"judgesim/internal/model"
)

func maxOptionScore(q model.ReadinessQuestion) int {
	max := 0
	for _, o := range q.Options {
		if o.Score > max {
			max = o.Score
		}
	}
	return max
}

// CalculateScore sums the chosen option score per quiz question and computes
// the percentage against the fixed maximum achievable sum. Missing answers
// count as zero; an empty answer map scores 0%.
func CalculateScore(answers map[string]int) *model.ReadinessResult {
	maxScore := 0
	for _, q := range quiz {
		maxScore += maxOptionScore(q)
	}

	totalScore := 0
	for _, score := range answers {
		totalScore += score
	}

	percentage := 0
	if maxScore > 0 {
		percentage = int(math.Round(float64(totalScore) / float64(maxScore) * 100))
	}

	categoryScores := make(map[model.ReadinessCategory]model.CategoryScore)
	for _, q := range quiz {
		cs := categoryScores[q.Category]
		cs.Max += maxOptionScore(q)
		cs.Score += answers[q.ID]
		categoryScores[q.Category] = cs
	}

	return &model.ReadinessResult{
		TotalScore:     totalScore,
		Percentage:     percentage,
		CategoryScores: categoryScores,
	}
}
