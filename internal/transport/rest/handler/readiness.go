package handler

import (
	"encoding/json"
	"net/http"

	"judgesim/internal/readiness"
)

// ReadinessHandler serves the self-assessment quiz and scoring
type ReadinessHandler struct{}

// NewReadinessHandler creates a new readiness handler
func NewReadinessHandler() *ReadinessHandler {
	return &ReadinessHandler{}
}

// Quiz handles GET /v1/readiness/quiz
func (h *ReadinessHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, readiness.Quiz())
}

type scoreRequest struct {
	Answers map[string]int `json:"answers"`
	Days    int            `json:"days"`
}

// Score handles POST /v1/readiness/score
func (h *ReadinessHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Days == 0 {
		req.Days = 7
	}

	result := readiness.CalculateScore(req.Answers)
	plan := readiness.ActionPlan(result.Percentage, req.Days)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":     result,
		"actionPlan": plan,
	})
}
