package handler

import (
	"encoding/json"
	"net/http"

	"judgesim/internal/model"
	"judgesim/internal/service"
)

// ChatHandler exposes the AI judge for clients driving their own interview
type ChatHandler struct {
	judgeSvc *service.JudgeService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(judgeSvc *service.JudgeService) *ChatHandler {
	return &ChatHandler{judgeSvc: judgeSvc}
}

// GenerateQuestion handles POST /v1/ai/chat
func (h *ChatHandler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Award == "" {
		writeError(w, http.StatusBadRequest, "award is required")
		return
	}

	question := h.judgeSvc.GenerateQuestion(r.Context(), &req)
	writeJSON(w, http.StatusOK, model.GenerateQuestionResponse{Question: question})
}
