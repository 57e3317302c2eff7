package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"judgesim/internal/model"
	"judgesim/internal/service"
	"judgesim/internal/transport/rest/middleware"
)

// SessionHandler handles practice session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Award == "" {
		writeError(w, http.StatusBadRequest, "award is required")
		return
	}

	userID := middleware.GetUserID(r.Context())
	state, err := h.sessionSvc.Start(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.sessionSvc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// SubmitAnswer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.sessionSvc.SubmitAnswer(r.Context(), id, req.AnswerText)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// SaveDraft handles PUT /v1/sessions/{id}/draft
func (h *SessionHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sessionSvc.SaveDraft(r.Context(), id, req.AnswerText); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Hints handles GET /v1/sessions/{id}/hints
func (h *SessionHandler) Hints(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	hints, err := h.sessionSvc.UseHint(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"hints": hints})
}

// Finish handles POST /v1/sessions/{id}/finish
func (h *SessionHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.sessionSvc.Finish(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Restart handles POST /v1/sessions/{id}/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state, err := h.sessionSvc.Restart(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
