package handler

import (
	"encoding/json"
	"net/http"

	"judgesim/internal/model"
	"judgesim/internal/service"
	"judgesim/internal/transport/rest/middleware"
)

// AuthHandler handles profile provisioning
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Signup handles POST /v1/auth/signup. The call is idempotent: provisioning
// an already-known identity returns the existing profile with 200, a fresh
// one returns 201.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FirebaseUID == "" {
		writeError(w, http.StatusBadRequest, "firebaseUid is required")
		return
	}

	profile, created, err := h.authSvc.EnsureProfile(r.Context(), claims, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, profile)
}
