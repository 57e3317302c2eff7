package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"judgesim/internal/catalog"
)

// AwardHandler serves the award catalog
type AwardHandler struct {
	bank *catalog.Bank
}

// NewAwardHandler creates a new award handler
func NewAwardHandler(bank *catalog.Bank) *AwardHandler {
	return &AwardHandler{bank: bank}
}

// List handles GET /v1/awards
func (h *AwardHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bank.Awards())
}

// Get handles GET /v1/awards/{id}
func (h *AwardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	award := h.bank.AwardByID(id)
	if award == nil {
		writeError(w, http.StatusNotFound, "award not found")
		return
	}
	writeJSON(w, http.StatusOK, award)
}
