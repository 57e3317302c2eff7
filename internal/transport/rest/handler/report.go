package handler

import (
	"net/http"

	"judgesim/internal/service"
	"judgesim/internal/transport/rest/middleware"
)

// ReportHandler serves stored feedback reports
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// History handles GET /v1/reports
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	reports, err := h.reportSvc.History(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// Latest handles GET /v1/reports/latest
func (h *ReportHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	report, err := h.reportSvc.Latest(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "no reports yet")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
