package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anvita-health/anvita/internal/services"
)

type ReportHandler struct {
	svc *services.SnapshotService
}

func NewReportHandler(svc *services.SnapshotService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Get serves a stored snapshot report by id.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportId")
	if reportID == "" {
		writeError(w, http.StatusBadRequest, "reportId is required")
		return
	}

	report, err := h.svc.GetReport(r.Context(), reportID)
	if err != nil {
		log.Printf("report lookup failed for %s: %v", reportID, err)
		writeError(w, http.StatusInternalServerError, "report lookup failed")
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
