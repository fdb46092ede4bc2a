package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/anvita-health/anvita/internal/api/middlewares"
	"github.com/anvita-health/anvita/internal/config"
	"github.com/anvita-health/anvita/internal/core/snapshot"
	"github.com/anvita-health/anvita/internal/models"
	"github.com/anvita-health/anvita/internal/phone"
	"github.com/anvita-health/anvita/internal/services"
)

type SnapshotHandler struct {
	svc *services.SnapshotService
	cfg *config.Config
}

func NewSnapshotHandler(svc *services.SnapshotService, cfg *config.Config) *SnapshotHandler {
	return &SnapshotHandler{svc: svc, cfg: cfg}
}

type turnRequest struct {
	OwnerID             string        `json:"ownerId"`
	OwnerPhone          string        `json:"ownerPhone"`
	Message             string        `json:"message"`
	ConversationHistory []models.Turn `json:"conversationHistory"`
}

type turnResponse struct {
	Response           string                     `json:"response"`
	IsComplete         bool                       `json:"isComplete"`
	ReportID           string                     `json:"reportId"`
	StructuredFindings *models.StructuredFindings `json:"structuredFindings,omitempty"`
	CreatedAt          int64                      `json:"createdAt,omitempty"`
	ProviderUsed       string                     `json:"providerUsed"`
}

// Turn handles one conversational exchange of the snapshot flow.
func (h *SnapshotHandler) Turn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.OwnerID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "ownerId and message are required")
		return
	}

	// A verified bearer identity always wins over whatever the body claims.
	if uid, ok := middlewares.UserIDFromContext(ctx); ok {
		req.OwnerID = uid
	}

	normalized := phone.Normalize(req.OwnerPhone, h.cfg.DefaultCountry)
	ownerID := h.svc.ResolveOwner(ctx, req.OwnerID, normalized)

	out, err := h.svc.Turn(ctx, ownerID, normalized, req.ConversationHistory, req.Message)
	if err != nil {
		log.Printf("snapshot turn failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":    "snapshot turn failed",
			"response": snapshot.ApologyMessage,
		})
		return
	}

	resp := turnResponse{
		Response:     out.Response,
		IsComplete:   out.IsComplete,
		ReportID:     out.ReportID,
		ProviderUsed: out.ProviderUsed,
	}
	if out.IsComplete {
		resp.StructuredFindings = out.Findings
		resp.CreatedAt = out.CreatedAt.UnixMilli()
	}
	writeJSON(w, http.StatusOK, resp)
}
