package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trackpanel/internal/core/domain"
)

// handleReprocess re-derives sampling statuses for every conversion of a
// campaign under its current rules. Synchronous: the response reports how
// many records changed.
func (h *Handler) handleReprocess(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ReprocessCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.reprocessError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// samplingUpdateRequest carries a campaign's replacement rule list.
type samplingUpdateRequest struct {
	Sampling []domain.SamplingRule `json:"sampling"`
}

// handleUpdateSampling persists a new rule list and reprocesses existing
// conversions under it.
func (h *Handler) handleUpdateSampling(w http.ResponseWriter, r *http.Request) {
	var req samplingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.UpdateSamplingRules(r.Context(), chi.URLParam(r, "id"), req.Sampling)
	if err != nil {
		h.reprocessError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) reprocessError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}
	h.logger.Error("reprocess error", slog.Any("error", err))
	http.Error(w, "reprocess failed", http.StatusInternalServerError)
}
