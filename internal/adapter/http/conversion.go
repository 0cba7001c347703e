package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"trackpanel/internal/core/domain"
	"trackpanel/internal/core/port"
)

// conversionResponse is the JSON body of the conversion endpoint.
type conversionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// handleConversion records one inbound conversion postback. Duplicate
// postbacks for an already-recorded click return 200 like a first delivery;
// partners retry postbacks and a retry must look like success. A missing
// click_id produces 400, an unknown click 404.
func (h *Handler) handleConversion(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.RecordConversion(r.Context(), port.ConversionRequest{
		ClickID:     q.Get("click_id"),
		Payout:      q.Get("payout"),
		CampaignRef: q.Get("camp_id"),
	})
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		h.writeJSON(w, http.StatusBadRequest, conversionResponse{Message: "click_id is required"})
		return
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, conversionResponse{Message: "click not found"})
		return
	case err != nil:
		h.logger.Error("conversion error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, conversionResponse{Message: "conversion failed"})
		return
	}

	msg := "Conversion recorded"
	if res.Duplicate {
		msg = "Conversion already recorded"
	}
	h.writeJSON(w, http.StatusOK, conversionResponse{
		Success: true,
		Message: msg,
		Status:  string(res.Status),
	})
}
