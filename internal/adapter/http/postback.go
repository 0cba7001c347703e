package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// postbackBody is the JSON shape of the upstream postback setting.
type postbackBody struct {
	URL string `json:"url"`
}

// handleGetPostback returns the configured upstream postback URL. An
// unconfigured setting reads as an empty URL, not an error.
func (h *Handler) handleGetPostback(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.GetPostbackConfig(r.Context())
	if err != nil {
		h.logger.Error("get postback config error", slog.Any("error", err))
		http.Error(w, "failed to fetch settings", http.StatusInternalServerError)
		return
	}
	body := postbackBody{}
	if cfg != nil {
		body.URL = cfg.URL
	}
	h.writeJSON(w, http.StatusOK, body)
}

// handleSavePostback upserts the upstream postback URL. An empty URL clears
// the setting.
func (h *Handler) handleSavePostback(w http.ResponseWriter, r *http.Request) {
	var body postbackBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	cfg, err := h.svc.SavePostbackConfig(r.Context(), body.URL)
	if err != nil {
		h.logger.Error("save postback config error", slog.Any("error", err))
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, postbackBody{URL: cfg.URL})
}
