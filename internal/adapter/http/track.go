package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"trackpanel/internal/core/domain"
	"trackpanel/internal/core/port"
)

// handleTrackClick handles inbound tracking hits: it logs the click and
// redirects to the campaign's destination with macros expanded. Unresolvable
// campaigns produce 404; campaigns without a destination produce 400, never
// a redirect to an empty URL.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campRef := q.Get("camp_id")
	if campRef == "" {
		http.Error(w, "missing camp_id", http.StatusBadRequest)
		return
	}
	source := q.Get("source")
	if source == "" {
		source = q.Get("source_id")
	}

	dest, err := h.svc.RouteClick(r.Context(), port.ClickRequest{
		ClickID:     q.Get("click_id"),
		CampaignRef: campRef,
		PublisherID: q.Get("publisher_id"),
		Source:      source,
		GAID:        q.Get("gaid"),
		IDFA:        q.Get("idfa"),
		AppName:     q.Get("app_name"),
		P1:          q.Get("p1"),
		P2:          q.Get("p2"),
		IPAddress:   realIP(r),
		UserAgent:   r.UserAgent(),
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrNoDestination):
		http.Error(w, "campaign has no destination URL", http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("click routing error", slog.Any("error", err))
		http.Error(w, "tracking failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, dest, http.StatusFound)
}
