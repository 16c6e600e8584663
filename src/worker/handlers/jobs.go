package handlers

import (
	"net/http"
)

// RunRecompute triggers one recompute pass outside the cron schedule.
func (h *Handler) RunRecompute(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.RunRecompute(r.Context()); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

// RunMarketRefresh triggers one quote and rate refresh pass outside the cron
// schedule.
func (h *Handler) RunMarketRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.RunMarketRefresh(r.Context()); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
