package handlers

import (
	"net/http"
	"networth/src/utils"
	"time"
)

// GetAggregatedHoldings returns the aggregated holdings table as computed by
// the last recompute run.
func (h *Handler) GetAggregatedHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.Controller.GetAggregatedHoldings(h.context(r))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holdings, http.StatusOK)
}

// GetSnapshots returns the periodic snapshots between the from and to period
// keys, both inclusive. Defaults to the trailing year.
func (h *Handler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	fromKey := r.URL.Query().Get("from")
	toKey := r.URL.Query().Get("to")
	if toKey == "" {
		toKey = utils.PeriodKeyFor(time.Now())
	}
	if fromKey == "" {
		fromKey = utils.PeriodKeyFor(time.Now().AddDate(-1, 0, 0))
	}
	for _, key := range []string{fromKey, toKey} {
		if _, err := utils.ParsePeriodKey(key); err != nil {
			h.HandleErrors(w, utils.BadRequest(err.Error()))
			return
		}
	}

	snapshots, err := h.Controller.GetSnapshots(h.context(r), fromKey, toKey)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, snapshots, http.StatusOK)
}

// Recompute triggers a full pipeline run. An optional period query overrides
// the period key; when another run holds the lock the response reports
// skipped=true rather than failing.
func (h *Handler) Recompute(w http.ResponseWriter, r *http.Request) {
	periodKey := r.URL.Query().Get("period")
	if periodKey != "" {
		if _, err := utils.ParsePeriodKey(periodKey); err != nil {
			h.HandleErrors(w, utils.BadRequest(err.Error()))
			return
		}
	}

	summary, err := h.Controller.Recompute(h.context(r), periodKey)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, summary, http.StatusOK)
}

// RefreshMarketData refreshes the quote and exchange-rate tables from the
// external providers.
func (h *Handler) RefreshMarketData(w http.ResponseWriter, r *http.Request) {
	ctx := h.context(r)

	quotesUpdated, err := h.Controller.SyncService.RefreshQuotes(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	ratesUpdated, err := h.Controller.SyncService.RefreshRates(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]int{
		"quotesUpdated": quotesUpdated,
		"ratesUpdated":  ratesUpdated,
	}, http.StatusOK)
}
