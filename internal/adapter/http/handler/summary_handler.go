package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pattarin/banchi/internal/adapter/http/dto"
	"github.com/pattarin/banchi/internal/usecase"
)

// SummaryHandler serves aggregate queries outside the chat flow, for
// dashboards and the CLI.
type SummaryHandler struct {
	ledger *usecase.LedgerUseCase
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(ledger *usecase.LedgerUseCase) *SummaryHandler {
	return &SummaryHandler{ledger: ledger}
}

// Today returns the current calendar day's aggregate with its entries.
func (h *SummaryHandler) Today(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	sum, entries, err := h.ledger.TodaySummary(r.Context(), groupID)
	if err != nil {
		writeError(w, mapDomainError(err), "summary failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DaySummaryResponse{
		GroupID: groupID,
		DayKey:  h.ledger.TodayKey(),
		Totals:  dto.TotalsFromSummary(sum),
		Entries: dto.EntriesFromDomain(entries),
	})
}

// Cycle returns one cycle's aggregate. The cycle is selected by the "key"
// query parameter (canonical YYYY-MM), by "offset" (signed months from the
// current cycle), or defaults to the current cycle.
func (h *SummaryHandler) Cycle(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	arg := r.URL.Query().Get("key")
	if arg == "" {
		arg = r.URL.Query().Get("offset")
	}

	key, err := h.ledger.ResolveCycleKey(arg)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cycle key", err.Error())
		return
	}

	sum, err := h.ledger.CycleSummary(r.Context(), groupID, key)
	if err != nil {
		writeError(w, mapDomainError(err), "summary failed", err.Error())
		return
	}

	start, end := h.ledger.CycleBounds(key)

	writeJSON(w, http.StatusOK, dto.CycleSummaryResponse{
		GroupID:    groupID,
		CycleKey:   key.String(),
		RangeStart: start.Format("2006-01-02"),
		RangeEnd:   end.Format("2006-01-02"),
		Totals:     dto.TotalsFromSummary(sum),
	})
}
