package dto

import (
	"time"

	"github.com/pattarin/banchi/internal/adapter/chat"
	"github.com/pattarin/banchi/internal/domain"
	"github.com/pattarin/banchi/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WebhookResponse carries the reply text for one inbound message. An empty
// reply means the message was deliberately ignored.
type WebhookResponse struct {
	Reply string `json:"reply"`
}

// EntryResponse represents one ledger entry in API responses.
type EntryResponse struct {
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
	Sign       string    `json:"sign"`
	Amount     int64     `json:"amount"`
	Label      string    `json:"label"`
	AuthorName string    `json:"author_name,omitempty"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:         e.ID,
		At:         e.At,
		Sign:       string(e.Sign),
		Amount:     e.Amount,
		Label:      e.Label,
		AuthorName: e.AuthorName,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// SummaryTotals holds aggregate figures plus their display forms. Net may
// be negative and is always displayed with an explicit sign.
type SummaryTotals struct {
	Income         int64  `json:"income"`
	Expense        int64  `json:"expense"`
	Net            int64  `json:"net"`
	IncomeDisplay  string `json:"income_display"`
	ExpenseDisplay string `json:"expense_display"`
	NetDisplay     string `json:"net_display"`
}

// TotalsFromSummary converts a usecase summary to response totals.
func TotalsFromSummary(sum usecase.Summary) SummaryTotals {
	return SummaryTotals{
		Income:         sum.Income,
		Expense:        sum.Expense,
		Net:            sum.Net(),
		IncomeDisplay:  chat.FormatAmount(sum.Income),
		ExpenseDisplay: chat.FormatAmount(sum.Expense),
		NetDisplay:     chat.FormatNet(sum.Net()),
	}
}

// DaySummaryResponse is a full-day aggregate with its entries. Day summaries
// never apply reset markers.
type DaySummaryResponse struct {
	GroupID string           `json:"group_id"`
	DayKey  string           `json:"day_key"`
	Totals  SummaryTotals    `json:"totals"`
	Entries []*EntryResponse `json:"entries"`
}

// CycleSummaryResponse is one cycle's aggregate, truncated at the latest
// reset marker when one exists.
type CycleSummaryResponse struct {
	GroupID    string        `json:"group_id"`
	CycleKey   string        `json:"cycle_key"`
	RangeStart string        `json:"range_start"`
	RangeEnd   string        `json:"range_end"`
	Totals     SummaryTotals `json:"totals"`
}
