package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	EntriesRecorded *prometheus.CounterVec
	EntryAmount     *prometheus.HistogramVec
	ParseRejects    prometheus.Counter

	// Reset metrics
	ResetsRequested prometheus.Counter
	ResetsConfirmed prometheus.Counter
	ResetsCancelled prometheus.Counter
	ResetsExpired   prometheus.Counter

	// Dispatch metrics
	MessagesHandled *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banchi_entries_recorded_total",
				Help: "Total number of ledger entries recorded",
			},
			[]string{"sign"},
		),
		EntryAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "banchi_entry_amount",
				Help:    "Recorded entry amounts in minor units",
				Buckets: []float64{10, 100, 500, 1000, 5000, 10000, 100000, 1000000},
			},
			[]string{"sign"},
		),
		ParseRejects: promauto.NewCounter(prometheus.CounterOpts{
			Name: "banchi_parse_rejects_total",
			Help: "Total number of messages that did not parse as transactions",
		}),
		ResetsRequested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "banchi_resets_requested_total",
			Help: "Total number of reset requests started",
		}),
		ResetsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "banchi_resets_confirmed_total",
			Help: "Total number of resets confirmed and applied",
		}),
		ResetsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "banchi_resets_cancelled_total",
			Help: "Total number of reset requests cancelled",
		}),
		ResetsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "banchi_resets_expired_total",
			Help: "Total number of confirmations that arrived after the window",
		}),
		MessagesHandled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banchi_messages_handled_total",
				Help: "Total number of inbound messages by outcome",
			},
			[]string{"outcome"},
		),
	}
}
