package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fiscledger"

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Journal entry metrics
	EntriesCreated  prometheus.Counter
	EntriesPosted   prometheus.Counter
	EntriesVoided   prometheus.Counter
	EntriesDeleted  prometheus.Counter
	EntryRejections *prometheus.CounterVec
	EntryLines      prometheus.Histogram

	// Fiscal year metrics
	FiscalYearTransitions *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Outbox metrics
	OutboxPublished prometheus.Counter
	OutboxFailed    prometheus.Counter
	OutboxPurged    prometheus.Counter

	// Idempotency metrics
	IdempotentReplays prometheus.Counter
}

// New creates the metrics and registers them with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		EntriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_created_total",
			Help:      "Total number of journal entries created",
		}),
		EntriesPosted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_posted_total",
			Help:      "Total number of journal entries posted",
		}),
		EntriesVoided: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_voided_total",
			Help:      "Total number of journal entries voided",
		}),
		EntriesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_deleted_total",
			Help:      "Total number of draft journal entries deleted",
		}),
		EntryRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entry_rejections_total",
				Help:      "Journal entry commands rejected, by operation and reason",
			},
			[]string{"operation", "reason"},
		),
		EntryLines: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "entry_lines",
			Help:      "Number of lines per created journal entry",
			Buckets:   []float64{2, 3, 4, 6, 10, 20, 50, 100},
		}),

		FiscalYearTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fiscal_year_transitions_total",
				Help:      "Fiscal year status transitions by target status",
			},
			[]string{"status"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		OutboxPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox events delivered to the broker",
		}),
		OutboxFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_failed_total",
			Help:      "Outbox events that failed to publish",
		}),
		OutboxPurged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_purged_total",
			Help:      "Published outbox events removed after retention",
		}),

		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotent_replays_total",
			Help:      "Responses served from the idempotency store",
		}),
	}
}
