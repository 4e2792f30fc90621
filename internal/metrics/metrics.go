package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Billing and request counters exported at /metrics.
var (
	InvoicesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingua_invoices_generated_total",
		Help: "Number of invoices generated.",
	})

	PaymentsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingua_payments_applied_total",
		Help: "Number of payments applied to invoices.",
	})

	PaymentsUnapplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingua_payments_unapplied_total",
		Help: "Number of payment applications reversed.",
	})

	InvoicesMarkedOverdue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingua_invoices_marked_overdue_total",
		Help: "Number of invoices marked overdue by the scheduler.",
	})

	WebhookEventsDeduped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lingua_webhook_events_deduped_total",
		Help: "Number of duplicate payment webhook events dropped.",
	})

	TranslationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingua_translation_requests_total",
		Help: "Number of translation requests, by kind.",
	}, []string{"kind"})
)
