package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/metrics"
	"github.com/linguabill/lingua-api/internal/store"
)

// OverdueScheduler periodically marks sent and partially paid invoices whose
// due date has passed as overdue. It never touches paid or cancelled
// invoices; the payment application engine may still move an overdue invoice
// to partially_paid or paid when money arrives.
type OverdueScheduler struct {
	invoices store.InvoiceStore
	logger   *zap.Logger
	cron     *cron.Cron
}

// NewOverdueScheduler creates a new overdue scheduler
func NewOverdueScheduler(invoices store.InvoiceStore, logger *zap.Logger) *OverdueScheduler {
	return &OverdueScheduler{
		invoices: invoices,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules the hourly sweep and runs one immediately.
func (s *OverdueScheduler) Start() {
	s.logger.Info("Starting overdue invoice scheduler")

	go s.MarkOverdueInvoices(context.Background())

	if _, err := s.cron.AddFunc("@hourly", func() {
		s.MarkOverdueInvoices(context.Background())
	}); err != nil {
		s.logger.Error("Failed to schedule overdue sweep", zap.Error(err))
		return
	}
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *OverdueScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Overdue invoice scheduler stopped")
}

// MarkOverdueInvoices runs one sweep. Failures on individual invoices are
// logged and skipped so one bad document cannot stall the rest.
func (s *OverdueScheduler) MarkOverdueInvoices(ctx context.Context) {
	now := time.Now().UTC()

	due, err := s.invoices.ListDueInvoices(ctx, now)
	if err != nil {
		s.logger.Error("Failed to list due invoices", zap.Error(err))
		return
	}

	for _, invoice := range due {
		if err := s.invoices.UpdateInvoiceStatus(ctx, invoice.ID, store.InvoiceStatusOverdue, now); err != nil {
			s.logger.Error("Failed to mark invoice overdue",
				zap.String("invoice_id", invoice.ID.Hex()),
				zap.Error(err))
			continue
		}

		metrics.InvoicesMarkedOverdue.Inc()
		s.logger.Info("Marked invoice overdue",
			zap.String("invoice_id", invoice.ID.Hex()),
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.Time("due_date", invoice.DueDate))
	}
}
