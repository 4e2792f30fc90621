package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/metrics"
	"github.com/linguabill/lingua-api/internal/store"
)

// PaymentService links payments to invoices and keeps amount_paid, status and
// the payment_applications audit trail mutually consistent. It is the only
// code path allowed to adjust amount_paid.
type PaymentService struct {
	payments store.PaymentStore
	invoices store.InvoiceStore
	logger   *zap.Logger

	// Per-document locks serialize the read-modify-write cycle; without them
	// two concurrent applications to one invoice could both read the same
	// amount_paid and the second write would clobber the first.
	invoiceLocks *keyedMutex
	paymentLocks *keyedMutex
}

// NewPaymentService creates a new payment service
func NewPaymentService(payments store.PaymentStore, invoices store.InvoiceStore, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		payments:     payments,
		invoices:     invoices,
		logger:       logger,
		invoiceLocks: newKeyedMutex(),
		paymentLocks: newKeyedMutex(),
	}
}

// InvoiceStatusFor derives an invoice's status from its totals. Status is a
// pure function of (total_amount, amount_paid); cancelled and overdue are set
// elsewhere and never produced here.
func InvoiceStatusFor(totalAmount, amountPaid float64) store.InvoiceStatus {
	switch {
	case amountPaid <= 0:
		return store.InvoiceStatusSent
	case amountPaid < totalAmount:
		return store.InvoiceStatusPartiallyPaid
	default:
		return store.InvoiceStatusPaid
	}
}

// statusAfterUpdate recomputes status for the new amount_paid. A cancelled
// invoice is never pulled back into the derived state machine.
func statusAfterUpdate(current store.InvoiceStatus, totalAmount, amountPaid float64) store.InvoiceStatus {
	if current == store.InvoiceStatusCancelled {
		return current
	}
	return InvoiceStatusFor(totalAmount, amountPaid)
}

// ApplyPayment links a completed or approved payment to an invoice, adds its
// amount to amount_paid, recomputes status and appends an audit-trail entry.
//
// The invoice update is a single atomic find-and-update. The subsequent
// payment-link update is best-effort: if it fails, the financial update is
// kept and a warning is logged for reconciliation rather than rolling back.
func (s *PaymentService) ApplyPayment(ctx context.Context, paymentID, invoiceID bson.ObjectID) (*store.Invoice, error) {
	unlockPayment := s.paymentLocks.Lock(paymentID.Hex())
	defer unlockPayment()
	unlockInvoice := s.invoiceLocks.Lock(invoiceID.Hex())
	defer unlockInvoice()

	payment, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	if payment.InvoiceID != nil {
		return nil, ErrPaymentAlreadyApplied
	}

	if payment.Status != store.PaymentStatusCompleted && payment.Status != store.PaymentStatusApproved {
		return nil, ErrPaymentNotCompleted
	}

	invoice, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	now := time.Now().UTC()
	amountDollars := float64(payment.AmountCents) / 100.0
	newAmountPaid := roundCents(invoice.AmountPaid + amountDollars)

	applications := append(invoice.PaymentApplications, store.PaymentApplication{
		PaymentID:         payment.ID,
		ExternalPaymentID: payment.ExternalPaymentID,
		Amount:            amountDollars,
		AppliedAt:         now,
		PayerEmail:        payment.BuyerEmail,
	})

	updated, err := s.invoices.ApplyPaymentUpdate(ctx, invoiceID, store.InvoicePaymentPatch{
		AmountPaid:          newAmountPaid,
		Status:              statusAfterUpdate(invoice.Status, invoice.TotalAmount, newAmountPaid),
		PaymentApplications: applications,
		UpdatedAt:           now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	if err := s.payments.LinkPaymentToInvoice(ctx, paymentID, invoiceID, invoice.SubscriptionID, now); err != nil {
		// The invoice already carries the money; losing the link is preferable
		// to losing the financial update. Leave it for reconciliation.
		s.logger.Warn("Invoice updated but payment link failed",
			zap.String("payment_id", paymentID.Hex()),
			zap.String("invoice_id", invoiceID.Hex()),
			zap.Error(err))
	}

	metrics.PaymentsApplied.Inc()
	s.logger.Info("Applied payment to invoice",
		zap.String("payment_id", paymentID.Hex()),
		zap.String("invoice_id", invoiceID.Hex()),
		zap.Float64("amount", amountDollars),
		zap.Float64("amount_paid", updated.AmountPaid),
		zap.String("status", string(updated.Status)))

	return updated, nil
}

// UnapplyPayment reverses a previous application: it subtracts the payment
// amount (floored at zero), recomputes status, removes the matching audit
// entries and clears the payment's invoice link.
func (s *PaymentService) UnapplyPayment(ctx context.Context, paymentID, invoiceID bson.ObjectID) (*store.Invoice, error) {
	unlockPayment := s.paymentLocks.Lock(paymentID.Hex())
	defer unlockPayment()
	unlockInvoice := s.invoiceLocks.Lock(invoiceID.Hex())
	defer unlockInvoice()

	payment, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	if payment.InvoiceID == nil || *payment.InvoiceID != invoiceID {
		return nil, ErrPaymentNotLinked
	}

	invoice, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	now := time.Now().UTC()
	amountDollars := float64(payment.AmountCents) / 100.0
	newAmountPaid := roundCents(invoice.AmountPaid - amountDollars)
	if newAmountPaid < 0 {
		newAmountPaid = 0
	}

	// A payment can only ever be applied once, so removing every entry with
	// this payment_id removes exactly the application being reversed.
	applications := make([]store.PaymentApplication, 0, len(invoice.PaymentApplications))
	for _, app := range invoice.PaymentApplications {
		if app.PaymentID != payment.ID {
			applications = append(applications, app)
		}
	}

	updated, err := s.invoices.ApplyPaymentUpdate(ctx, invoiceID, store.InvoicePaymentPatch{
		AmountPaid:          newAmountPaid,
		Status:              statusAfterUpdate(invoice.Status, invoice.TotalAmount, newAmountPaid),
		PaymentApplications: applications,
		UpdatedAt:           now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	if err := s.payments.UnlinkPayment(ctx, paymentID, now); err != nil {
		s.logger.Warn("Invoice updated but payment unlink failed",
			zap.String("payment_id", paymentID.Hex()),
			zap.String("invoice_id", invoiceID.Hex()),
			zap.Error(err))
	}

	metrics.PaymentsUnapplied.Inc()
	s.logger.Info("Unapplied payment from invoice",
		zap.String("payment_id", paymentID.Hex()),
		zap.String("invoice_id", invoiceID.Hex()),
		zap.Float64("amount", amountDollars),
		zap.Float64("amount_paid", updated.AmountPaid),
		zap.String("status", string(updated.Status)))

	return updated, nil
}

// GetInvoicePayments returns the payments currently linked to an invoice.
func (s *PaymentService) GetInvoicePayments(ctx context.Context, invoiceID bson.ObjectID) ([]store.Payment, error) {
	payments, err := s.payments.ListPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice payments: %w", err)
	}
	return payments, nil
}

// RecordPayment stores a new Square-style payment record.
func (s *PaymentService) RecordPayment(ctx context.Context, payment *store.Payment) (*store.Payment, error) {
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	created, err := s.payments.CreatePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.logger.Info("Recorded payment",
		zap.String("payment_id", created.ID.Hex()),
		zap.String("external_payment_id", created.ExternalPaymentID),
		zap.Int64("amount_cents", created.AmountCents),
		zap.String("status", string(created.Status)))

	return created, nil
}

// RecordRefund appends a refund sub-record to a payment. The payment amount
// is never mutated; refunds are tracked as separate records.
func (s *PaymentService) RecordRefund(ctx context.Context, paymentID bson.ObjectID, refund store.Refund) error {
	refund.CreatedAt = time.Now().UTC()

	if err := s.payments.AppendRefund(ctx, paymentID, refund); err != nil {
		if err == store.ErrNotFound {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to append refund: %w", err)
	}

	s.logger.Info("Recorded refund",
		zap.String("payment_id", paymentID.Hex()),
		zap.String("external_refund_id", refund.ExternalRefundID),
		zap.Int64("amount_cents", refund.AmountCents))

	return nil
}

// GetPayment loads a payment by id.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID bson.ObjectID) (*store.Payment, error) {
	payment, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return payment, nil
}

// GetPaymentByExternalID loads a payment by its Square payment id.
func (s *PaymentService) GetPaymentByExternalID(ctx context.Context, externalID string) (*store.Payment, error) {
	payment, err := s.payments.GetPaymentByExternalID(ctx, externalID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return payment, nil
}
