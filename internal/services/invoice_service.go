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

// DefaultPaymentTermsDays is used when a subscription has no payment terms set.
const DefaultPaymentTermsDays = 30

// InvoiceService orchestrates invoice generation: period selection, billing
// date-range computation, invoice-number assignment and persistence of the
// fully-built document.
type InvoiceService struct {
	subscriptions store.SubscriptionStore
	invoices      store.InvoiceStore
	logger        *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(subscriptions store.SubscriptionStore, invoices store.InvoiceStore, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		subscriptions: subscriptions,
		invoices:      invoices,
		logger:        logger,
	}
}

// GenerateQuarterlyInvoice creates an invoice covering the three periods of
// the given calendar quarter.
func (s *InvoiceService) GenerateQuarterlyInvoice(ctx context.Context, subscriptionID bson.ObjectID, quarter int) (*store.Invoice, error) {
	periods, ok := quarterPeriods[quarter]
	if !ok {
		return nil, ErrInvalidQuarter
	}

	numberFmt := fmt.Sprintf("INV-%d-Q%d-%%s", time.Now().UTC().Year(), quarter)
	return s.createInvoice(ctx, subscriptionID, periods, numberFmt)
}

// GenerateMonthlyInvoice creates an invoice covering a single period.
func (s *InvoiceService) GenerateMonthlyInvoice(ctx context.Context, subscriptionID bson.ObjectID, month int) (*store.Invoice, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	numberFmt := fmt.Sprintf("INV-%d-M%02d-%%s", time.Now().UTC().Year(), month)
	return s.createInvoice(ctx, subscriptionID, []int{month}, numberFmt)
}

// GetInvoice loads a single invoice.
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID bson.ObjectID) (*store.Invoice, error) {
	inv, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

// ListInvoicesByCompany returns all invoices issued to a company.
func (s *InvoiceService) ListInvoicesByCompany(ctx context.Context, companyName string) ([]store.Invoice, error) {
	invoices, err := s.invoices.ListInvoicesByCompany(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// createInvoice is the shared creation routine behind the quarterly and
// monthly entry points. The document is built fully in memory and persisted
// with a single insert, so partial writes never occur.
func (s *InvoiceService) createInvoice(ctx context.Context, subscriptionID bson.ObjectID, periodNumbers []int, numberFmt string) (*store.Invoice, error) {
	sub, err := s.subscriptions.GetSubscription(ctx, subscriptionID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	periodStart, periodEnd := billingDateRange(sub.StartDate, periodNumbers)

	lineItems, subtotal := CalculateLineItems(sub, periodNumbers)
	taxAmount := roundCents(subtotal * TaxRate)
	totalAmount := roundCents(subtotal + taxAmount)

	paymentTerms := sub.PaymentTermsDays
	if paymentTerms <= 0 {
		paymentTerms = DefaultPaymentTermsDays
	}

	now := time.Now().UTC()
	invoice := &store.Invoice{
		InvoiceNumber:  fmt.Sprintf(numberFmt, idSuffix(subscriptionID)),
		CompanyName:    sub.CompanyName,
		SubscriptionID: subscriptionID,
		InvoiceDate:    now,
		DueDate:        now.AddDate(0, 0, paymentTerms),
		Status:         store.InvoiceStatusSent,
		BillingPeriod: store.BillingPeriod{
			PeriodNumbers: periodNumbers,
			PeriodStart:   periodStart,
			PeriodEnd:     periodEnd,
		},
		LineItems:           lineItems,
		Subtotal:            subtotal,
		TaxAmount:           taxAmount,
		TotalAmount:         totalAmount,
		AmountPaid:          0,
		PaymentApplications: []store.PaymentApplication{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.invoices.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("invoice generation failed: %w", err)
	}

	metrics.InvoicesGenerated.Inc()
	s.logger.Info("Generated invoice",
		zap.String("invoice_id", created.ID.Hex()),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.String("subscription_id", subscriptionID.Hex()),
		zap.Float64("total_amount", created.TotalAmount))

	return created, nil
}

// billingDateRange computes the date window displayed on the invoice. Periods
// are assumed calendar-month-aligned to the subscription's start date; the
// actual UsagePeriod dates are read only for overage amounts, not for this
// range. The end lands on the last moment (23:59:59.999999) of the final day.
func billingDateRange(startDate time.Time, periodNumbers []int) (time.Time, time.Time) {
	minPeriod, maxPeriod := periodNumbers[0], periodNumbers[0]
	for _, n := range periodNumbers[1:] {
		if n < minPeriod {
			minPeriod = n
		}
		if n > maxPeriod {
			maxPeriod = n
		}
	}

	periodStart := startDate.AddDate(0, minPeriod-1, 0)
	lastDay := startDate.AddDate(0, maxPeriod, -1)
	periodEnd := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(),
		23, 59, 59, 999999000, time.UTC)

	return periodStart, periodEnd
}

// idSuffix formats the trailing 6 characters of an id for human-readable
// invoice numbers.
func idSuffix(id bson.ObjectID) string {
	hex := id.Hex()
	return hex[len(hex)-6:]
}
