package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound is returned when a referenced document does not exist. Callers
// translate it into their own typed not-found errors.
var ErrNotFound = errors.New("store: document not found")

// InvoicePaymentPatch is the field set written atomically when a payment is
// applied to or unapplied from an invoice.
type InvoicePaymentPatch struct {
	AmountPaid          float64
	Status              InvoiceStatus
	PaymentApplications []PaymentApplication
	UpdatedAt           time.Time
}

// SubscriptionStore persists subscriptions and their embedded usage periods.
type SubscriptionStore interface {
	CreateSubscription(ctx context.Context, sub *Subscription) (*Subscription, error)
	GetSubscription(ctx context.Context, id bson.ObjectID) (*Subscription, error)
	ListSubscriptions(ctx context.Context, companyName string) ([]Subscription, error)
	// AppendUsagePeriod adds a usage period to the end of the subscription's
	// period list. Periods are never removed or reordered.
	AppendUsagePeriod(ctx context.Context, id bson.ObjectID, period UsagePeriod) error
	// UpdateUsagePeriod replaces the usage period matching period.PeriodNumber
	// in a single atomic update.
	UpdateUsagePeriod(ctx context.Context, id bson.ObjectID, period UsagePeriod) error
}

// InvoiceStore persists invoices. ApplyPaymentUpdate must be a single atomic
// find-and-update so concurrent writers cannot corrupt the document.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, inv *Invoice) (*Invoice, error)
	GetInvoice(ctx context.Context, id bson.ObjectID) (*Invoice, error)
	ListInvoicesByCompany(ctx context.Context, companyName string) ([]Invoice, error)
	// ApplyPaymentUpdate atomically sets amount_paid, status,
	// payment_applications and updated_at, returning the updated document.
	ApplyPaymentUpdate(ctx context.Context, id bson.ObjectID, patch InvoicePaymentPatch) (*Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id bson.ObjectID, status InvoiceStatus, updatedAt time.Time) error
	// ListDueInvoices returns invoices still awaiting payment whose due date
	// has passed.
	ListDueInvoices(ctx context.Context, asOf time.Time) ([]Invoice, error)
}

// PaymentStore persists Square-style payment records.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p *Payment) (*Payment, error)
	GetPayment(ctx context.Context, id bson.ObjectID) (*Payment, error)
	GetPaymentByExternalID(ctx context.Context, externalID string) (*Payment, error)
	ListPaymentsByInvoice(ctx context.Context, invoiceID bson.ObjectID) ([]Payment, error)
	// LinkPaymentToInvoice sets invoice_id and subscription_id on the payment.
	LinkPaymentToInvoice(ctx context.Context, paymentID, invoiceID, subscriptionID bson.ObjectID, updatedAt time.Time) error
	// UnlinkPayment clears invoice_id and subscription_id.
	UnlinkPayment(ctx context.Context, paymentID bson.ObjectID, updatedAt time.Time) error
	AppendRefund(ctx context.Context, paymentID bson.ObjectID, refund Refund) error
}

// TranslationStore records translation requests.
type TranslationStore interface {
	CreateTranslationRequest(ctx context.Context, req *TranslationRequest) (*TranslationRequest, error)
	ListTranslationRequests(ctx context.Context, companyName string) ([]TranslationRequest, error)
}

// Store aggregates all collections plus connectivity checks.
type Store interface {
	SubscriptionStore
	InvoiceStore
	PaymentStore
	TranslationStore
	Ping(ctx context.Context) error
}
