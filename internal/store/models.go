package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BillingUnit is the unit a subscription is metered in.
type BillingUnit string

const (
	BillingUnitPage      BillingUnit = "page"
	BillingUnitWord      BillingUnit = "word"
	BillingUnitCharacter BillingUnit = "character"
)

// BillingFrequency controls how often invoices are generated for a subscription.
type BillingFrequency string

const (
	BillingMonthly   BillingFrequency = "monthly"
	BillingQuarterly BillingFrequency = "quarterly"
	BillingYearly    BillingFrequency = "yearly"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// InvoiceStatus is the payment state of an invoice. Apart from cancelled and
// overdue, status is always derived from (total_amount, amount_paid).
type InvoiceStatus string

const (
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// PaymentStatus mirrors the Square payment statuses we record.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
	PaymentStatusApproved  PaymentStatus = "APPROVED"
	PaymentStatusCanceled  PaymentStatus = "CANCELED"
)

// UsagePeriod is one billing cycle's worth of consumption bookkeeping,
// embedded in its subscription. units_remaining is derived and kept equal to
// units_allocated - units_used on every write; a negative value means overage.
type UsagePeriod struct {
	PeriodStart      time.Time `bson:"period_start" json:"period_start"`
	PeriodEnd        time.Time `bson:"period_end" json:"period_end"`
	PeriodNumber     int       `bson:"period_number" json:"period_number"`
	UnitsAllocated   int64     `bson:"units_allocated" json:"units_allocated"`
	UnitsUsed        int64     `bson:"units_used" json:"units_used"`
	UnitsRemaining   int64     `bson:"units_remaining" json:"units_remaining"`
	PromotionalUnits int64     `bson:"promotional_units" json:"promotional_units"`
	LastUpdated      time.Time `bson:"last_updated" json:"last_updated"`
}

// Subscription is a company's translation plan. Usage periods are appended as
// billing cycles roll and are never deleted or reordered.
type Subscription struct {
	ID                bson.ObjectID      `bson:"_id,omitempty" json:"id"`
	CompanyName       string             `bson:"company_name" json:"company_name"`
	BillingUnit       BillingUnit        `bson:"billing_unit" json:"billing_unit"`
	UnitsPerPeriod    int64              `bson:"units_per_period" json:"units_per_period"`
	PricePerUnit      float64            `bson:"price_per_unit" json:"price_per_unit"`
	PromotionalUnits  int64              `bson:"promotional_units" json:"promotional_units"`
	DiscountFactor    float64            `bson:"discount_factor" json:"discount_factor"`
	SubscriptionPrice float64            `bson:"subscription_price" json:"subscription_price"`
	StartDate         time.Time          `bson:"start_date" json:"start_date"`
	EndDate           time.Time          `bson:"end_date" json:"end_date"`
	Status            SubscriptionStatus `bson:"status" json:"status"`
	BillingFrequency  BillingFrequency   `bson:"billing_frequency" json:"billing_frequency"`
	PaymentTermsDays  int                `bson:"payment_terms_days" json:"payment_terms_days"`
	UsagePeriods      []UsagePeriod      `bson:"usage_periods" json:"usage_periods"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// LineItem is one billable entry on an invoice: the base subscription charge
// or one period's overage.
type LineItem struct {
	Description   string  `bson:"description" json:"description"`
	PeriodNumbers []int   `bson:"period_numbers" json:"period_numbers"`
	Quantity      int64   `bson:"quantity" json:"quantity"`
	UnitPrice     float64 `bson:"unit_price" json:"unit_price"`
	Amount        float64 `bson:"amount" json:"amount"`
}

// BillingPeriod is the date window an invoice covers.
type BillingPeriod struct {
	PeriodNumbers []int     `bson:"period_numbers" json:"period_numbers"`
	PeriodStart   time.Time `bson:"period_start" json:"period_start"`
	PeriodEnd     time.Time `bson:"period_end" json:"period_end"`
}

// PaymentApplication is an audit-trail entry recording one payment being
// applied to the invoice. Entries are append-only and removed only by the
// unapply operation that reverses them.
type PaymentApplication struct {
	PaymentID         bson.ObjectID `bson:"payment_id" json:"payment_id"`
	ExternalPaymentID string        `bson:"external_payment_id" json:"external_payment_id"`
	Amount            float64       `bson:"amount" json:"amount"`
	AppliedAt         time.Time     `bson:"applied_at" json:"applied_at"`
	PayerEmail        string        `bson:"payer_email" json:"payer_email"`
}

// Invoice is created once by the invoice generator; amount_paid, status and
// payment_applications are mutated only through the payment application
// engine. Invoices are never deleted, cancellation is a status transition.
type Invoice struct {
	ID                  bson.ObjectID        `bson:"_id,omitempty" json:"id"`
	InvoiceNumber       string               `bson:"invoice_number" json:"invoice_number"`
	CompanyName         string               `bson:"company_name" json:"company_name"`
	SubscriptionID      bson.ObjectID        `bson:"subscription_id" json:"subscription_id"`
	InvoiceDate         time.Time            `bson:"invoice_date" json:"invoice_date"`
	DueDate             time.Time            `bson:"due_date" json:"due_date"`
	Status              InvoiceStatus        `bson:"status" json:"status"`
	BillingPeriod       BillingPeriod        `bson:"billing_period" json:"billing_period"`
	LineItems           []LineItem           `bson:"line_items" json:"line_items"`
	Subtotal            float64              `bson:"subtotal" json:"subtotal"`
	TaxAmount           float64              `bson:"tax_amount" json:"tax_amount"`
	TotalAmount         float64              `bson:"total_amount" json:"total_amount"`
	AmountPaid          float64              `bson:"amount_paid" json:"amount_paid"`
	PaymentApplications []PaymentApplication `bson:"payment_applications" json:"payment_applications"`
	CreatedAt           time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time            `bson:"updated_at" json:"updated_at"`
}

// Refund is a Square-style refund sub-record attached to a payment. The
// payment amount itself is never mutated after creation.
type Refund struct {
	ExternalRefundID string    `bson:"external_refund_id" json:"external_refund_id"`
	AmountCents      int64     `bson:"amount_cents" json:"amount_cents"`
	Status           string    `bson:"status" json:"status"`
	Reason           string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// Payment is a recorded Square-style payment. invoice_id and subscription_id
// stay nil until the payment is applied to an invoice; a payment is linked to
// at most one invoice at a time.
type Payment struct {
	ID                bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	ExternalPaymentID string         `bson:"external_payment_id" json:"external_payment_id"`
	AmountCents       int64          `bson:"amount_cents" json:"amount_cents"`
	Currency          string         `bson:"currency" json:"currency"`
	Status            PaymentStatus  `bson:"status" json:"status"`
	SourceType        string         `bson:"source_type,omitempty" json:"source_type,omitempty"`
	BuyerEmail        string         `bson:"buyer_email,omitempty" json:"buyer_email,omitempty"`
	InvoiceID         *bson.ObjectID `bson:"invoice_id,omitempty" json:"invoice_id,omitempty"`
	SubscriptionID    *bson.ObjectID `bson:"subscription_id,omitempty" json:"subscription_id,omitempty"`
	Refunds           []Refund       `bson:"refunds,omitempty" json:"refunds,omitempty"`
	CreatedAt         time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `bson:"updated_at" json:"updated_at"`
}

// TranslationRequest records a text or file translation request. Actual
// translation output comes from the Translator, which is currently stubbed.
type TranslationRequest struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName    string        `bson:"company_name" json:"company_name"`
	SourceLanguage string        `bson:"source_language" json:"source_language"`
	TargetLanguage string        `bson:"target_language" json:"target_language"`
	Kind           string        `bson:"kind" json:"kind"` // "text" or "file"
	FileName       string        `bson:"file_name,omitempty" json:"file_name,omitempty"`
	UnitCount      int64         `bson:"unit_count" json:"unit_count"`
	TranslatedText string        `bson:"translated_text,omitempty" json:"translated_text,omitempty"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
}
