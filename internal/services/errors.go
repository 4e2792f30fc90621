package services

import "errors"

// Billing error taxonomy. Every failure is typed so the HTTP layer can choose
// a status code; none are swallowed or converted to defaults.
var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrUsagePeriodNotFound  = errors.New("usage period not found")

	ErrInvalidQuarter = errors.New("quarter must be between 1 and 4")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")

	// ErrPaymentNotCompleted is returned when applying a payment whose status
	// is not COMPLETED or APPROVED.
	ErrPaymentNotCompleted = errors.New("payment is not completed or approved")

	// ErrPaymentAlreadyApplied protects the at-most-one-invoice invariant.
	ErrPaymentAlreadyApplied = errors.New("payment is already applied to an invoice")

	// ErrPaymentNotLinked is returned when unapplying a payment that is not
	// linked to the given invoice.
	ErrPaymentNotLinked = errors.New("payment is not linked to this invoice")

	// ErrInsufficientPromotionalUnits is a caller logic error: consuming more
	// promotional units than the period has left is never clamped silently.
	ErrInsufficientPromotionalUnits = errors.New("insufficient promotional units")
)
