package services

import (
	"fmt"
	"math"
	"time"

	"github.com/linguabill/lingua-api/internal/store"
)

// TaxRate is the flat tax applied to every invoice subtotal.
const TaxRate = 0.06

// quarterPeriods is the canonical quarter-to-months mapping used both to
// expand a quarter into period numbers and to label base line items.
var quarterPeriods = map[int][]int{
	1: {1, 2, 3},
	2: {4, 5, 6},
	3: {7, 8, 9},
	4: {10, 11, 12},
}

// roundCents rounds a dollar amount to whole cents.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// quarterForPeriods matches periodNumbers against the canonical quarter
// mapping by exact list equality. Unrecognized groupings return 0, which is
// deliberately permissive: monthly invoices pass a singleton list and any
// future non-standard grouping is labeled Q0 rather than rejected.
func quarterForPeriods(periodNumbers []int) int {
	for quarter, months := range quarterPeriods {
		if len(months) != len(periodNumbers) {
			continue
		}
		match := true
		for i, m := range months {
			if periodNumbers[i] != m {
				match = false
				break
			}
		}
		if match {
			return quarter
		}
	}
	return 0
}

// baseDescription labels the base subscription line item: the month name when
// the invoice covers a single period, otherwise the matched quarter.
func baseDescription(periodNumbers []int) string {
	if len(periodNumbers) == 1 {
		return fmt.Sprintf("Base Subscription - %s", time.Month(periodNumbers[0]).String())
	}
	return fmt.Sprintf("Base Subscription - Q%d", quarterForPeriods(periodNumbers))
}

// CalculateLineItems computes the line items and subtotal for an invoice
// covering the given periods of a subscription. It is a pure function: no
// side effects, no I/O.
//
// The base line item always comes first, charging the subscription price once
// per covered period. One overage item follows for each covered usage period
// whose consumption exceeded its allocation, in the order periods appear on
// the subscription; periods without overage emit nothing.
func CalculateLineItems(sub *store.Subscription, periodNumbers []int) ([]store.LineItem, float64) {
	quantity := int64(len(periodNumbers))
	base := store.LineItem{
		Description:   baseDescription(periodNumbers),
		PeriodNumbers: periodNumbers,
		Quantity:      quantity,
		UnitPrice:     sub.SubscriptionPrice,
		Amount:        roundCents(float64(quantity) * sub.SubscriptionPrice),
	}

	lineItems := []store.LineItem{base}
	subtotal := base.Amount

	covered := make(map[int]bool, len(periodNumbers))
	for _, n := range periodNumbers {
		covered[n] = true
	}

	for _, period := range sub.UsagePeriods {
		if !covered[period.PeriodNumber] {
			continue
		}
		overage := period.UnitsUsed - period.UnitsAllocated
		if overage <= 0 {
			continue
		}
		item := store.LineItem{
			Description:   fmt.Sprintf("Overage - Period %d", period.PeriodNumber),
			PeriodNumbers: []int{period.PeriodNumber},
			Quantity:      overage,
			UnitPrice:     sub.PricePerUnit,
			Amount:        roundCents(float64(overage) * sub.PricePerUnit),
		}
		lineItems = append(lineItems, item)
		subtotal += item.Amount
	}

	return lineItems, roundCents(subtotal)
}
