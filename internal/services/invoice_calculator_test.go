package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linguabill/lingua-api/internal/services"
	"github.com/linguabill/lingua-api/internal/store"
)

func monthlySubscription() *store.Subscription {
	return &store.Subscription{
		CompanyName:       "Acme Translations",
		BillingUnit:       store.BillingUnitPage,
		UnitsPerPeriod:    1000,
		PricePerUnit:      0.10,
		SubscriptionPrice: 100.00,
		UsagePeriods: []store.UsagePeriod{
			{PeriodNumber: 1, UnitsAllocated: 1000, UnitsUsed: 1050, UnitsRemaining: -50},
		},
	}
}

func TestCalculateLineItems_MonthlyWithOverage(t *testing.T) {
	sub := monthlySubscription()

	lineItems, subtotal := services.CalculateLineItems(sub, []int{1})

	assert.Len(t, lineItems, 2)

	base := lineItems[0]
	assert.Equal(t, "Base Subscription - January", base.Description)
	assert.Equal(t, int64(1), base.Quantity)
	assert.Equal(t, 100.00, base.UnitPrice)
	assert.Equal(t, 100.00, base.Amount)

	overage := lineItems[1]
	assert.Equal(t, "Overage - Period 1", overage.Description)
	assert.Equal(t, []int{1}, overage.PeriodNumbers)
	assert.Equal(t, int64(50), overage.Quantity)
	assert.Equal(t, 0.10, overage.UnitPrice)
	assert.Equal(t, 5.00, overage.Amount)

	assert.Equal(t, 105.00, subtotal)
}

func TestCalculateLineItems_QuarterlyNoOverage(t *testing.T) {
	sub := &store.Subscription{
		PricePerUnit:      0.10,
		SubscriptionPrice: 100.00,
		UsagePeriods: []store.UsagePeriod{
			{PeriodNumber: 1, UnitsAllocated: 1000, UnitsUsed: 800},
			{PeriodNumber: 2, UnitsAllocated: 1000, UnitsUsed: 1000},
			{PeriodNumber: 3, UnitsAllocated: 1000, UnitsUsed: 999},
		},
	}

	lineItems, subtotal := services.CalculateLineItems(sub, []int{1, 2, 3})

	// Exactly one base item; fully used periods are not overages.
	assert.Len(t, lineItems, 1)
	assert.Equal(t, "Base Subscription - Q1", lineItems[0].Description)
	assert.Equal(t, int64(3), lineItems[0].Quantity)
	assert.Equal(t, 300.00, lineItems[0].Amount)
	assert.Equal(t, 300.00, subtotal)
}

func TestCalculateLineItems_OverageOrderFollowsUsagePeriods(t *testing.T) {
	sub := &store.Subscription{
		PricePerUnit:      0.25,
		SubscriptionPrice: 50.00,
		UsagePeriods: []store.UsagePeriod{
			{PeriodNumber: 4, UnitsAllocated: 100, UnitsUsed: 120},
			{PeriodNumber: 5, UnitsAllocated: 100, UnitsUsed: 90},
			{PeriodNumber: 6, UnitsAllocated: 100, UnitsUsed: 104},
		},
	}

	lineItems, subtotal := services.CalculateLineItems(sub, []int{4, 5, 6})

	assert.Len(t, lineItems, 3)
	assert.Equal(t, "Base Subscription - Q2", lineItems[0].Description)
	assert.Equal(t, "Overage - Period 4", lineItems[1].Description)
	assert.Equal(t, int64(20), lineItems[1].Quantity)
	assert.Equal(t, "Overage - Period 6", lineItems[2].Description)
	assert.Equal(t, int64(4), lineItems[2].Quantity)

	// 150 base + 5.00 + 1.00 overage
	assert.Equal(t, 156.00, subtotal)
}

func TestCalculateLineItems_NonStandardGroupingLabeledQ0(t *testing.T) {
	sub := &store.Subscription{
		SubscriptionPrice: 100.00,
		UsagePeriods:      []store.UsagePeriod{},
	}

	lineItems, subtotal := services.CalculateLineItems(sub, []int{2, 3})

	assert.Len(t, lineItems, 1)
	assert.Equal(t, "Base Subscription - Q0", lineItems[0].Description)
	assert.Equal(t, int64(2), lineItems[0].Quantity)
	assert.Equal(t, 200.00, subtotal)
}

func TestCalculateLineItems_UncoveredPeriodsIgnored(t *testing.T) {
	sub := &store.Subscription{
		PricePerUnit:      0.10,
		SubscriptionPrice: 100.00,
		UsagePeriods: []store.UsagePeriod{
			{PeriodNumber: 1, UnitsAllocated: 100, UnitsUsed: 500},
			{PeriodNumber: 2, UnitsAllocated: 100, UnitsUsed: 150},
		},
	}

	lineItems, subtotal := services.CalculateLineItems(sub, []int{2})

	// Period 1's large overage is outside the invoice window.
	assert.Len(t, lineItems, 2)
	assert.Equal(t, "Base Subscription - February", lineItems[0].Description)
	assert.Equal(t, "Overage - Period 2", lineItems[1].Description)
	assert.Equal(t, int64(50), lineItems[1].Quantity)
	assert.Equal(t, 105.00, subtotal)
}

func TestCalculateLineItems_SubtotalRoundedToCents(t *testing.T) {
	sub := &store.Subscription{
		PricePerUnit:      0.0333,
		SubscriptionPrice: 99.99,
		UsagePeriods: []store.UsagePeriod{
			{PeriodNumber: 1, UnitsAllocated: 100, UnitsUsed: 107},
		},
	}

	lineItems, subtotal := services.CalculateLineItems(sub, []int{1})

	// 7 * 0.0333 = 0.2331 → 0.23 on the item, subtotal re-rounded.
	assert.Equal(t, 0.23, lineItems[1].Amount)
	assert.Equal(t, 100.22, subtotal)
}
