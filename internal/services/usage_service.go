package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/store"
)

// UsageService maintains per-period consumption counters. The invoice
// calculator reads these as ground truth for overage billing.
type UsageService struct {
	subscriptions store.SubscriptionStore
	logger        *zap.Logger
}

// NewUsageService creates a new usage service
func NewUsageService(subscriptions store.SubscriptionStore, logger *zap.Logger) *UsageService {
	return &UsageService{
		subscriptions: subscriptions,
		logger:        logger,
	}
}

// RecordConsumption applies consumed units to the usage period matching
// periodNumber. Periods are looked up by period_number, never by array index.
//
// When usePromotionalUnits is set, the promotional balance is decremented
// instead; consuming more promotional units than available is a caller logic
// error and fails loudly. Regular consumption may drive units_remaining
// negative — overage is an expected state, not an error.
func (s *UsageService) RecordConsumption(ctx context.Context, subscriptionID bson.ObjectID, periodNumber int, unitsConsumed int64, usePromotionalUnits bool) (*store.UsagePeriod, error) {
	sub, err := s.subscriptions.GetSubscription(ctx, subscriptionID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	var period *store.UsagePeriod
	for i := range sub.UsagePeriods {
		if sub.UsagePeriods[i].PeriodNumber == periodNumber {
			period = &sub.UsagePeriods[i]
			break
		}
	}
	if period == nil {
		return nil, ErrUsagePeriodNotFound
	}

	if usePromotionalUnits {
		if unitsConsumed > period.PromotionalUnits {
			return nil, ErrInsufficientPromotionalUnits
		}
		period.PromotionalUnits -= unitsConsumed
	} else {
		period.UnitsUsed += unitsConsumed
	}

	// Invariant: units_remaining == units_allocated - units_used, enforced on
	// every write.
	period.UnitsRemaining = period.UnitsAllocated - period.UnitsUsed
	period.LastUpdated = time.Now().UTC()

	if err := s.subscriptions.UpdateUsagePeriod(ctx, subscriptionID, *period); err != nil {
		return nil, fmt.Errorf("failed to update usage period: %w", err)
	}

	s.logger.Debug("Recorded consumption",
		zap.String("subscription_id", subscriptionID.Hex()),
		zap.Int("period_number", periodNumber),
		zap.Int64("units_consumed", unitsConsumed),
		zap.Bool("promotional", usePromotionalUnits),
		zap.Int64("units_remaining", period.UnitsRemaining))

	return period, nil
}

// AppendUsagePeriod adds a new usage period to a subscription as a billing
// cycle rolls over. units_remaining is derived before the write.
func (s *UsageService) AppendUsagePeriod(ctx context.Context, subscriptionID bson.ObjectID, period store.UsagePeriod) (*store.UsagePeriod, error) {
	if _, err := s.subscriptions.GetSubscription(ctx, subscriptionID); err != nil {
		if err == store.ErrNotFound {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	period.UnitsRemaining = period.UnitsAllocated - period.UnitsUsed
	period.LastUpdated = time.Now().UTC()

	if err := s.subscriptions.AppendUsagePeriod(ctx, subscriptionID, period); err != nil {
		return nil, fmt.Errorf("failed to append usage period: %w", err)
	}

	s.logger.Info("Appended usage period",
		zap.String("subscription_id", subscriptionID.Hex()),
		zap.Int("period_number", period.PeriodNumber))

	return &period, nil
}
