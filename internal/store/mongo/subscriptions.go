package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/linguabill/lingua-api/internal/store"
)

func (s *Store) CreateSubscription(ctx context.Context, sub *store.Subscription) (*store.Subscription, error) {
	if sub.ID.IsZero() {
		sub.ID = bson.NewObjectID()
	}
	if sub.UsagePeriods == nil {
		sub.UsagePeriods = []store.UsagePeriod{}
	}

	if _, err := s.db.Collection(colSubscriptions).InsertOne(ctx, sub); err != nil {
		return nil, fmt.Errorf("mongo: create subscription: %w", err)
	}
	return sub, nil
}

func (s *Store) GetSubscription(ctx context.Context, id bson.ObjectID) (*store.Subscription, error) {
	var sub store.Subscription
	err := s.db.Collection(colSubscriptions).FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mongo: get subscription: %w", err)
	}
	return &sub, nil
}

func (s *Store) ListSubscriptions(ctx context.Context, companyName string) ([]store.Subscription, error) {
	filter := bson.M{}
	if companyName != "" {
		filter["company_name"] = companyName
	}

	cursor, err := s.db.Collection(colSubscriptions).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: list subscriptions: %w", err)
	}

	var subs []store.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("mongo: decode subscriptions: %w", err)
	}
	return subs, nil
}

func (s *Store) AppendUsagePeriod(ctx context.Context, id bson.ObjectID, period store.UsagePeriod) error {
	res, err := s.db.Collection(colSubscriptions).UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"usage_periods": period},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("mongo: append usage period: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// UpdateUsagePeriod replaces the embedded period matching period_number using
// a positional update, so the whole document never round-trips through the
// application.
func (s *Store) UpdateUsagePeriod(ctx context.Context, id bson.ObjectID, period store.UsagePeriod) error {
	filter := bson.M{
		"_id":                         id,
		"usage_periods.period_number": period.PeriodNumber,
	}
	update := bson.M{
		"$set": bson.M{
			"usage_periods.$": period,
			"updated_at":      time.Now().UTC(),
		},
	}

	res, err := s.db.Collection(colSubscriptions).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("mongo: update usage period: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
