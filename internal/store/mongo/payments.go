package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/linguabill/lingua-api/internal/store"
)

func (s *Store) CreatePayment(ctx context.Context, p *store.Payment) (*store.Payment, error) {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}

	if _, err := s.db.Collection(colPayments).InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("mongo: create payment: %w", err)
	}
	return p, nil
}

func (s *Store) GetPayment(ctx context.Context, id bson.ObjectID) (*store.Payment, error) {
	var p store.Payment
	err := s.db.Collection(colPayments).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mongo: get payment: %w", err)
	}
	return &p, nil
}

func (s *Store) GetPaymentByExternalID(ctx context.Context, externalID string) (*store.Payment, error) {
	var p store.Payment
	err := s.db.Collection(colPayments).FindOne(ctx, bson.M{"external_payment_id": externalID}).Decode(&p)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mongo: get payment by external id: %w", err)
	}
	return &p, nil
}

func (s *Store) ListPaymentsByInvoice(ctx context.Context, invoiceID bson.ObjectID) ([]store.Payment, error) {
	cursor, err := s.db.Collection(colPayments).Find(ctx, bson.M{"invoice_id": invoiceID})
	if err != nil {
		return nil, fmt.Errorf("mongo: list payments by invoice: %w", err)
	}

	var payments []store.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("mongo: decode payments: %w", err)
	}
	return payments, nil
}

func (s *Store) LinkPaymentToInvoice(ctx context.Context, paymentID, invoiceID, subscriptionID bson.ObjectID, updatedAt time.Time) error {
	res, err := s.db.Collection(colPayments).UpdateByID(ctx, paymentID, bson.M{
		"$set": bson.M{
			"invoice_id":      invoiceID,
			"subscription_id": subscriptionID,
			"updated_at":      updatedAt,
		},
	})
	if err != nil {
		return fmt.Errorf("mongo: link payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) UnlinkPayment(ctx context.Context, paymentID bson.ObjectID, updatedAt time.Time) error {
	res, err := s.db.Collection(colPayments).UpdateByID(ctx, paymentID, bson.M{
		"$unset": bson.M{"invoice_id": "", "subscription_id": ""},
		"$set":   bson.M{"updated_at": updatedAt},
	})
	if err != nil {
		return fmt.Errorf("mongo: unlink payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) AppendRefund(ctx context.Context, paymentID bson.ObjectID, refund store.Refund) error {
	res, err := s.db.Collection(colPayments).UpdateByID(ctx, paymentID, bson.M{
		"$push": bson.M{"refunds": refund},
		"$set":  bson.M{"updated_at": refund.CreatedAt},
	})
	if err != nil {
		return fmt.Errorf("mongo: append refund: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
