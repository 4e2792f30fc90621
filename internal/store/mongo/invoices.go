package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/linguabill/lingua-api/internal/store"
)

func (s *Store) CreateInvoice(ctx context.Context, inv *store.Invoice) (*store.Invoice, error) {
	if inv.ID.IsZero() {
		inv.ID = bson.NewObjectID()
	}
	if inv.PaymentApplications == nil {
		inv.PaymentApplications = []store.PaymentApplication{}
	}

	if _, err := s.db.Collection(colInvoices).InsertOne(ctx, inv); err != nil {
		return nil, fmt.Errorf("mongo: create invoice: %w", err)
	}
	return inv, nil
}

func (s *Store) GetInvoice(ctx context.Context, id bson.ObjectID) (*store.Invoice, error) {
	var inv store.Invoice
	err := s.db.Collection(colInvoices).FindOne(ctx, bson.M{"_id": id}).Decode(&inv)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mongo: get invoice: %w", err)
	}
	return &inv, nil
}

func (s *Store) ListInvoicesByCompany(ctx context.Context, companyName string) ([]store.Invoice, error) {
	cursor, err := s.db.Collection(colInvoices).Find(ctx,
		bson.M{"company_name": companyName},
		options.Find().SetSort(bson.D{{Key: "invoice_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo: list invoices: %w", err)
	}

	var invoices []store.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("mongo: decode invoices: %w", err)
	}
	return invoices, nil
}

// ApplyPaymentUpdate writes the payment patch in one find-and-update so the
// document can never be observed with only part of the field set applied.
func (s *Store) ApplyPaymentUpdate(ctx context.Context, id bson.ObjectID, patch store.InvoicePaymentPatch) (*store.Invoice, error) {
	update := bson.M{
		"$set": bson.M{
			"amount_paid":          patch.AmountPaid,
			"status":               patch.Status,
			"payment_applications": patch.PaymentApplications,
			"updated_at":           patch.UpdatedAt,
		},
	}

	var inv store.Invoice
	err := s.db.Collection(colInvoices).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&inv)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mongo: apply payment update: %w", err)
	}
	return &inv, nil
}

func (s *Store) UpdateInvoiceStatus(ctx context.Context, id bson.ObjectID, status store.InvoiceStatus, updatedAt time.Time) error {
	res, err := s.db.Collection(colInvoices).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"status": status, "updated_at": updatedAt},
	})
	if err != nil {
		return fmt.Errorf("mongo: update invoice status: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListDueInvoices(ctx context.Context, asOf time.Time) ([]store.Invoice, error) {
	filter := bson.M{
		"status":   bson.M{"$in": []store.InvoiceStatus{store.InvoiceStatusSent, store.InvoiceStatusPartiallyPaid}},
		"due_date": bson.M{"$lt": asOf},
	}

	cursor, err := s.db.Collection(colInvoices).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: list due invoices: %w", err)
	}

	var invoices []store.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("mongo: decode due invoices: %w", err)
	}
	return invoices, nil
}
