package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/mocks"
	"github.com/linguabill/lingua-api/internal/services"
	"github.com/linguabill/lingua-api/internal/store"
)

func quarterlySubscription(id bson.ObjectID) *store.Subscription {
	return &store.Subscription{
		ID:                id,
		CompanyName:       "Acme Translations",
		PricePerUnit:      0.10,
		SubscriptionPrice: 100.00,
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PaymentTermsDays:  30,
		UsagePeriods: []store.UsagePeriod{
			{PeriodNumber: 1, UnitsAllocated: 1000, UnitsUsed: 1050},
			{PeriodNumber: 2, UnitsAllocated: 1000, UnitsUsed: 900},
			{PeriodNumber: 3, UnitsAllocated: 1000, UnitsUsed: 1000},
		},
	}
}

func TestInvoiceService_GenerateQuarterlyInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := bson.NewObjectID()
	subs := mocks.NewMockSubscriptionStore(ctrl)
	invoices := mocks.NewMockInvoiceStore(ctrl)

	subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(quarterlySubscription(subID), nil)
	invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *store.Invoice) (*store.Invoice, error) {
			return inv, nil
		})

	service := services.NewInvoiceService(subs, invoices, zap.NewNop())
	invoice, err := service.GenerateQuarterlyInvoice(context.Background(), subID, 1)
	require.NoError(t, err)

	// Base 300 + 5.00 overage for period 1.
	assert.Equal(t, 305.00, invoice.Subtotal)
	assert.Equal(t, 18.30, invoice.TaxAmount)
	assert.Equal(t, 323.30, invoice.TotalAmount)
	assert.Equal(t, 0.0, invoice.AmountPaid)
	assert.Equal(t, store.InvoiceStatusSent, invoice.Status)
	assert.Empty(t, invoice.PaymentApplications)

	assert.Equal(t, "Acme Translations", invoice.CompanyName)
	assert.Equal(t, subID, invoice.SubscriptionID)
	assert.Equal(t, []int{1, 2, 3}, invoice.BillingPeriod.PeriodNumbers)

	expectedNumber := fmt.Sprintf("INV-%d-Q1-%s", time.Now().UTC().Year(), subID.Hex()[len(subID.Hex())-6:])
	assert.Equal(t, expectedNumber, invoice.InvoiceNumber)

	// Jan 1 through the last moment of Mar 31.
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), invoice.BillingPeriod.PeriodStart)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999000, time.UTC), invoice.BillingPeriod.PeriodEnd)

	assert.Equal(t, invoice.InvoiceDate.AddDate(0, 0, 30), invoice.DueDate)
}

func TestInvoiceService_GenerateMonthlyInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := bson.NewObjectID()
	sub := quarterlySubscription(subID)
	sub.PaymentTermsDays = 0 // falls back to net 30

	subs := mocks.NewMockSubscriptionStore(ctrl)
	invoices := mocks.NewMockInvoiceStore(ctrl)

	subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(sub, nil)
	invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *store.Invoice) (*store.Invoice, error) {
			return inv, nil
		})

	service := services.NewInvoiceService(subs, invoices, zap.NewNop())
	invoice, err := service.GenerateMonthlyInvoice(context.Background(), subID, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, invoice.BillingPeriod.PeriodNumbers)
	assert.Equal(t, "Base Subscription - February", invoice.LineItems[0].Description)
	assert.Equal(t, 100.00, invoice.Subtotal)
	assert.Equal(t, 6.00, invoice.TaxAmount)
	assert.Equal(t, 106.00, invoice.TotalAmount)

	expectedNumber := fmt.Sprintf("INV-%d-M02-%s", time.Now().UTC().Year(), subID.Hex()[len(subID.Hex())-6:])
	assert.Equal(t, expectedNumber, invoice.InvoiceNumber)

	// Feb 1 through the last moment of Feb 28.
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), invoice.BillingPeriod.PeriodStart)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999999000, time.UTC), invoice.BillingPeriod.PeriodEnd)

	assert.Equal(t, invoice.InvoiceDate.AddDate(0, 0, services.DefaultPaymentTermsDays), invoice.DueDate)
}

func TestInvoiceService_GenerateQuarterlyInvoice_InvalidQuarter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := services.NewInvoiceService(
		mocks.NewMockSubscriptionStore(ctrl),
		mocks.NewMockInvoiceStore(ctrl),
		zap.NewNop())

	for _, quarter := range []int{0, 5, -1} {
		_, err := service.GenerateQuarterlyInvoice(context.Background(), bson.NewObjectID(), quarter)
		assert.ErrorIs(t, err, services.ErrInvalidQuarter)
	}
}

func TestInvoiceService_GenerateMonthlyInvoice_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := services.NewInvoiceService(
		mocks.NewMockSubscriptionStore(ctrl),
		mocks.NewMockInvoiceStore(ctrl),
		zap.NewNop())

	for _, month := range []int{0, 13} {
		_, err := service.GenerateMonthlyInvoice(context.Background(), bson.NewObjectID(), month)
		assert.ErrorIs(t, err, services.ErrInvalidMonth)
	}
}

func TestInvoiceService_GenerateQuarterlyInvoice_SubscriptionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := bson.NewObjectID()
	subs := mocks.NewMockSubscriptionStore(ctrl)
	subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(nil, store.ErrNotFound)

	service := services.NewInvoiceService(subs, mocks.NewMockInvoiceStore(ctrl), zap.NewNop())
	_, err := service.GenerateQuarterlyInvoice(context.Background(), subID, 1)

	assert.ErrorIs(t, err, services.ErrSubscriptionNotFound)
}

func TestInvoiceService_GenerateQuarterlyInvoice_StorageErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subID := bson.NewObjectID()
	subs := mocks.NewMockSubscriptionStore(ctrl)
	invoices := mocks.NewMockInvoiceStore(ctrl)

	subs.EXPECT().GetSubscription(gomock.Any(), subID).Return(quarterlySubscription(subID), nil)
	invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("duplicate key"))

	service := services.NewInvoiceService(subs, invoices, zap.NewNop())
	_, err := service.GenerateQuarterlyInvoice(context.Background(), subID, 1)

	assert.ErrorContains(t, err, "invoice generation failed")
}

func TestInvoiceService_GetInvoice_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := bson.NewObjectID()
	invoices := mocks.NewMockInvoiceStore(ctrl)
	invoices.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(nil, store.ErrNotFound)

	service := services.NewInvoiceService(mocks.NewMockSubscriptionStore(ctrl), invoices, zap.NewNop())
	_, err := service.GetInvoice(context.Background(), invoiceID)

	assert.ErrorIs(t, err, services.ErrInvoiceNotFound)
}
