package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/mocks"
	"github.com/linguabill/lingua-api/internal/services"
	"github.com/linguabill/lingua-api/internal/store"
)

func TestInvoiceStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		total      float64
		amountPaid float64
		want       store.InvoiceStatus
	}{
		{"nothing paid", 111.30, 0, store.InvoiceStatusSent},
		{"negative adjustment", 111.30, -5, store.InvoiceStatusSent},
		{"partial", 111.30, 50, store.InvoiceStatusPartiallyPaid},
		{"one cent short", 111.30, 111.29, store.InvoiceStatusPartiallyPaid},
		{"exactly paid", 111.30, 111.30, store.InvoiceStatusPaid},
		{"overpaid", 111.30, 120, store.InvoiceStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.InvoiceStatusFor(tt.total, tt.amountPaid))
		})
	}
}

type paymentFixture struct {
	ctrl     *gomock.Controller
	payments *mocks.MockPaymentStore
	invoices *mocks.MockInvoiceStore
	service  *services.PaymentService

	paymentID bson.ObjectID
	invoiceID bson.ObjectID
	subID     bson.ObjectID
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockPaymentStore(ctrl)
	invoices := mocks.NewMockInvoiceStore(ctrl)

	return &paymentFixture{
		ctrl:      ctrl,
		payments:  payments,
		invoices:  invoices,
		service:   services.NewPaymentService(payments, invoices, zap.NewNop()),
		paymentID: bson.NewObjectID(),
		invoiceID: bson.NewObjectID(),
		subID:     bson.NewObjectID(),
	}
}

func (f *paymentFixture) payment(status store.PaymentStatus, amountCents int64) *store.Payment {
	return &store.Payment{
		ID:                f.paymentID,
		ExternalPaymentID: "sq_" + f.paymentID.Hex()[:8],
		AmountCents:       amountCents,
		Currency:          "USD",
		Status:            status,
		BuyerEmail:        "ap@acme.example",
	}
}

func (f *paymentFixture) invoice(total, paid float64, status store.InvoiceStatus) *store.Invoice {
	return &store.Invoice{
		ID:                  f.invoiceID,
		SubscriptionID:      f.subID,
		Status:              status,
		TotalAmount:         total,
		AmountPaid:          paid,
		PaymentApplications: []store.PaymentApplication{},
	}
}

func TestPaymentService_ApplyPayment_FullPayment(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).
		Return(f.payment(store.PaymentStatusCompleted, 11130), nil)
	f.invoices.EXPECT().GetInvoice(gomock.Any(), f.invoiceID).
		Return(f.invoice(111.30, 0, store.InvoiceStatusSent), nil)

	f.invoices.EXPECT().ApplyPaymentUpdate(gomock.Any(), f.invoiceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, patch store.InvoicePaymentPatch) (*store.Invoice, error) {
			assert.Equal(t, 111.30, patch.AmountPaid)
			assert.Equal(t, store.InvoiceStatusPaid, patch.Status)
			require.Len(t, patch.PaymentApplications, 1)
			assert.Equal(t, f.paymentID, patch.PaymentApplications[0].PaymentID)
			assert.Equal(t, 111.30, patch.PaymentApplications[0].Amount)
			assert.Equal(t, "ap@acme.example", patch.PaymentApplications[0].PayerEmail)

			inv := f.invoice(111.30, patch.AmountPaid, patch.Status)
			inv.PaymentApplications = patch.PaymentApplications
			return inv, nil
		})
	f.payments.EXPECT().LinkPaymentToInvoice(gomock.Any(), f.paymentID, f.invoiceID, f.subID, gomock.Any()).
		Return(nil)

	updated, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
	require.NoError(t, err)
	assert.Equal(t, store.InvoiceStatusPaid, updated.Status)
	assert.Equal(t, 111.30, updated.AmountPaid)
}

func TestPaymentService_ApplyPayment_PartialPayment(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).
		Return(f.payment(store.PaymentStatusApproved, 5000), nil)
	f.invoices.EXPECT().GetInvoice(gomock.Any(), f.invoiceID).
		Return(f.invoice(111.30, 0, store.InvoiceStatusSent), nil)
	f.invoices.EXPECT().ApplyPaymentUpdate(gomock.Any(), f.invoiceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, patch store.InvoicePaymentPatch) (*store.Invoice, error) {
			assert.Equal(t, 50.00, patch.AmountPaid)
			assert.Equal(t, store.InvoiceStatusPartiallyPaid, patch.Status)
			return f.invoice(111.30, patch.AmountPaid, patch.Status), nil
		})
	f.payments.EXPECT().LinkPaymentToInvoice(gomock.Any(), f.paymentID, f.invoiceID, f.subID, gomock.Any()).
		Return(nil)

	updated, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
	require.NoError(t, err)
	assert.Equal(t, store.InvoiceStatusPartiallyPaid, updated.Status)
}

func TestPaymentService_ApplyPayment_AlreadyApplied(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	other := bson.NewObjectID()
	payment := f.payment(store.PaymentStatusCompleted, 5000)
	payment.InvoiceID = &other

	f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).Return(payment, nil)

	_, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
	assert.ErrorIs(t, err, services.ErrPaymentAlreadyApplied)
}

func TestPaymentService_ApplyPayment_NotCompleted(t *testing.T) {
	for _, status := range []store.PaymentStatus{
		store.PaymentStatusPending,
		store.PaymentStatusFailed,
		store.PaymentStatusCanceled,
		store.PaymentStatusRefunded,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newPaymentFixture(t)
			defer f.ctrl.Finish()

			f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).
				Return(f.payment(status, 5000), nil)

			_, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
			assert.ErrorIs(t, err, services.ErrPaymentNotCompleted)
		})
	}
}

func TestPaymentService_ApplyPayment_NotFoundErrors(t *testing.T) {
	t.Run("payment missing", func(t *testing.T) {
		f := newPaymentFixture(t)
		defer f.ctrl.Finish()

		f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).Return(nil, store.ErrNotFound)

		_, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
		assert.ErrorIs(t, err, services.ErrPaymentNotFound)
	})

	t.Run("invoice missing", func(t *testing.T) {
		f := newPaymentFixture(t)
		defer f.ctrl.Finish()

		f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).
			Return(f.payment(store.PaymentStatusCompleted, 5000), nil)
		f.invoices.EXPECT().GetInvoice(gomock.Any(), f.invoiceID).Return(nil, store.ErrNotFound)

		_, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
		assert.ErrorIs(t, err, services.ErrInvoiceNotFound)
	})
}

func TestPaymentService_ApplyPayment_LinkFailureKeepsInvoiceUpdate(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).
		Return(f.payment(store.PaymentStatusCompleted, 11130), nil)
	f.invoices.EXPECT().GetInvoice(gomock.Any(), f.invoiceID).
		Return(f.invoice(111.30, 0, store.InvoiceStatusSent), nil)
	f.invoices.EXPECT().ApplyPaymentUpdate(gomock.Any(), f.invoiceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, patch store.InvoicePaymentPatch) (*store.Invoice, error) {
			return f.invoice(111.30, patch.AmountPaid, patch.Status), nil
		})
	f.payments.EXPECT().LinkPaymentToInvoice(gomock.Any(), f.paymentID, f.invoiceID, f.subID, gomock.Any()).
		Return(errors.New("network partition"))

	// The financial update survives a failed link; the call still succeeds.
	updated, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
	require.NoError(t, err)
	assert.Equal(t, 111.30, updated.AmountPaid)
}

func TestPaymentService_ApplyPayment_CancelledStatusPreserved(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).
		Return(f.payment(store.PaymentStatusCompleted, 11130), nil)
	f.invoices.EXPECT().GetInvoice(gomock.Any(), f.invoiceID).
		Return(f.invoice(111.30, 0, store.InvoiceStatusCancelled), nil)
	f.invoices.EXPECT().ApplyPaymentUpdate(gomock.Any(), f.invoiceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, patch store.InvoicePaymentPatch) (*store.Invoice, error) {
			assert.Equal(t, store.InvoiceStatusCancelled, patch.Status)
			return f.invoice(111.30, patch.AmountPaid, patch.Status), nil
		})
	f.payments.EXPECT().LinkPaymentToInvoice(gomock.Any(), f.paymentID, f.invoiceID, f.subID, gomock.Any()).
		Return(nil)

	updated, err := f.service.ApplyPayment(context.Background(), f.paymentID, f.invoiceID)
	require.NoError(t, err)
	assert.Equal(t, store.InvoiceStatusCancelled, updated.Status)
}

func TestPaymentService_UnapplyPayment(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	payment := f.payment(store.PaymentStatusCompleted, 5000)
	payment.InvoiceID = &f.invoiceID

	invoice := f.invoice(111.30, 50.00, store.InvoiceStatusPartiallyPaid)
	invoice.PaymentApplications = []store.PaymentApplication{
		{PaymentID: f.paymentID, Amount: 50.00},
		{PaymentID: bson.NewObjectID(), Amount: 10.00},
	}

	f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).Return(payment, nil)
	f.invoices.EXPECT().GetInvoice(gomock.Any(), f.invoiceID).Return(invoice, nil)
	f.invoices.EXPECT().ApplyPaymentUpdate(gomock.Any(), f.invoiceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, patch store.InvoicePaymentPatch) (*store.Invoice, error) {
			assert.Equal(t, 0.00, patch.AmountPaid)
			assert.Equal(t, store.InvoiceStatusSent, patch.Status)
			// Only the other payment's audit entry remains.
			require.Len(t, patch.PaymentApplications, 1)
			assert.NotEqual(t, f.paymentID, patch.PaymentApplications[0].PaymentID)
			return f.invoice(111.30, patch.AmountPaid, patch.Status), nil
		})
	f.payments.EXPECT().UnlinkPayment(gomock.Any(), f.paymentID, gomock.Any()).Return(nil)

	updated, err := f.service.UnapplyPayment(context.Background(), f.paymentID, f.invoiceID)
	require.NoError(t, err)
	assert.Equal(t, store.InvoiceStatusSent, updated.Status)
}

func TestPaymentService_UnapplyPayment_ClampsAtZero(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	payment := f.payment(store.PaymentStatusCompleted, 11130)
	payment.InvoiceID = &f.invoiceID

	// amount_paid drifted below the payment amount; unapply floors at zero.
	invoice := f.invoice(111.30, 100.00, store.InvoiceStatusPartiallyPaid)
	invoice.PaymentApplications = []store.PaymentApplication{
		{PaymentID: f.paymentID, Amount: 111.30},
	}

	f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).Return(payment, nil)
	f.invoices.EXPECT().GetInvoice(gomock.Any(), f.invoiceID).Return(invoice, nil)
	f.invoices.EXPECT().ApplyPaymentUpdate(gomock.Any(), f.invoiceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, patch store.InvoicePaymentPatch) (*store.Invoice, error) {
			assert.Equal(t, 0.00, patch.AmountPaid)
			assert.Empty(t, patch.PaymentApplications)
			return f.invoice(111.30, patch.AmountPaid, patch.Status), nil
		})
	f.payments.EXPECT().UnlinkPayment(gomock.Any(), f.paymentID, gomock.Any()).Return(nil)

	_, err := f.service.UnapplyPayment(context.Background(), f.paymentID, f.invoiceID)
	assert.NoError(t, err)
}

func TestPaymentService_UnapplyPayment_NotLinked(t *testing.T) {
	t.Run("no invoice link", func(t *testing.T) {
		f := newPaymentFixture(t)
		defer f.ctrl.Finish()

		f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).
			Return(f.payment(store.PaymentStatusCompleted, 5000), nil)

		_, err := f.service.UnapplyPayment(context.Background(), f.paymentID, f.invoiceID)
		assert.ErrorIs(t, err, services.ErrPaymentNotLinked)
	})

	t.Run("linked to different invoice", func(t *testing.T) {
		f := newPaymentFixture(t)
		defer f.ctrl.Finish()

		other := bson.NewObjectID()
		payment := f.payment(store.PaymentStatusCompleted, 5000)
		payment.InvoiceID = &other

		f.payments.EXPECT().GetPayment(gomock.Any(), f.paymentID).Return(payment, nil)

		_, err := f.service.UnapplyPayment(context.Background(), f.paymentID, f.invoiceID)
		assert.ErrorIs(t, err, services.ErrPaymentNotLinked)
	})
}

func TestPaymentService_RecordRefund(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	f.payments.EXPECT().AppendRefund(gomock.Any(), f.paymentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.ObjectID, refund store.Refund) error {
			assert.Equal(t, "sq_refund_1", refund.ExternalRefundID)
			assert.False(t, refund.CreatedAt.IsZero())
			return nil
		})

	err := f.service.RecordRefund(context.Background(), f.paymentID, store.Refund{
		ExternalRefundID: "sq_refund_1",
		AmountCents:      500,
		Status:           "COMPLETED",
	})
	assert.NoError(t, err)
}

func TestPaymentService_RecordRefund_PaymentNotFound(t *testing.T) {
	f := newPaymentFixture(t)
	defer f.ctrl.Finish()

	f.payments.EXPECT().AppendRefund(gomock.Any(), f.paymentID, gomock.Any()).
		Return(store.ErrNotFound)

	err := f.service.RecordRefund(context.Background(), f.paymentID, store.Refund{
		ExternalRefundID: "sq_refund_2",
		AmountCents:      500,
		Status:           "COMPLETED",
	})
	assert.ErrorIs(t, err, services.ErrPaymentNotFound)
}
