package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/client/square"
	"github.com/linguabill/lingua-api/internal/logger"
	"github.com/linguabill/lingua-api/internal/metrics"
	"github.com/linguabill/lingua-api/internal/store"
)

const (
	webhookDedupSize = 4096
	webhookDedupTTL  = 15 * time.Minute
)

// PaymentHandler manages payment recording, webhooks and refunds
type PaymentHandler struct {
	common       *CommonServices
	squareClient *square.Client

	// seenEvents dedupes webhook deliveries by event id. Square retries
	// deliveries aggressively, so duplicates within the TTL window are routine.
	seenEvents *expirable.LRU[string, struct{}]
}

// NewPaymentHandler creates a new payment handler. squareClient may be nil when
// no access token is configured; webhook events are then recorded as-is without
// hydration.
func NewPaymentHandler(common *CommonServices, squareClient *square.Client) *PaymentHandler {
	return &PaymentHandler{
		common:       common,
		squareClient: squareClient,
		seenEvents:   expirable.NewLRU[string, struct{}](webhookDedupSize, nil, webhookDedupTTL),
	}
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	ExternalPaymentID string              `json:"external_payment_id" binding:"required"`
	AmountCents       int64               `json:"amount_cents" binding:"required"`
	Currency          string              `json:"currency" binding:"required"`
	Status            store.PaymentStatus `json:"status" binding:"required"`
	SourceType        string              `json:"source_type"`
	BuyerEmail        string              `json:"buyer_email"`
}

// RecordRefundRequest represents the request body for recording a refund
type RecordRefundRequest struct {
	ExternalRefundID string `json:"external_refund_id" binding:"required"`
	AmountCents      int64  `json:"amount_cents" binding:"required"`
	Status           string `json:"status" binding:"required"`
	Reason           string `json:"reason"`
}

// WebhookEvent mirrors the Square webhook envelope fields this service reads
type WebhookEvent struct {
	EventID string `json:"event_id" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Data    struct {
		Object struct {
			Payment square.Payment `json:"payment"`
		} `json:"object"`
	} `json:"data"`
}

// RecordPayment godoc
// @Summary Record a payment
// @Description Records a Square-style payment for later application to an invoice
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body RecordPaymentRequest true "Payment details"
// @Success 201 {object} store.Payment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	payment, err := h.common.payments.RecordPayment(c.Request.Context(), &store.Payment{
		ExternalPaymentID: req.ExternalPaymentID,
		AmountCents:       req.AmountCents,
		Currency:          req.Currency,
		Status:            req.Status,
		SourceType:        req.SourceType,
		BuyerEmail:        req.BuyerEmail,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, payment)
}

// HandleWebhook godoc
// @Summary Receive a payment webhook
// @Description Records the payment carried by a Square-style webhook event, deduplicating by event id
// @Tags payments
// @Accept json
// @Produce json
// @Param event body WebhookEvent true "Webhook event"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/webhook [post]
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	var event WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid webhook payload", err)
		return
	}

	if _, seen := h.seenEvents.Get(event.EventID); seen {
		metrics.WebhookEventsDeduped.Inc()
		logger.Debug("Duplicate webhook event ignored", zap.String("event_id", event.EventID))
		sendSuccessMessage(c, http.StatusOK, "Event already processed")
		return
	}

	p := event.Data.Object.Payment
	if p.ID == "" {
		sendError(c, http.StatusBadRequest, "Webhook event carries no payment", nil)
		return
	}

	// Events often arrive with a partial payment object. When a client is
	// configured, fetch the authoritative record before storing.
	if h.squareClient != nil {
		fetched, err := h.squareClient.GetPayment(c.Request.Context(), p.ID)
		if err != nil {
			logger.Warn("Failed to hydrate webhook payment, recording event payload",
				zap.String("payment_id", p.ID),
				zap.Error(err))
		} else {
			p = *fetched
		}
	}

	// A replay that outlived the dedup cache shows up as a duplicate external
	// id; the unique index makes the second insert fail, so check first.
	if existing, err := h.common.payments.GetPaymentByExternalID(c.Request.Context(), p.ID); err == nil {
		h.seenEvents.Add(event.EventID, struct{}{})
		metrics.WebhookEventsDeduped.Inc()
		sendSuccess(c, http.StatusOK, existing)
		return
	}

	payment, err := h.common.payments.RecordPayment(c.Request.Context(), &store.Payment{
		ExternalPaymentID: p.ID,
		AmountCents:       p.AmountMoney.Amount,
		Currency:          p.AmountMoney.Currency,
		Status:            store.PaymentStatus(p.Status),
		SourceType:        p.SourceType,
		BuyerEmail:        p.BuyerEmail,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.seenEvents.Add(event.EventID, struct{}{})
	sendSuccess(c, http.StatusOK, payment)
}

// GetPayment godoc
// @Summary Get a payment by ID
// @Description Retrieves a payment record by its internal id
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} store.Payment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("payment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment ID format", err)
		return
	}

	payment, err := h.common.payments.GetPayment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, payment)
}

// GetPaymentByExternalID godoc
// @Summary Get a payment by external ID
// @Description Retrieves a payment record by its Square payment id
// @Tags payments
// @Accept json
// @Produce json
// @Param external_id path string true "External payment ID"
// @Success 200 {object} store.Payment
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/external/{external_id} [get]
func (h *PaymentHandler) GetPaymentByExternalID(c *gin.Context) {
	payment, err := h.common.payments.GetPaymentByExternalID(c.Request.Context(), c.Param("external_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, payment)
}

// RecordRefund godoc
// @Summary Record a refund
// @Description Appends a refund sub-record to a payment; the payment amount is never mutated
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param refund body RecordRefundRequest true "Refund details"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/{payment_id}/refunds [post]
func (h *PaymentHandler) RecordRefund(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("payment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment ID format", err)
		return
	}

	var req RecordRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.common.payments.RecordRefund(c.Request.Context(), id, store.Refund{
		ExternalRefundID: req.ExternalRefundID,
		AmountCents:      req.AmountCents,
		Status:           req.Status,
		Reason:           req.Reason,
	}); err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccessMessage(c, http.StatusCreated, "Refund recorded")
}
