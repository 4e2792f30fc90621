package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/linguabill/lingua-api/internal/store"
)

// SubscriptionHandler manages subscription and usage-ledger HTTP endpoints
type SubscriptionHandler struct {
	common *CommonServices
}

// NewSubscriptionHandler creates a new subscription handler with the required dependencies
func NewSubscriptionHandler(common *CommonServices) *SubscriptionHandler {
	return &SubscriptionHandler{common: common}
}

// CreateSubscriptionRequest represents the request body for creating a subscription
type CreateSubscriptionRequest struct {
	CompanyName       string                 `json:"company_name" binding:"required"`
	BillingUnit       store.BillingUnit      `json:"billing_unit" binding:"required"`
	UnitsPerPeriod    int64                  `json:"units_per_period" binding:"required"`
	PricePerUnit      float64                `json:"price_per_unit" binding:"required"`
	PromotionalUnits  int64                  `json:"promotional_units"`
	DiscountFactor    float64                `json:"discount_factor"`
	SubscriptionPrice float64                `json:"subscription_price" binding:"required"`
	StartDate         time.Time              `json:"start_date" binding:"required"`
	EndDate           time.Time              `json:"end_date"`
	BillingFrequency  store.BillingFrequency `json:"billing_frequency" binding:"required"`
	PaymentTermsDays  int                    `json:"payment_terms_days"`
}

// AddUsagePeriodRequest represents the request body for appending a usage period
type AddUsagePeriodRequest struct {
	PeriodStart      time.Time `json:"period_start" binding:"required"`
	PeriodEnd        time.Time `json:"period_end" binding:"required"`
	PeriodNumber     int       `json:"period_number" binding:"required"`
	UnitsAllocated   int64     `json:"units_allocated" binding:"required"`
	UnitsUsed        int64     `json:"units_used"`
	PromotionalUnits int64     `json:"promotional_units"`
}

// RecordConsumptionRequest represents the request body for recording usage
type RecordConsumptionRequest struct {
	PeriodNumber        int   `json:"period_number" binding:"required"`
	UnitsConsumed       int64 `json:"units_consumed" binding:"required"`
	UsePromotionalUnits bool  `json:"use_promotional_units"`
}

// CreateSubscription godoc
// @Summary Create a subscription
// @Description Creates a new translation subscription for a company
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} store.Subscription
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	now := time.Now().UTC()
	sub := &store.Subscription{
		CompanyName:       req.CompanyName,
		BillingUnit:       req.BillingUnit,
		UnitsPerPeriod:    req.UnitsPerPeriod,
		PricePerUnit:      req.PricePerUnit,
		PromotionalUnits:  req.PromotionalUnits,
		DiscountFactor:    req.DiscountFactor,
		SubscriptionPrice: req.SubscriptionPrice,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Status:            store.SubscriptionActive,
		BillingFrequency:  req.BillingFrequency,
		PaymentTermsDays:  req.PaymentTermsDays,
		UsagePeriods:      []store.UsagePeriod{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := h.common.store.CreateSubscription(c.Request.Context(), sub)
	if err != nil {
		handleStoreError(c, err, "Subscription not found")
		return
	}

	sendSuccess(c, http.StatusCreated, created)
}

// GetSubscription godoc
// @Summary Get a subscription by ID
// @Description Retrieves a subscription with its usage periods
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Success 200 {object} store.Subscription
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions/{subscription_id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("subscription_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid subscription ID format", err)
		return
	}

	sub, err := h.common.store.GetSubscription(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "Subscription not found")
		return
	}

	sendSuccess(c, http.StatusOK, sub)
}

// ListSubscriptions godoc
// @Summary List subscriptions
// @Description Lists subscriptions, optionally filtered by company name
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param company_name query string false "Company name filter"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.common.store.ListSubscriptions(c.Request.Context(), c.Query("company_name"))
	if err != nil {
		handleStoreError(c, err, "Subscriptions not found")
		return
	}

	sendList(c, subs)
}

// AddUsagePeriod godoc
// @Summary Append a usage period
// @Description Appends a new usage period to a subscription as a billing cycle rolls over
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Param period body AddUsagePeriodRequest true "Usage period"
// @Success 201 {object} store.UsagePeriod
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions/{subscription_id}/usage-periods [post]
func (h *SubscriptionHandler) AddUsagePeriod(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("subscription_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid subscription ID format", err)
		return
	}

	var req AddUsagePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	period, err := h.common.usage.AppendUsagePeriod(c.Request.Context(), id, store.UsagePeriod{
		PeriodStart:      req.PeriodStart,
		PeriodEnd:        req.PeriodEnd,
		PeriodNumber:     req.PeriodNumber,
		UnitsAllocated:   req.UnitsAllocated,
		UnitsUsed:        req.UnitsUsed,
		PromotionalUnits: req.PromotionalUnits,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, period)
}

// RecordConsumption godoc
// @Summary Record unit consumption
// @Description Applies consumed units to the matching usage period
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Param consumption body RecordConsumptionRequest true "Consumption details"
// @Success 200 {object} store.UsagePeriod
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscriptions/{subscription_id}/usage [post]
func (h *SubscriptionHandler) RecordConsumption(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("subscription_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid subscription ID format", err)
		return
	}

	var req RecordConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	period, err := h.common.usage.RecordConsumption(c.Request.Context(), id,
		req.PeriodNumber, req.UnitsConsumed, req.UsePromotionalUnits)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, period)
}
