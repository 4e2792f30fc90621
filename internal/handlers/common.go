package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/logger"
	"github.com/linguabill/lingua-api/internal/services"
	"github.com/linguabill/lingua-api/internal/store"
)

// CommonServices holds shared dependencies used across handlers
type CommonServices struct {
	store        store.Store
	usage        *services.UsageService
	invoices     *services.InvoiceService
	payments     *services.PaymentService
	translations *services.TranslationService
	email        *services.EmailService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(
	st store.Store,
	usage *services.UsageService,
	invoices *services.InvoiceService,
	payments *services.PaymentService,
	translations *services.TranslationService,
	email *services.EmailService,
) *CommonServices {
	return &CommonServices{
		store:        st,
		usage:        usage,
		invoices:     invoices,
		payments:     payments,
		translations: translations,
		email:        email,
	}
}

// sendError logs the error and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps billing-core errors onto HTTP status codes so the
// taxonomy stays visible to API clients.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSubscriptionNotFound),
		errors.Is(err, services.ErrInvoiceNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrUsagePeriodNotFound):
		sendError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, services.ErrInvalidQuarter),
		errors.Is(err, services.ErrInvalidMonth),
		errors.Is(err, services.ErrPaymentNotCompleted),
		errors.Is(err, services.ErrInsufficientPromotionalUnits):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, services.ErrPaymentAlreadyApplied),
		errors.Is(err, services.ErrPaymentNotLinked):
		sendError(c, http.StatusConflict, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// handleStoreError maps raw store errors for handlers that talk to the store
// directly.
func handleStoreError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess sends a success response with data
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
