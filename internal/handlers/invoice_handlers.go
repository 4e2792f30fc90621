package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// InvoiceHandler manages invoice generation and payment-application endpoints
type InvoiceHandler struct {
	common *CommonServices
}

// NewInvoiceHandler creates a new invoice handler with the required dependencies
func NewInvoiceHandler(common *CommonServices) *InvoiceHandler {
	return &InvoiceHandler{common: common}
}

// GenerateInvoiceRequest represents the request body for generating an invoice
type GenerateInvoiceRequest struct {
	SubscriptionID string `json:"subscription_id" binding:"required"`
	Quarter        int    `json:"quarter"`
	Month          int    `json:"month"`
}

// ApplyPaymentRequest represents the request body for applying a payment
type ApplyPaymentRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

// SendInvoiceEmailRequest represents the request body for emailing an invoice
type SendInvoiceEmailRequest struct {
	ToEmail string `json:"to_email" binding:"required,email"`
}

// GenerateQuarterlyInvoice godoc
// @Summary Generate a quarterly invoice
// @Description Generates an invoice covering the three periods of a calendar quarter
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body GenerateInvoiceRequest true "Subscription and quarter"
// @Success 201 {object} store.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/quarterly [post]
func (h *InvoiceHandler) GenerateQuarterlyInvoice(c *gin.Context) {
	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	subID, err := bson.ObjectIDFromHex(req.SubscriptionID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid subscription ID format", err)
		return
	}

	invoice, err := h.common.invoices.GenerateQuarterlyInvoice(c.Request.Context(), subID, req.Quarter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, invoice)
}

// GenerateMonthlyInvoice godoc
// @Summary Generate a monthly invoice
// @Description Generates an invoice covering a single billing period
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body GenerateInvoiceRequest true "Subscription and month"
// @Success 201 {object} store.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/monthly [post]
func (h *InvoiceHandler) GenerateMonthlyInvoice(c *gin.Context) {
	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	subID, err := bson.ObjectIDFromHex(req.SubscriptionID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid subscription ID format", err)
		return
	}

	invoice, err := h.common.invoices.GenerateMonthlyInvoice(c.Request.Context(), subID, req.Month)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, invoice)
}

// GetInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves an invoice with its line items and payment applications
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} store.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	invoice, err := h.common.invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, invoice)
}

// ListInvoices godoc
// @Summary List invoices for a company
// @Description Lists invoices issued to a company, newest first
// @Tags invoices
// @Accept json
// @Produce json
// @Param company_name query string true "Company name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	companyName := c.Query("company_name")
	if companyName == "" {
		sendError(c, http.StatusBadRequest, "company_name query parameter is required", nil)
		return
	}

	invoices, err := h.common.invoices.ListInvoicesByCompany(c.Request.Context(), companyName)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendList(c, invoices)
}

// ApplyPayment godoc
// @Summary Apply a payment to an invoice
// @Description Links a completed payment to the invoice and updates amount paid and status
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param payment body ApplyPaymentRequest true "Payment to apply"
// @Success 200 {object} store.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{invoice_id}/payments [post]
func (h *InvoiceHandler) ApplyPayment(c *gin.Context) {
	invoiceID, err := bson.ObjectIDFromHex(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	var req ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	paymentID, err := bson.ObjectIDFromHex(req.PaymentID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment ID format", err)
		return
	}

	invoice, err := h.common.payments.ApplyPayment(c.Request.Context(), paymentID, invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, invoice)
}

// UnapplyPayment godoc
// @Summary Unapply a payment from an invoice
// @Description Reverses a previous payment application and clears the payment link
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} store.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{invoice_id}/payments/{payment_id} [delete]
func (h *InvoiceHandler) UnapplyPayment(c *gin.Context) {
	invoiceID, err := bson.ObjectIDFromHex(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	paymentID, err := bson.ObjectIDFromHex(c.Param("payment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment ID format", err)
		return
	}

	invoice, err := h.common.payments.UnapplyPayment(c.Request.Context(), paymentID, invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, invoice)
}

// ListInvoicePayments godoc
// @Summary List payments applied to an invoice
// @Description Lists the payments currently linked to an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{invoice_id}/payments [get]
func (h *InvoiceHandler) ListInvoicePayments(c *gin.Context) {
	invoiceID, err := bson.ObjectIDFromHex(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	payments, err := h.common.payments.GetInvoicePayments(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendList(c, payments)
}

// SendInvoiceEmail godoc
// @Summary Email an invoice
// @Description Renders and sends the invoice to the given address
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param email body SendInvoiceEmailRequest true "Recipient"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/{invoice_id}/send [post]
func (h *InvoiceHandler) SendInvoiceEmail(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return
	}

	var req SendInvoiceEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoice, err := h.common.invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := h.common.email.SendInvoiceEmail(c.Request.Context(), invoice, req.ToEmail); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to send invoice email", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Invoice email sent")
}
