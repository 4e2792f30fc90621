package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/linguabill/lingua-api/internal/store"
)

// EmailService delivers invoices to customers via Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewEmailService creates a new email service
func NewEmailService(apiKey, fromEmail, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

var invoiceEmailTemplate = template.Must(template.New("invoice").Parse(`
<h2>Invoice {{.InvoiceNumber}}</h2>
<p>Billing period: {{.BillingPeriod.PeriodStart.Format "2006-01-02"}} to {{.BillingPeriod.PeriodEnd.Format "2006-01-02"}}</p>
<table>
{{range .LineItems}}<tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td>${{printf "%.2f" .Amount}}</td></tr>
{{end}}</table>
<p>Subtotal: ${{printf "%.2f" .Subtotal}}<br>
Tax: ${{printf "%.2f" .TaxAmount}}<br>
<strong>Total due: ${{printf "%.2f" .TotalAmount}}</strong></p>
<p>Due date: {{.DueDate.Format "2006-01-02"}}</p>
`))

// SendInvoiceEmail renders and sends an invoice to the given address.
func (s *EmailService) SendInvoiceEmail(ctx context.Context, invoice *store.Invoice, toEmail string) error {
	var body bytes.Buffer
	if err := invoiceEmailTemplate.Execute(&body, invoice); err != nil {
		return fmt.Errorf("failed to render invoice email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Invoice %s from %s", invoice.InvoiceNumber, s.fromName),
		Html:    body.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "invoice"},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("Failed to send invoice email",
			zap.Error(err),
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.String("to", toEmail))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Invoice email sent",
		zap.String("email_id", sent.Id),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("to", toEmail))

	return nil
}
