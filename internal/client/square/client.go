// Package square is a minimal read-only client for the Square Payments API,
// used to hydrate webhook events that arrive without full payment details.
package square

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://connect.squareup.com"

// Client calls the Square Payments API.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a Square client with the given access token.
func NewClient(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{},
	}
}

// Money is an amount in the smallest currency denomination.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Payment is the subset of Square's payment object this service records.
type Payment struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	AmountMoney     Money  `json:"amount_money"`
	SourceType      string `json:"source_type"`
	BuyerEmail      string `json:"buyer_email_address"`
	ReceiptNumber   string `json:"receipt_number"`
	LocationID      string `json:"location_id"`
	OrderID         string `json:"order_id"`
	ReferenceID     string `json:"reference_id"`
	DelayedCapture  bool   `json:"delayed_capture"`
	ApprovedMoney   *Money `json:"approved_money,omitempty"`
	RefundedMoney   *Money `json:"refunded_money,omitempty"`
	CreatedAtString string `json:"created_at"`
}

type errorResponse struct {
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

// GetPayment fetches a payment by its Square payment id.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v2/payments/"+paymentID)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Payment Payment `json:"payment"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment response")
	}
	return &resp.Payment, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
			return nil, errors.Errorf("square API error %s: %s", errResp.Errors[0].Code, errResp.Errors[0].Detail)
		}
		return nil, errors.Errorf("square API request failed with status %d", resp.StatusCode)
	}

	return body, nil
}

// WithBaseURL overrides the API host, for sandbox use and tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}
