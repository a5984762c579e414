// Package paystack is a thin client for the Paystack transaction API. Only
// the verify endpoint is used; the checkout itself runs on the frontend via
// Paystack inline and the server re-verifies the reference it is handed.
package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/errs"
)

const TransactionSuccess = "success"

type Transaction struct {
	ID              int64      `json:"id"`
	Status          string     `json:"status"`
	Reference       string     `json:"reference"`
	Amount          int64      `json:"amount"` // minor units (kobo)
	Currency        string     `json:"currency"`
	Channel         string     `json:"channel"`
	PaidAt          *time.Time `json:"paid_at"`
	GatewayResponse string     `json:"gateway_response"`
}

func (t *Transaction) Succeeded() bool {
	return t.Status == TransactionSuccess
}

type verifyEnvelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.PaystackBaseURL,
		secretKey:  cfg.PaystackSecretKey,
	}
}

// VerifyTransaction fetches the authoritative transaction state for a
// reference. A non-success transaction is returned as data, not an error;
// the caller decides what a failed charge means for the booking.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*Transaction, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, url.PathEscape(reference))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build verify request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "paystack verify request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read paystack response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("paystack verify returned status %d: %s", resp.StatusCode, string(body)))
	}

	var envelope verifyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errs.Wrap(err, "failed to decode paystack response")
	}
	if !envelope.Status {
		return nil, errs.New("paystack verify rejected: " + envelope.Message)
	}

	return &envelope.Data, nil
}
