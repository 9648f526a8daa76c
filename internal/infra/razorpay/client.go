// Package razorpay is the outbound REST client for orders, refunds, contacts and linked accounts.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"golang.org/x/time/rate"
)

const (
	accountHeader     = "X-Razorpay-Account"
	idempotencyHeader = "X-Refund-Idempotency"
	maxErrorBody      = 4 << 10
)

type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	hc        *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
}

func NewClient(cfg config.Config, logger *slog.Logger) *Client {
	rc := cfg.Razorpay
	return &Client{
		baseURL:   strings.TrimRight(rc.BaseURL, "/"),
		keyID:     rc.KeyID,
		keySecret: rc.KeySecret,
		hc:        &http.Client{Timeout: rc.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(rc.RateLimit), rc.RateBurst),
		logger:    logger,
	}
}

func (c *Client) PublicKey() string {
	return c.keyID
}

type orderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	Notes          map[string]string `json:"notes,omitempty"`
	PaymentCapture bool              `json:"payment_capture"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (c *Client) CreateOrder(ctx context.Context, req shared.OrderRequest) (*shared.Order, error) {
	body := orderRequest{
		Amount:         req.AmountMinor,
		Currency:       req.Currency,
		Receipt:        req.Receipt,
		Notes:          req.Notes,
		PaymentCapture: true,
	}
	headers := map[string]string{}
	if req.AccountID != "" {
		headers[accountHeader] = req.AccountID
	}

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/v1/orders", body, headers, &resp); err != nil {
		return nil, errs.Wrap(err, "create order")
	}

	return &shared.Order{
		ID:          resp.ID,
		AmountMinor: resp.Amount,
		Currency:    resp.Currency,
		Receipt:     resp.Receipt,
		Status:      resp.Status,
	}, nil
}

type refundRequest struct {
	Amount int64             `json:"amount"`
	Speed  string            `json:"speed"`
	Notes  map[string]string `json:"notes,omitempty"`
}

type refundResponse struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

func (c *Client) Refund(ctx context.Context, req shared.RefundRequest) (*shared.Refund, error) {
	body := refundRequest{
		Amount: req.AmountMinor,
		Speed:  "normal",
		Notes:  req.Notes,
	}
	headers := map[string]string{}
	if req.IdempotencyKey != "" {
		headers[idempotencyHeader] = req.IdempotencyKey
	}

	var resp refundResponse
	path := "/v1/payments/" + req.PaymentID + "/refund"
	if err := c.do(ctx, http.MethodPost, path, body, headers, &resp); err != nil {
		return nil, errs.Wrapf(err, "refund payment %s", req.PaymentID)
	}

	return &shared.Refund{
		ID:        resp.ID,
		PaymentID: resp.PaymentID,
		Status:    resp.Status,
	}, nil
}

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Contact     string `json:"contact,omitempty"`
	Type        string `json:"type"`
	ReferenceID string `json:"reference_id"`
}

type contactResponse struct {
	ID string `json:"id"`
}

func (c *Client) CreateContact(ctx context.Context, req shared.ContactRequest) (*shared.Contact, error) {
	body := contactRequest{
		Name:        req.Name,
		Email:       req.Email,
		Contact:     req.Phone,
		Type:        req.Type,
		ReferenceID: req.ReferenceID,
	}

	var resp contactResponse
	if err := c.do(ctx, http.MethodPost, "/v1/contacts", body, nil, &resp); err != nil {
		return nil, errs.Wrap(err, "create contact")
	}
	return &shared.Contact{ID: resp.ID}, nil
}

type accountResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Verification struct {
		Status string `json:"status"`
	} `json:"verification"`
	Settings struct {
		Payments struct {
			Enabled bool `json:"enabled"`
		} `json:"payments"`
		Payouts struct {
			Enabled bool `json:"enabled"`
		} `json:"payouts"`
	} `json:"settings"`
	Requirements struct {
		CurrentlyDue  []string `json:"currently_due"`
		EventuallyDue []string `json:"eventually_due"`
	} `json:"requirements"`
}

// AccountStatus reads a linked sub-account. Unknown verification states collapse to not_started.
func (c *Client) AccountStatus(ctx context.Context, accountID string) (*shared.AccountStatus, error) {
	var resp accountResponse
	if err := c.do(ctx, http.MethodGet, "/v2/accounts/"+accountID, nil, nil, &resp); err != nil {
		return nil, errs.Wrapf(err, "fetch account %s", accountID)
	}

	return &shared.AccountStatus{
		Active:         resp.Status == "activated",
		KYCStatus:      kycStatus(resp.Verification.Status),
		ChargesEnabled: resp.Settings.Payments.Enabled,
		PayoutsEnabled: resp.Settings.Payouts.Enabled,
		CurrentlyDue:   nonNil(resp.Requirements.CurrentlyDue),
		EventuallyDue:  nonNil(resp.Requirements.EventuallyDue),
	}, nil
}

func kycStatus(verification string) string {
	switch verification {
	case "verified", "failed", "submitted":
		return verification
	case "under_review":
		return "started"
	default:
		return "not_started"
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// do maps timeouts, transport errors and 5xx to ErrProviderUnavailable and 4xx to ErrProviderRejected.
func (c *Client) do(ctx context.Context, method, path string, in any, headers map[string]string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "rate limiter"), shared.ErrProviderUnavailable)
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encode request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn("payment provider request failed", "method", method, "path", path, "error", err.Error())
		return errs.Mark(errs.Wrap(err, "send request"), shared.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(resp, method, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode response"), shared.ErrProviderUnavailable)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response, method, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	detail := http.StatusText(resp.StatusCode)
	var apiErr apiError
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Description != "" {
		detail = apiErr.Error.Code + ": " + apiErr.Error.Description
	}

	c.logger.Warn("payment provider returned an error",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"detail", detail)

	err := fmt.Errorf("provider status %d: %s", resp.StatusCode, detail)
	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return errs.Mark(err, shared.ErrProviderUnavailable)
	}
	return errs.Mark(err, shared.ErrProviderRejected)
}
