package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const EventPaymentCaptured = "payment.captured"

var ErrMalformedPayload = errors.New("malformed payment webhook payload")

// WebhookEvent is the provider envelope. Only the fields settlement needs are decoded.
type WebhookEvent struct {
	Event     string  `json:"event"`
	CreatedAt int64   `json:"created_at"`
	Payload   payload `json:"payload"`
}

type payload struct {
	Payment *paymentWrapper `json:"payment"`
}

type paymentWrapper struct {
	Entity PaymentEntity `json:"entity"`
}

type PaymentEntity struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Notes     Notes  `json:"notes"`
	CreatedAt int64  `json:"created_at"`
}

// Notes are the correlation fields written at order creation. They come back from a third
// party and are never trusted without re-checking the waiting list entry.
type Notes struct {
	EventID       string `json:"eventId"`
	UserID        string `json:"userId"`
	WaitingListID string `json:"waitingListId"`
	Ref           string `json:"ref,omitempty"`
}

// UnmarshalJSON accepts the provider's empty-array form for "no notes".
func (n *Notes) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || trimmed[0] == '[' {
		*n = Notes{}
		return nil
	}
	type plain Notes
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*n = Notes(p)
	return nil
}

func (n Notes) ToMap() map[string]string {
	m := map[string]string{
		"eventId":       n.EventID,
		"userId":        n.UserID,
		"waitingListId": n.WaitingListID,
	}
	if n.Ref != "" {
		m["ref"] = n.Ref
	}
	return m
}

func ParseWebhook(body []byte) (*WebhookEvent, error) {
	var evt WebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if evt.Event == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrMalformedPayload)
	}
	return &evt, nil
}

func (e *WebhookEvent) IsPaymentCaptured() bool {
	return e.Event == EventPaymentCaptured
}

func (e *WebhookEvent) Payment() (*PaymentEntity, error) {
	if e.Payload.Payment == nil {
		return nil, fmt.Errorf("%w: missing payment entity", ErrMalformedPayload)
	}
	return &e.Payload.Payment.Entity, nil
}
