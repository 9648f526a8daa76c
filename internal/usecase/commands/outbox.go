package commands

import (
	"context"
	"encoding/json"
	"time"

	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox payloads carry eventId so the relay can key messages by event.

type offerMessage struct {
	WaitingListID uuid.UUID  `json:"waitingListId"`
	EventID       uuid.UUID  `json:"eventId"`
	UserID        uuid.UUID  `json:"userId"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

type ticketMessage struct {
	TicketID      uuid.UUID `json:"ticketId"`
	EventID       uuid.UUID `json:"eventId"`
	UserID        uuid.UUID `json:"userId"`
	WaitingListID uuid.UUID `json:"waitingListId"`
	PaymentID     string    `json:"paymentId"`
	AmountMinor   int64     `json:"amountMinor"`
	Currency      string    `json:"currency"`
}

type eventCancelledMessage struct {
	EventID          uuid.UUID `json:"eventId"`
	TicketsRefunded  int       `json:"ticketsRefunded"`
	EntriesCancelled int64     `json:"entriesCancelled"`
}

type duplicateCaptureMessage struct {
	EventID          uuid.UUID `json:"eventId"`
	WaitingListID    uuid.UUID `json:"waitingListId"`
	PaymentID        string    `json:"paymentId"`
	OrderID          string    `json:"orderId"`
	SettledPaymentID string    `json:"settledPaymentId"`
	AmountMinor      int64     `json:"amountMinor"`
	Currency         string    `json:"currency"`
}

type strayCaptureMessage struct {
	EventID       uuid.UUID `json:"eventId"`
	WaitingListID uuid.UUID `json:"waitingListId"`
	PaymentID     string    `json:"paymentId"`
	OrderID       string    `json:"orderId"`
	AmountMinor   int64     `json:"amountMinor"`
	Currency      string    `json:"currency"`
}

func enqueue(ctx context.Context, tx shared.Tx, kind, topic string, payload any, now time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "encode %s message", topic)
	}
	return tx.Notifications().CreateJob(ctx, kind, topic, data, now)
}

func newOfferMessage(e *waitinglist.Entry) offerMessage {
	return offerMessage{
		WaitingListID: e.ID(),
		EventID:       e.EventID(),
		UserID:        e.UserID(),
		ExpiresAt:     e.OfferExpiresAt(),
	}
}

func newTicketMessage(t *ticket.Ticket) ticketMessage {
	return ticketMessage{
		TicketID:      t.ID(),
		EventID:       t.EventID(),
		UserID:        t.UserID(),
		WaitingListID: t.WaitingListID(),
		PaymentID:     t.PaymentID(),
		AmountMinor:   t.Price().Minor(),
		Currency:      t.Price().Currency(),
	}
}
