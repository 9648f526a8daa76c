//go:build unit || e2e

package builder

import (
	"time"

	"ticket-marketplace/internal/domain/money"
	"ticket-marketplace/internal/domain/ticket"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	UserID        uuid.UUID
	WaitingListID uuid.UUID
	PaymentID     string
	Status        ticket.Status
	PriceMinor    int64
	Currency      string
	PurchasedAt   time.Time
	RefundedAt    *time.Time
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ID:            uuid.New(),
		EventID:       uuid.New(),
		UserID:        uuid.New(),
		WaitingListID: uuid.New(),
		PaymentID:     "pay_" + uuid.NewString()[:8],
		Status:        ticket.StatusValid,
		PriceMinor:    500,
		Currency:      "INR",
		PurchasedAt:   time.Date(2026, 3, 1, 10, 2, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TicketBuilder) BuildDomain() *ticket.Ticket {
	return ticket.ReconstructTicket(b.ID, b.EventID, b.UserID, b.WaitingListID, b.PaymentID,
		b.Status, money.MustNew(b.PriceMinor, b.Currency), b.PurchasedAt, b.RefundedAt)
}

// Fluent builder methods
func (b *TicketBuilder) ForEvent(eventID uuid.UUID) *TicketBuilder {
	b.EventID = eventID
	return b
}

func (b *TicketBuilder) WithPayment(paymentID string) *TicketBuilder {
	b.PaymentID = paymentID
	return b
}
