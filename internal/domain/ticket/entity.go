package ticket

import (
	"time"

	"ticket-marketplace/internal/domain/money"

	"github.com/google/uuid"
)

// Ticket is created exactly once per settled waiting list entry.
type Ticket struct {
	id            uuid.UUID
	eventID       uuid.UUID
	userID        uuid.UUID
	waitingListID uuid.UUID
	paymentID     string
	status        Status
	price         money.Money
	purchasedAt   time.Time
	refundedAt    *time.Time
}

func NewTicket(eventID, userID, waitingListID uuid.UUID, paymentID string, price money.Money, purchasedAt time.Time) (*Ticket, error) {
	if eventID == uuid.Nil || userID == uuid.Nil || waitingListID == uuid.Nil {
		return nil, ErrMissingCorrelation
	}
	if paymentID == "" {
		return nil, ErrMissingPaymentID
	}
	return &Ticket{
		id:            uuid.New(),
		eventID:       eventID,
		userID:        userID,
		waitingListID: waitingListID,
		paymentID:     paymentID,
		status:        StatusValid,
		price:         price,
		purchasedAt:   purchasedAt,
	}, nil
}

func ReconstructTicket(
	id, eventID, userID, waitingListID uuid.UUID,
	paymentID string,
	status Status,
	price money.Money,
	purchasedAt time.Time,
	refundedAt *time.Time,
) *Ticket {
	return &Ticket{
		id:            id,
		eventID:       eventID,
		userID:        userID,
		waitingListID: waitingListID,
		paymentID:     paymentID,
		status:        status,
		price:         price,
		purchasedAt:   purchasedAt,
		refundedAt:    refundedAt,
	}
}

func (t *Ticket) MarkRefunded(now time.Time) error {
	if t.status == StatusRefunded {
		return ErrAlreadyRefunded
	}
	t.status = StatusRefunded
	t.refundedAt = &now
	return nil
}

func (t *Ticket) ID() uuid.UUID            { return t.id }
func (t *Ticket) EventID() uuid.UUID       { return t.eventID }
func (t *Ticket) UserID() uuid.UUID        { return t.userID }
func (t *Ticket) WaitingListID() uuid.UUID { return t.waitingListID }
func (t *Ticket) PaymentID() string        { return t.paymentID }
func (t *Ticket) Status() Status           { return t.status }
func (t *Ticket) Price() money.Money       { return t.price }
func (t *Ticket) PurchasedAt() time.Time   { return t.purchasedAt }
func (t *Ticket) RefundedAt() *time.Time   { return t.refundedAt }
