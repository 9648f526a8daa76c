package event

import (
	"errors"
	"time"

	"ticket-marketplace/internal/domain/money"

	"github.com/google/uuid"
)

var ErrAlreadyCancelled = errors.New("event already cancelled")

// Event is owned by the listing service; this module only reads it and flips the cancellation flag.
type Event struct {
	id           uuid.UUID
	sellerID     uuid.UUID
	name         string
	description  string
	price        money.Money
	totalTickets int
	cancelledAt  *time.Time
}

func ReconstructEvent(
	id, sellerID uuid.UUID,
	name, description string,
	price money.Money,
	totalTickets int,
	cancelledAt *time.Time,
) *Event {
	return &Event{
		id:           id,
		sellerID:     sellerID,
		name:         name,
		description:  description,
		price:        price,
		totalTickets: totalTickets,
		cancelledAt:  cancelledAt,
	}
}

// Available is the inventory left after settled tickets and open offers are counted.
func (e *Event) Available(validTickets, liveOffers int) int {
	left := e.totalTickets - validTickets - liveOffers
	if left < 0 {
		return 0
	}
	return left
}

func (e *Event) Cancel(now time.Time) error {
	if e.IsCancelled() {
		return ErrAlreadyCancelled
	}
	e.cancelledAt = &now
	return nil
}

func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.sellerID == userID
}

func (e *Event) ID() uuid.UUID           { return e.id }
func (e *Event) SellerID() uuid.UUID     { return e.sellerID }
func (e *Event) Name() string            { return e.name }
func (e *Event) Description() string     { return e.description }
func (e *Event) Price() money.Money      { return e.price }
func (e *Event) TotalTickets() int       { return e.totalTickets }
func (e *Event) CancelledAt() *time.Time { return e.cancelledAt }
func (e *Event) IsCancelled() bool       { return e.cancelledAt != nil }
