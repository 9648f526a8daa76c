//go:build unit || e2e

package builder

import (
	"time"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/domain/money"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventBuilder struct {
	ID           uuid.UUID
	SellerID     uuid.UUID
	Name         string
	Description  string
	PriceMinor   int64
	Currency     string
	TotalTickets int
	CancelledAt  *time.Time
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:           uuid.New(),
		SellerID:     uuid.New(),
		Name:         "Indie Night",
		Description:  "Three bands, one stage",
		PriceMinor:   500,
		Currency:     "INR",
		TotalTickets: 2,
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EventBuilder) BuildDomain() *event.Event {
	return event.ReconstructEvent(b.ID, b.SellerID, b.Name, b.Description,
		money.MustNew(b.PriceMinor, b.Currency), b.TotalTickets, b.CancelledAt)
}

func (b *EventBuilder) BuildInfra() sqlq.Events {
	var cancelledAt pgtype.Timestamptz
	if b.CancelledAt != nil {
		cancelledAt = pgtype.Timestamptz{Time: *b.CancelledAt, Valid: true}
	}
	return sqlq.Events{
		ID:           b.ID,
		SellerID:     b.SellerID,
		Name:         b.Name,
		Description:  b.Description,
		PriceMinor:   b.PriceMinor,
		Currency:     b.Currency,
		TotalTickets: int32(b.TotalTickets),
		CancelledAt:  cancelledAt,
	}
}

// Fluent builder methods
func (b *EventBuilder) WithSeller(sellerID uuid.UUID) *EventBuilder {
	b.SellerID = sellerID
	return b
}

func (b *EventBuilder) WithTickets(total int) *EventBuilder {
	b.TotalTickets = total
	return b
}

func (b *EventBuilder) AsCancelled(at time.Time) *EventBuilder {
	b.CancelledAt = &at
	return b
}
