//go:build unit || e2e

package builder

import (
	"time"

	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EntryBuilder struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	UserID         uuid.UUID
	Status         waitinglist.Status
	OfferedAt      *time.Time
	OfferExpiresAt *time.Time
	CreatedAt      time.Time
}

func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		UserID:    uuid.New(),
		Status:    waitinglist.StatusWaiting,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EntryBuilder) BuildDomain() *waitinglist.Entry {
	return waitinglist.ReconstructEntry(b.ID, b.EventID, b.UserID, b.Status,
		b.OfferedAt, b.OfferExpiresAt, b.CreatedAt, b.CreatedAt)
}

func (b *EntryBuilder) BuildInfra() sqlq.WaitingList {
	row := sqlq.WaitingList{
		ID:        b.ID,
		EventID:   b.EventID,
		UserID:    b.UserID,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
	if b.OfferedAt != nil {
		row.OfferedAt = pgtype.Timestamptz{Time: *b.OfferedAt, Valid: true}
	}
	if b.OfferExpiresAt != nil {
		row.OfferExpiresAt = pgtype.Timestamptz{Time: *b.OfferExpiresAt, Valid: true}
	}
	return row
}

// Fluent builder methods
func (b *EntryBuilder) ForEvent(eventID uuid.UUID) *EntryBuilder {
	b.EventID = eventID
	return b
}

func (b *EntryBuilder) ForUser(userID uuid.UUID) *EntryBuilder {
	b.UserID = userID
	return b
}

func (b *EntryBuilder) CreatedAtTime(t time.Time) *EntryBuilder {
	b.CreatedAt = t
	return b
}

// Offered marks the entry offered at offeredAt with the given window.
func (b *EntryBuilder) Offered(offeredAt time.Time, window time.Duration) *EntryBuilder {
	expiresAt := offeredAt.Add(window)
	b.Status = waitinglist.StatusOffered
	b.OfferedAt = &offeredAt
	b.OfferExpiresAt = &expiresAt
	return b
}

func (b *EntryBuilder) WithStatus(status waitinglist.Status) *EntryBuilder {
	b.Status = status
	return b
}
