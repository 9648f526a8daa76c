package repository

import (
	"context"
	"time"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/repository/converter"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
)

type EventWriteQueries interface {
	LockEventByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.Events, error)
	ShareLockEventByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.Events, error)
	MarkEventCancelled(ctx context.Context, db sqlq.DBTX, id uuid.UUID, cancelledAt time.Time) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlq.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlq.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.LockEventByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}
	return toEvent(row)
}

func (r *EventRepository) ShareLockByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.ShareLockEventByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to share-lock event", err)
	}
	return toEvent(row)
}

func toEvent(row sqlq.Events) (*event.Event, error) {
	ev, err := converter.EventToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map event", err, infra.KindDBFailure)
	}
	return ev, nil
}

// MarkCancelled reports false when the event was already cancelled.
func (r *EventRepository) MarkCancelled(ctx context.Context, e *event.Event) (bool, error) {
	if e.CancelledAt() == nil {
		return false, infra.WrapRepoErr("event has no cancellation time", nil, infra.KindDBFailure)
	}
	n, err := r.queries.MarkEventCancelled(ctx, r.db, e.ID(), *e.CancelledAt())
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel event", err)
	}
	return n == 1, nil
}
