package readstore

import (
	"context"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/repository/converter"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
)

type EventReadQueries interface {
	GetEventByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.Events, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlq.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlq.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	ev, err := converter.EventToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map event", err, infra.KindDBFailure)
	}
	return ev, nil
}

func (r *EventReadStore) FindSellerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find event", err)
	}
	return row.SellerID, nil
}
