package queries

//go:generate mockgen -source=ticket.go -destination=../../../tests/mock/queries/ticket.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type TicketReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
}

type TicketQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
}

type ticketQueriesImpl struct {
	readStore TicketReadStore
}

func NewTicketQueries(readStore TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{readStore: readStore}
}

func (q *ticketQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error) {
	tickets, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []*TicketView{}
	}
	return tickets, nil
}
