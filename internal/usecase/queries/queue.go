package queries

//go:generate mockgen -source=queue.go -destination=../../../tests/mock/queries/queue.go -package=queriesmock

import (
	"context"

	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrQueueEntryNotFound = errs.New("no waiting list entry for this event")

type QueueReadStore interface {
	FindQueuePosition(ctx context.Context, eventID, userID uuid.UUID) (*QueuePositionView, error)
}

type QueueQueries interface {
	Position(ctx context.Context, eventID, userID uuid.UUID) (*QueuePositionView, error)
}

type queueQueriesImpl struct {
	readStore QueueReadStore
}

func NewQueueQueries(readStore QueueReadStore) QueueQueries {
	return &queueQueriesImpl{readStore: readStore}
}

func (q *queueQueriesImpl) Position(ctx context.Context, eventID, userID uuid.UUID) (*QueuePositionView, error) {
	view, err := q.readStore.FindQueuePosition(ctx, eventID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQueueEntryNotFound
		}
		return nil, err
	}
	return view, nil
}
