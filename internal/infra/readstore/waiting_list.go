package readstore

import (
	"context"
	"time"

	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/repository/converter"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/pgconv"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type WaitingListReadQueries interface {
	GetWaitingListEntry(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.WaitingList, error)
	GetLiveWaitingListEntry(ctx context.Context, db sqlq.DBTX, eventID, userID uuid.UUID) (sqlq.WaitingList, error)
	CountHeldOffers(ctx context.Context, db sqlq.DBTX, eventID uuid.UUID, cutoff time.Time) (int64, error)
	GetQueuePosition(ctx context.Context, db sqlq.DBTX, eventID, userID uuid.UUID) (sqlq.QueuePositionRow, error)
}

type WaitingListReadStore struct {
	queries WaitingListReadQueries
	db      sqlq.DBTX
}

func NewWaitingListReadStore(queries WaitingListReadQueries, db sqlq.DBTX) *WaitingListReadStore {
	return &WaitingListReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WaitingListReadStore) FindByID(ctx context.Context, id uuid.UUID) (*waitinglist.Entry, error) {
	row, err := r.queries.GetWaitingListEntry(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find waiting list entry", err)
	}
	return toEntry(row)
}

func (r *WaitingListReadStore) FindLive(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error) {
	row, err := r.queries.GetLiveWaitingListEntry(ctx, r.db, eventID, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find live waiting list entry", err)
	}
	return toEntry(row)
}

// CountHeldOffers counts offers whose expiry is after cutoff.
func (r *WaitingListReadStore) CountHeldOffers(ctx context.Context, eventID uuid.UUID, cutoff time.Time) (int, error) {
	n, err := r.queries.CountHeldOffers(ctx, r.db, eventID, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count offers", err)
	}
	return int(n), nil
}

func (r *WaitingListReadStore) FindQueuePosition(ctx context.Context, eventID, userID uuid.UUID) (*queries.QueuePositionView, error) {
	row, err := r.queries.GetQueuePosition(ctx, r.db, eventID, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find queue position", err)
	}

	view := &queries.QueuePositionView{
		EntryID:        row.ID,
		Status:         row.Status,
		WaitingTotal:   int(row.WaitingTotal),
		OfferExpiresAt: pgconv.TimePtrFromPgtype(row.OfferExpiresAt),
	}
	if row.Status == string(waitinglist.StatusWaiting) {
		position := int(row.Position)
		view.Position = &position
	}
	return view, nil
}

func toEntry(row sqlq.WaitingList) (*waitinglist.Entry, error) {
	entry, err := converter.WaitingListToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map waiting list entry", err, infra.KindDBFailure)
	}
	return entry, nil
}
