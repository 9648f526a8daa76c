package repository

import (
	"context"
	"time"

	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/repository/converter"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitingListWriteQueries interface {
	CreateWaitingListEntry(ctx context.Context, db sqlq.DBTX, arg sqlq.WaitingList) error
	TransitionWaitingListEntry(ctx context.Context, db sqlq.DBTX, arg sqlq.TransitionWaitingListEntryParams) (int64, error)
	ExpireLapsedOffers(ctx context.Context, db sqlq.DBTX, cutoff, now time.Time, limit int32) ([]sqlq.ExpireLapsedOffersRow, error)
	ListNextWaiting(ctx context.Context, db sqlq.DBTX, eventID uuid.UUID, limit int32) ([]sqlq.WaitingList, error)
	CancelLiveEntries(ctx context.Context, db sqlq.DBTX, eventID uuid.UUID, now time.Time) (int64, error)
}

type WaitingListRepository struct {
	queries WaitingListWriteQueries
	db      sqlq.DBTX
}

func NewWaitingListRepository(queries WaitingListWriteQueries, db sqlq.DBTX) *WaitingListRepository {
	return &WaitingListRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WaitingListRepository) Create(ctx context.Context, e *waitinglist.Entry) error {
	if err := r.queries.CreateWaitingListEntry(ctx, r.db, converter.WaitingListToRow(e)); err != nil {
		return infra.WrapRepoErr("failed to create waiting list entry", err)
	}
	return nil
}

func (r *WaitingListRepository) Transition(ctx context.Context, e *waitinglist.Entry, from waitinglist.Status) (bool, error) {
	n, err := r.queries.TransitionWaitingListEntry(ctx, r.db, converter.WaitingListToTransitionParams(e, from))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update waiting list entry", err)
	}
	return n == 1, nil
}

func (r *WaitingListRepository) ExpireLapsed(ctx context.Context, cutoff, now time.Time, limit int) ([]shared.ExpiredOffer, error) {
	rows, err := r.queries.ExpireLapsedOffers(ctx, r.db, cutoff, now, int32(limit)) // #nosec G115 -- bounded by config
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire lapsed offers", err)
	}

	expired := make([]shared.ExpiredOffer, 0, len(rows))
	for _, row := range rows {
		expired = append(expired, shared.ExpiredOffer{
			ID:      row.ID,
			EventID: row.EventID,
			UserID:  row.UserID,
		})
	}
	return expired, nil
}

func (r *WaitingListRepository) NextWaiting(ctx context.Context, eventID uuid.UUID, limit int) ([]*waitinglist.Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.queries.ListNextWaiting(ctx, r.db, eventID, int32(limit)) // #nosec G115 -- bounded by event capacity
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waiting entries", err)
	}

	entries := make([]*waitinglist.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := converter.WaitingListToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map waiting list entry", err, infra.KindDBFailure)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *WaitingListRepository) CancelLive(ctx context.Context, eventID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.CancelLiveEntries(ctx, r.db, eventID, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel waiting list entries", err)
	}
	return n, nil
}
