package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const waitingListColumns = `id, event_id, user_id, status, offered_at, offer_expires_at, created_at, updated_at`

func scanWaitingList(row pgx.Row) (WaitingList, error) {
	var w WaitingList
	err := row.Scan(
		&w.ID,
		&w.EventID,
		&w.UserID,
		&w.Status,
		&w.OfferedAt,
		&w.OfferExpiresAt,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

func collectWaitingList(rows pgx.Rows) ([]WaitingList, error) {
	defer rows.Close()
	var items []WaitingList
	for rows.Next() {
		w, err := scanWaitingList(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

const createWaitingListEntry = `
INSERT INTO waiting_list (` + waitingListColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) CreateWaitingListEntry(ctx context.Context, db DBTX, arg WaitingList) error {
	_, err := db.Exec(ctx, createWaitingListEntry,
		arg.ID,
		arg.EventID,
		arg.UserID,
		arg.Status,
		arg.OfferedAt,
		arg.OfferExpiresAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getWaitingListEntry = `SELECT ` + waitingListColumns + ` FROM waiting_list WHERE id = $1`

func (q *Queries) GetWaitingListEntry(ctx context.Context, db DBTX, id uuid.UUID) (WaitingList, error) {
	return scanWaitingList(db.QueryRow(ctx, getWaitingListEntry, id))
}

const getLiveWaitingListEntry = `
SELECT ` + waitingListColumns + ` FROM waiting_list
WHERE event_id = $1 AND user_id = $2 AND status IN ('waiting', 'offered')`

func (q *Queries) GetLiveWaitingListEntry(ctx context.Context, db DBTX, eventID, userID uuid.UUID) (WaitingList, error) {
	return scanWaitingList(db.QueryRow(ctx, getLiveWaitingListEntry, eventID, userID))
}

type TransitionWaitingListEntryParams struct {
	ID             uuid.UUID
	FromStatus     string
	ToStatus       string
	OfferedAt      pgtype.Timestamptz
	OfferExpiresAt pgtype.Timestamptz
	UpdatedAt      time.Time
}

const transitionWaitingListEntry = `
UPDATE waiting_list
SET status = $3, offered_at = $4, offer_expires_at = $5, updated_at = $6
WHERE id = $1 AND status = $2`

func (q *Queries) TransitionWaitingListEntry(ctx context.Context, db DBTX, arg TransitionWaitingListEntryParams) (int64, error) {
	tag, err := db.Exec(ctx, transitionWaitingListEntry,
		arg.ID,
		arg.FromStatus,
		arg.ToStatus,
		arg.OfferedAt,
		arg.OfferExpiresAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ExpireLapsedOffersRow struct {
	ID      uuid.UUID
	EventID uuid.UUID
	UserID  uuid.UUID
}

// Rows locked by a concurrent settlement are skipped and picked up on the next sweep.
const expireLapsedOffers = `
WITH lapsed AS (
    SELECT id FROM waiting_list
    WHERE status = 'offered' AND offer_expires_at <= $1
    ORDER BY offer_expires_at
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
UPDATE waiting_list w
SET status = 'expired', updated_at = $2
FROM lapsed
WHERE w.id = lapsed.id
RETURNING w.id, w.event_id, w.user_id`

func (q *Queries) ExpireLapsedOffers(ctx context.Context, db DBTX, cutoff, now time.Time, limit int32) ([]ExpireLapsedOffersRow, error) {
	rows, err := db.Query(ctx, expireLapsedOffers, cutoff, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ExpireLapsedOffersRow
	for rows.Next() {
		var i ExpireLapsedOffersRow
		if err := rows.Scan(&i.ID, &i.EventID, &i.UserID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listNextWaiting = `
SELECT ` + waitingListColumns + ` FROM waiting_list
WHERE event_id = $1 AND status = 'waiting'
ORDER BY created_at, id
LIMIT $2`

func (q *Queries) ListNextWaiting(ctx context.Context, db DBTX, eventID uuid.UUID, limit int32) ([]WaitingList, error) {
	rows, err := db.Query(ctx, listNextWaiting, eventID, limit)
	if err != nil {
		return nil, err
	}
	return collectWaitingList(rows)
}

const cancelLiveEntries = `
UPDATE waiting_list SET status = 'cancelled', updated_at = $2
WHERE event_id = $1 AND status IN ('waiting', 'offered')`

func (q *Queries) CancelLiveEntries(ctx context.Context, db DBTX, eventID uuid.UUID, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, cancelLiveEntries, eventID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Offers that lapsed less than the grace period ago still hold a seat.
const countHeldOffers = `
SELECT count(*) FROM waiting_list
WHERE event_id = $1 AND status = 'offered' AND offer_expires_at > $2`

func (q *Queries) CountHeldOffers(ctx context.Context, db DBTX, eventID uuid.UUID, cutoff time.Time) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countHeldOffers, eventID, cutoff).Scan(&n)
	return n, err
}

type QueuePositionRow struct {
	ID             uuid.UUID
	Status         string
	OfferExpiresAt pgtype.Timestamptz
	Position       int64
	WaitingTotal   int64
}

const getQueuePosition = `
SELECT w.id, w.status, w.offer_expires_at,
    (SELECT count(*) FROM waiting_list a
     WHERE a.event_id = w.event_id AND a.status = 'waiting'
       AND (a.created_at, a.id) < (w.created_at, w.id)) + 1 AS position,
    (SELECT count(*) FROM waiting_list t
     WHERE t.event_id = w.event_id AND t.status = 'waiting') AS waiting_total
FROM waiting_list w
WHERE w.event_id = $1 AND w.user_id = $2
ORDER BY (w.status IN ('waiting', 'offered')) DESC, w.updated_at DESC
LIMIT 1`

// GetQueuePosition prefers the live entry and otherwise reports the most recent terminal one.
func (q *Queries) GetQueuePosition(ctx context.Context, db DBTX, eventID, userID uuid.UUID) (QueuePositionRow, error) {
	var r QueuePositionRow
	err := db.QueryRow(ctx, getQueuePosition, eventID, userID).Scan(
		&r.ID,
		&r.Status,
		&r.OfferExpiresAt,
		&r.Position,
		&r.WaitingTotal,
	)
	return r, err
}
