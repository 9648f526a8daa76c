package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, seller_id, name, description, price_minor, currency, total_tickets, cancelled_at`

func scanEvent(row pgx.Row) (Events, error) {
	var e Events
	err := row.Scan(
		&e.ID,
		&e.SellerID,
		&e.Name,
		&e.Description,
		&e.PriceMinor,
		&e.Currency,
		&e.TotalTickets,
		&e.CancelledAt,
	)
	return e, err
}

const getEventByID = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

func (q *Queries) GetEventByID(ctx context.Context, db DBTX, id uuid.UUID) (Events, error) {
	return scanEvent(db.QueryRow(ctx, getEventByID, id))
}

// Admission and cancellation serialize on this lock.
const lockEventByID = `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`

func (q *Queries) LockEventByID(ctx context.Context, db DBTX, id uuid.UUID) (Events, error) {
	return scanEvent(db.QueryRow(ctx, lockEventByID, id))
}

// Settlement holds this lock so a capture cannot land while the event is being cancelled.
const shareLockEventByID = `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR SHARE`

func (q *Queries) ShareLockEventByID(ctx context.Context, db DBTX, id uuid.UUID) (Events, error) {
	return scanEvent(db.QueryRow(ctx, shareLockEventByID, id))
}

const markEventCancelled = `UPDATE events SET cancelled_at = $2 WHERE id = $1 AND cancelled_at IS NULL`

func (q *Queries) MarkEventCancelled(ctx context.Context, db DBTX, id uuid.UUID, cancelledAt time.Time) (int64, error) {
	tag, err := db.Exec(ctx, markEventCancelled, id, cancelledAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
