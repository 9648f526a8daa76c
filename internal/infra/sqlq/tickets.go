package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const ticketColumns = `id, event_id, user_id, waiting_list_id, payment_id, status, price_minor, currency, purchased_at, refunded_at`

func scanTicket(row pgx.Row) (Tickets, error) {
	var t Tickets
	err := row.Scan(
		&t.ID,
		&t.EventID,
		&t.UserID,
		&t.WaitingListID,
		&t.PaymentID,
		&t.Status,
		&t.PriceMinor,
		&t.Currency,
		&t.PurchasedAt,
		&t.RefundedAt,
	)
	return t, err
}

const createTicket = `
INSERT INTO tickets (` + ticketColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateTicket(ctx context.Context, db DBTX, arg Tickets) error {
	_, err := db.Exec(ctx, createTicket,
		arg.ID,
		arg.EventID,
		arg.UserID,
		arg.WaitingListID,
		arg.PaymentID,
		arg.Status,
		arg.PriceMinor,
		arg.Currency,
		arg.PurchasedAt,
		arg.RefundedAt,
	)
	return err
}

const getTicketByWaitingListID = `SELECT ` + ticketColumns + ` FROM tickets WHERE waiting_list_id = $1`

func (q *Queries) GetTicketByWaitingListID(ctx context.Context, db DBTX, waitingListID uuid.UUID) (Tickets, error) {
	return scanTicket(db.QueryRow(ctx, getTicketByWaitingListID, waitingListID))
}

const listValidTicketsByEvent = `
SELECT ` + ticketColumns + ` FROM tickets
WHERE event_id = $1 AND status = 'valid'
ORDER BY purchased_at, id`

func (q *Queries) ListValidTicketsByEvent(ctx context.Context, db DBTX, eventID uuid.UUID) ([]Tickets, error) {
	rows, err := db.Query(ctx, listValidTicketsByEvent, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Tickets
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const countValidTickets = `SELECT count(*) FROM tickets WHERE event_id = $1 AND status = 'valid'`

func (q *Queries) CountValidTickets(ctx context.Context, db DBTX, eventID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countValidTickets, eventID).Scan(&n)
	return n, err
}

const markTicketRefunded = `
UPDATE tickets SET status = 'refunded', refunded_at = $2
WHERE id = $1 AND status = 'valid'`

func (q *Queries) MarkTicketRefunded(ctx context.Context, db DBTX, id uuid.UUID, refundedAt time.Time) (int64, error) {
	tag, err := db.Exec(ctx, markTicketRefunded, id, refundedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListTicketsByUserRow struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	EventName      string
	WaitingListID  uuid.UUID
	PaymentID      string
	Status         string
	PriceMinor     int64
	Currency       string
	PurchasedAt    time.Time
	RefundedAt     pgtype.Timestamptz
	EventCancelled bool
}

const listTicketsByUser = `
SELECT t.id, t.event_id, e.name, t.waiting_list_id, t.payment_id, t.status,
    t.price_minor, t.currency, t.purchased_at, t.refunded_at, e.cancelled_at IS NOT NULL
FROM tickets t
JOIN events e ON e.id = t.event_id
WHERE t.user_id = $1
ORDER BY t.purchased_at DESC, t.id`

func (q *Queries) ListTicketsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ListTicketsByUserRow, error) {
	rows, err := db.Query(ctx, listTicketsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListTicketsByUserRow
	for rows.Next() {
		var i ListTicketsByUserRow
		if err := rows.Scan(
			&i.ID,
			&i.EventID,
			&i.EventName,
			&i.WaitingListID,
			&i.PaymentID,
			&i.Status,
			&i.PriceMinor,
			&i.Currency,
			&i.PurchasedAt,
			&i.RefundedAt,
			&i.EventCancelled,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
