package sqlq

import (
	"context"

	"github.com/google/uuid"
)

const createRefundAttempt = `
INSERT INTO refund_attempts (id, ticket_id, event_id, payment_id, status, provider_refund_id, error, attempted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) CreateRefundAttempt(ctx context.Context, db DBTX, arg RefundAttempts) error {
	_, err := db.Exec(ctx, createRefundAttempt,
		arg.ID,
		arg.TicketID,
		arg.EventID,
		arg.PaymentID,
		arg.Status,
		arg.ProviderRefundID,
		arg.Error,
		arg.AttemptedAt,
	)
	return err
}

const listRefundAttemptsByEvent = `
SELECT id, ticket_id, event_id, payment_id, status, provider_refund_id, error, attempted_at
FROM refund_attempts
WHERE event_id = $1
ORDER BY attempted_at DESC, id`

func (q *Queries) ListRefundAttemptsByEvent(ctx context.Context, db DBTX, eventID uuid.UUID) ([]RefundAttempts, error) {
	rows, err := db.Query(ctx, listRefundAttemptsByEvent, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RefundAttempts
	for rows.Next() {
		var i RefundAttempts
		if err := rows.Scan(
			&i.ID,
			&i.TicketID,
			&i.EventID,
			&i.PaymentID,
			&i.Status,
			&i.ProviderRefundID,
			&i.Error,
			&i.AttemptedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
