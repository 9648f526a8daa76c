package readstore

import (
	"context"

	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/repository/converter"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/pgconv"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketReadQueries interface {
	GetTicketByWaitingListID(ctx context.Context, db sqlq.DBTX, waitingListID uuid.UUID) (sqlq.Tickets, error)
	ListValidTicketsByEvent(ctx context.Context, db sqlq.DBTX, eventID uuid.UUID) ([]sqlq.Tickets, error)
	CountValidTickets(ctx context.Context, db sqlq.DBTX, eventID uuid.UUID) (int64, error)
	ListTicketsByUser(ctx context.Context, db sqlq.DBTX, userID uuid.UUID) ([]sqlq.ListTicketsByUserRow, error)
}

type TicketReadStore struct {
	queries TicketReadQueries
	db      sqlq.DBTX
}

func NewTicketReadStore(queries TicketReadQueries, db sqlq.DBTX) *TicketReadStore {
	return &TicketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TicketReadStore) FindByWaitingListID(ctx context.Context, waitingListID uuid.UUID) (*ticket.Ticket, error) {
	row, err := r.queries.GetTicketByWaitingListID(ctx, r.db, waitingListID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}
	tk, err := converter.TicketToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map ticket", err, infra.KindDBFailure)
	}
	return tk, nil
}

func (r *TicketReadStore) ListValidByEvent(ctx context.Context, eventID uuid.UUID) ([]*ticket.Ticket, error) {
	rows, err := r.queries.ListValidTicketsByEvent(ctx, r.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		tk, err := converter.TicketToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map ticket", err, infra.KindDBFailure)
		}
		tickets = append(tickets, tk)
	}
	return tickets, nil
}

func (r *TicketReadStore) CountValid(ctx context.Context, eventID uuid.UUID) (int, error) {
	n, err := r.queries.CountValidTickets(ctx, r.db, eventID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count tickets", err)
	}
	return int(n), nil
}

func (r *TicketReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.TicketView, error) {
	rows, err := r.queries.ListTicketsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user tickets", err)
	}

	views := make([]*queries.TicketView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.TicketView{
			ID:             row.ID,
			EventID:        row.EventID,
			EventName:      row.EventName,
			WaitingListID:  row.WaitingListID,
			PaymentID:      row.PaymentID,
			Status:         row.Status,
			AmountMinor:    row.PriceMinor,
			Currency:       row.Currency,
			PurchasedAt:    row.PurchasedAt.UTC(),
			RefundedAt:     pgconv.TimePtrFromPgtype(row.RefundedAt),
			EventCancelled: row.EventCancelled,
		})
	}
	return views, nil
}
