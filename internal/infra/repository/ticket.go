package repository

import (
	"context"
	"time"

	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/repository/converter"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
)

type TicketWriteQueries interface {
	CreateTicket(ctx context.Context, db sqlq.DBTX, arg sqlq.Tickets) error
	MarkTicketRefunded(ctx context.Context, db sqlq.DBTX, id uuid.UUID, refundedAt time.Time) (int64, error)
}

type TicketRepository struct {
	queries TicketWriteQueries
	db      sqlq.DBTX
}

func NewTicketRepository(queries TicketWriteQueries, db sqlq.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if err := r.queries.CreateTicket(ctx, r.db, converter.TicketToRow(t)); err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) MarkRefunded(ctx context.Context, t *ticket.Ticket) (bool, error) {
	if t.RefundedAt() == nil {
		return false, infra.WrapRepoErr("ticket has no refund time", nil, infra.KindDBFailure)
	}
	n, err := r.queries.MarkTicketRefunded(ctx, r.db, t.ID(), *t.RefundedAt())
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark ticket refunded", err)
	}
	return n == 1, nil
}
