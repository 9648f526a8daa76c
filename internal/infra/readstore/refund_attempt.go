package readstore

import (
	"context"

	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/pgconv"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type RefundAttemptReadQueries interface {
	ListRefundAttemptsByEvent(ctx context.Context, db sqlq.DBTX, eventID uuid.UUID) ([]sqlq.RefundAttempts, error)
}

type RefundAttemptReadStore struct {
	queries RefundAttemptReadQueries
	db      sqlq.DBTX
}

func NewRefundAttemptReadStore(queries RefundAttemptReadQueries, db sqlq.DBTX) *RefundAttemptReadStore {
	return &RefundAttemptReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RefundAttemptReadStore) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.RefundAttemptView, error) {
	rows, err := r.queries.ListRefundAttemptsByEvent(ctx, r.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list refund attempts", err)
	}

	views := make([]*queries.RefundAttemptView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.RefundAttemptView{
			ID:               row.ID,
			TicketID:         row.TicketID,
			PaymentID:        row.PaymentID,
			Status:           row.Status,
			ProviderRefundID: pgconv.StringPtrFromPgtype(row.ProviderRefundID),
			Error:            pgconv.StringPtrFromPgtype(row.Error),
			AttemptedAt:      row.AttemptedAt.UTC(),
		})
	}
	return views, nil
}
