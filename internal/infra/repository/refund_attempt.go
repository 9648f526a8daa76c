package repository

import (
	"context"

	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/pgconv"
	"ticket-marketplace/internal/usecase/shared"
)

type RefundAttemptWriteQueries interface {
	CreateRefundAttempt(ctx context.Context, db sqlq.DBTX, arg sqlq.RefundAttempts) error
}

type RefundAttemptRepository struct {
	queries RefundAttemptWriteQueries
	db      sqlq.DBTX
}

func NewRefundAttemptRepository(queries RefundAttemptWriteQueries, db sqlq.DBTX) *RefundAttemptRepository {
	return &RefundAttemptRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RefundAttemptRepository) Record(ctx context.Context, attempt shared.RefundAttempt) error {
	params := sqlq.RefundAttempts{
		ID:               attempt.ID,
		TicketID:         attempt.TicketID,
		EventID:          attempt.EventID,
		PaymentID:        attempt.PaymentID,
		Status:           string(attempt.Status),
		ProviderRefundID: pgconv.StringPtrToPgtype(attempt.ProviderRefundID),
		Error:            pgconv.StringPtrToPgtype(attempt.Error),
		AttemptedAt:      attempt.AttemptedAt,
	}
	if err := r.queries.CreateRefundAttempt(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to record refund attempt", err)
	}
	return nil
}
