package queries

//go:generate mockgen -source=refund.go -destination=../../../tests/mock/queries/refund.go -package=queriesmock

import (
	"context"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound = errs.New("event not found")
	ErrEventAccess   = errs.New("event access denied")
)

type RefundReadStore interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*RefundAttemptView, error)
}

type EventOwnerReadStore interface {
	FindSellerID(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error)
}

type RefundQueries interface {
	ListAttempts(ctx context.Context, eventID, actorID uuid.UUID, actorRole user.Role) ([]*RefundAttemptView, error)
}

type refundQueriesImpl struct {
	attempts RefundReadStore
	events   EventOwnerReadStore
}

func NewRefundQueries(attempts RefundReadStore, events EventOwnerReadStore) RefundQueries {
	return &refundQueriesImpl{
		attempts: attempts,
		events:   events,
	}
}

// ListAttempts is visible to the event's seller and to admins.
func (q *refundQueriesImpl) ListAttempts(ctx context.Context, eventID, actorID uuid.UUID, actorRole user.Role) ([]*RefundAttemptView, error) {
	sellerID, err := q.events.FindSellerID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if actorRole != user.RoleAdmin && sellerID != actorID {
		return nil, ErrEventAccess
	}

	attempts, err := q.attempts.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []*RefundAttemptView{}
	}
	return attempts, nil
}
