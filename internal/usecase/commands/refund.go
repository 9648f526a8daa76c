package commands

//go:generate mockgen -source=refund.go -destination=../../../tests/mock/commands/refund.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sync"

	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const lateSettlementReason = "ticket settled while refunds were in flight, retry the cancellation"

type RefundFailure struct {
	TicketID uuid.UUID
	Reason   string
}

// RefundReport lists every ticket touched by one orchestration run. The event is cancelled
// only when Failures is empty.
type RefundReport struct {
	EventID        uuid.UUID
	Success        bool
	Refunded       []uuid.UUID
	Failures       []RefundFailure
	EventCancelled bool
}

type RefundCommands interface {
	// CancelEventAndRefund refunds every valid ticket independently and cancels the event
	// only if all refunds succeeded. Retrying after a partial failure skips refunded tickets.
	CancelEventAndRefund(ctx context.Context, eventID, actorID uuid.UUID, actorRole user.Role) (*RefundReport, error)
}

type refundUseCaseImpl struct {
	uow      shared.UnitOfWork
	provider shared.PaymentProvider
	clock    clock.Clock
	metrics  shared.Metrics
	cfg      config.RefundConfig
	logger   *slog.Logger
}

func NewRefundCommands(
	uow shared.UnitOfWork,
	provider shared.PaymentProvider,
	clk clock.Clock,
	metrics shared.Metrics,
	cfg config.Config,
	logger *slog.Logger,
) RefundCommands {
	return &refundUseCaseImpl{
		uow:      uow,
		provider: provider,
		clock:    clk,
		metrics:  metrics,
		cfg:      cfg.Refund,
		logger:   logger,
	}
}

func (uc *refundUseCaseImpl) CancelEventAndRefund(ctx context.Context, eventID, actorID uuid.UUID, actorRole user.Role) (*RefundReport, error) {
	reads := uc.uow.CommandReads()

	ev, err := reads.EventByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !ev.IsOwnedBy(actorID) && actorRole != user.RoleAdmin {
		return nil, ErrNotEventOwner
	}
	if ev.IsCancelled() {
		return nil, ErrEventCancelled
	}

	tickets, err := reads.ValidTicketsForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	report := &RefundReport{EventID: eventID, Refunded: []uuid.UUID{}, Failures: []RefundFailure{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency())
	for _, t := range tickets {
		g.Go(func() error {
			// Failures are collected, never returned, so one ticket cannot cancel the others.
			refundErr := uc.refundTicket(gctx, t)

			mu.Lock()
			defer mu.Unlock()
			if refundErr != nil {
				report.Failures = append(report.Failures, RefundFailure{TicketID: t.ID(), Reason: refundErr.Error()})
				return nil
			}
			report.Refunded = append(report.Refunded, t.ID())
			return nil
		})
	}
	_ = g.Wait()

	if len(report.Failures) > 0 {
		uc.logger.Warn("event refund incomplete, event left active",
			"event_id", eventID,
			"refunded", len(report.Refunded),
			"failed", len(report.Failures))
		return report, nil
	}

	late, err := uc.cancelEvent(ctx, eventID, len(report.Refunded))
	if err != nil {
		return nil, err
	}
	if len(late) > 0 {
		for _, id := range late {
			report.Failures = append(report.Failures, RefundFailure{TicketID: id, Reason: lateSettlementReason})
		}
		uc.logger.Warn("tickets settled during cancellation, event left active",
			"event_id", eventID,
			"refunded", len(report.Refunded),
			"late", len(late))
		return report, nil
	}
	report.Success = true
	report.EventCancelled = true

	uc.logger.Info("event cancelled", "event_id", eventID, "refunded", len(report.Refunded), "actor_id", actorID)
	return report, nil
}

func (uc *refundUseCaseImpl) refundTicket(ctx context.Context, t *ticket.Ticket) error {
	// A dispatched refund runs to completion even if the caller goes away.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.Timeout)
	defer cancel()

	refund, err := uc.provider.Refund(rctx, shared.RefundRequest{
		PaymentID:   t.PaymentID(),
		AmountMinor: t.Price().Minor(),
		Notes: map[string]string{
			"ticketId": t.ID().String(),
			"eventId":  t.EventID().String(),
		},
		IdempotencyKey: t.ID().String(),
	})
	if err != nil {
		uc.metrics.RefundResult(string(shared.RefundAttemptFailed))
		uc.recordFailure(rctx, t, err)
		return err
	}

	err = uc.uow.Within(rctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		refunded := *t
		if err := refunded.MarkRefunded(now); err != nil {
			return errs.Wrap(err, "mark ticket refunded")
		}
		ok, err := tx.Tickets().MarkRefunded(ctx, &refunded)
		if err != nil {
			return err
		}
		if !ok {
			return ticket.ErrAlreadyRefunded
		}
		refundID := refund.ID
		if err := tx.RefundAttempts().Record(ctx, shared.RefundAttempt{
			ID:               uuid.New(),
			TicketID:         t.ID(),
			EventID:          t.EventID(),
			PaymentID:        t.PaymentID(),
			Status:           shared.RefundAttemptSucceeded,
			ProviderRefundID: &refundID,
			AttemptedAt:      now,
		}); err != nil {
			return err
		}
		return enqueue(ctx, tx, shared.JobKindUserNotification, shared.TopicTicketRefunded, newTicketMessage(&refunded), now)
	})
	if errs.Is(err, ticket.ErrAlreadyRefunded) {
		// A concurrent run refunded it first; the provider call was deduplicated by the idempotency key.
		err = nil
	}
	if err != nil {
		uc.metrics.RefundResult(string(shared.RefundAttemptFailed))
		uc.logger.Error("refund issued but ticket update failed",
			"ticket_id", t.ID(),
			"refund_id", refund.ID,
			"error", err)
		return err
	}

	uc.metrics.RefundResult(string(shared.RefundAttemptSucceeded))
	return nil
}

func (uc *refundUseCaseImpl) recordFailure(ctx context.Context, t *ticket.Ticket, cause error) {
	reason := cause.Error()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.RefundAttempts().Record(ctx, shared.RefundAttempt{
			ID:          uuid.New(),
			TicketID:    t.ID(),
			EventID:     t.EventID(),
			PaymentID:   t.PaymentID(),
			Status:      shared.RefundAttemptFailed,
			Error:       &reason,
			AttemptedAt: uc.clock.Now(),
		})
	})
	if err != nil {
		uc.logger.Error("failed to record refund failure", "ticket_id", t.ID(), "error", err)
	}
	uc.logger.Warn("ticket refund failed", "ticket_id", t.ID(), "payment_id", t.PaymentID(), "error", cause)
}

// cancelEvent cancels the event unless valid tickets remain, in which case their ids are
// returned and nothing is written. Settlement share-locks the event, so a capture either
// commits before this check or sees the event cancelled.
func (uc *refundUseCaseImpl) cancelEvent(ctx context.Context, eventID uuid.UUID, refunded int) ([]uuid.UUID, error) {
	var late []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		late = nil
		now := uc.clock.Now()

		ev, err := tx.Events().LockByID(ctx, eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		remaining, err := tx.Reads().ValidTicketsForEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			for _, t := range remaining {
				late = append(late, t.ID())
			}
			return nil
		}

		if err := ev.Cancel(now); err != nil {
			return ErrEventCancelled
		}
		ok, err := tx.Events().MarkCancelled(ctx, ev)
		if err != nil {
			return err
		}
		if !ok {
			return ErrEventCancelled
		}

		cancelled, err := tx.WaitingList().CancelLive(ctx, eventID, now)
		if err != nil {
			return err
		}
		msg := eventCancelledMessage{EventID: eventID, TicketsRefunded: refunded, EntriesCancelled: cancelled}
		return enqueue(ctx, tx, shared.JobKindUserNotification, shared.TopicEventCancelled, msg, now)
	})
	if err != nil {
		return nil, err
	}
	return late, nil
}

func (uc *refundUseCaseImpl) concurrency() int {
	if uc.cfg.Concurrency <= 0 {
		return 1
	}
	return uc.cfg.Concurrency
}
