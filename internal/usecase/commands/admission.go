package commands

//go:generate mockgen -source=admission.go -destination=../../../tests/mock/commands/admission.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExpirySweepResult struct {
	Expired int
	Granted int
}

type AdmissionCommands interface {
	// JoinWaitingList queues the user and immediately offers tickets to the head of the queue.
	JoinWaitingList(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error)
	// LeaveWaitingList cancels the user's live entry. A released offer goes to the next waiting user.
	LeaveWaitingList(ctx context.Context, eventID, userID uuid.UUID) error
	// GrantOffer gives the user a time-boxed offer if inventory allows and nobody waiting
	// ahead of them is still owed one. A caller who is not yet in turn stays queued.
	GrantOffer(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error)
	// ProcessQueue offers released inventory to the oldest waiting entries.
	ProcessQueue(ctx context.Context, eventID uuid.UUID) (int, error)
	// ExpireOffers reclaims offers that lapsed more than the grace period ago.
	ExpireOffers(ctx context.Context) (*ExpirySweepResult, error)
}

type admissionUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.Metrics
	cfg     config.OfferConfig
	logger  *slog.Logger
}

func NewAdmissionCommands(uow shared.UnitOfWork, clk clock.Clock, metrics shared.Metrics, cfg config.Config, logger *slog.Logger) AdmissionCommands {
	return &admissionUseCaseImpl{
		uow:     uow,
		clock:   clk,
		metrics: metrics,
		cfg:     cfg.Offer,
		logger:  logger,
	}
}

func (uc *admissionUseCaseImpl) JoinWaitingList(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error) {
	var (
		joined  *waitinglist.Entry
		granted int
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		joined, granted = nil, 0
		now := uc.clock.Now()

		ev, err := uc.lockOpenEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		live, err := uc.reclaimLapsed(ctx, tx, eventID, userID, now)
		if err != nil {
			return err
		}
		if live != nil {
			return ErrAlreadyInQueue
		}

		entry := waitinglist.NewEntry(eventID, userID, now)
		if err := tx.WaitingList().Create(ctx, entry); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyInQueue
			}
			return err
		}

		granted, err = uc.processQueue(ctx, tx, ev, now)
		if err != nil {
			return err
		}

		joined, err = tx.Reads().EntryByID(ctx, entry.ID())
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.OffersGranted(granted)
	uc.logger.Info("joined waiting list",
		"event_id", eventID,
		"user_id", userID,
		"entry_id", joined.ID(),
		"status", joined.Status())
	return joined, nil
}

func (uc *admissionUseCaseImpl) LeaveWaitingList(ctx context.Context, eventID, userID uuid.UUID) error {
	var granted int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		granted = 0
		now := uc.clock.Now()

		ev, err := tx.Events().LockByID(ctx, eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		entry, err := tx.Reads().LiveEntry(ctx, eventID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotInQueue
			}
			return err
		}

		from := entry.Status()
		if err := entry.Cancel(now); err != nil {
			return errs.Wrap(err, "cancel entry")
		}
		ok, err := tx.WaitingList().Transition(ctx, entry, from)
		if err != nil {
			return err
		}
		if !ok {
			return ErrConcurrentUpdate
		}

		if from != waitinglist.StatusOffered || ev.IsCancelled() {
			return nil
		}
		granted, err = uc.processQueue(ctx, tx, ev, now)
		return err
	})
	if err != nil {
		return err
	}

	uc.metrics.OffersGranted(granted)
	uc.logger.Info("left waiting list", "event_id", eventID, "user_id", userID, "offers_granted", granted)
	return nil
}

func (uc *admissionUseCaseImpl) GrantOffer(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error) {
	var (
		offered *waitinglist.Entry
		granted int
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offered, granted = nil, 0
		now := uc.clock.Now()

		ev, err := uc.lockOpenEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		entry, err := uc.reclaimLapsed(ctx, tx, eventID, userID, now)
		if err != nil {
			return err
		}
		if entry != nil && entry.Status() == waitinglist.StatusOffered {
			return ErrAlreadyOffered
		}

		available, err := uc.available(ctx, tx, ev, now)
		if err != nil {
			return err
		}
		if available <= 0 {
			return ErrSoldOut
		}

		if entry == nil {
			entry = waitinglist.NewEntry(eventID, userID, now)
			if err := tx.WaitingList().Create(ctx, entry); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return ErrAlreadyOffered
				}
				return err
			}
		}

		// Free seats always go to the head of the queue, so the caller is offered only in turn.
		granted, err = uc.processQueue(ctx, tx, ev, now)
		if err != nil {
			return err
		}
		current, err := tx.Reads().EntryByID(ctx, entry.ID())
		if err != nil {
			return err
		}
		if current.Status() == waitinglist.StatusOffered {
			offered = current
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.OffersGranted(granted)
	if offered == nil {
		uc.logger.Info("offer deferred to earlier entrants",
			"event_id", eventID,
			"user_id", userID,
			"offers_granted", granted)
		return nil, ErrQueueAhead
	}

	uc.logger.Info("offer granted",
		"event_id", eventID,
		"user_id", userID,
		"entry_id", offered.ID(),
		"expires_at", offered.OfferExpiresAt())
	return offered, nil
}

func (uc *admissionUseCaseImpl) ProcessQueue(ctx context.Context, eventID uuid.UUID) (int, error) {
	var granted int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		granted = 0
		now := uc.clock.Now()

		ev, err := uc.lockOpenEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}
		granted, err = uc.processQueue(ctx, tx, ev, now)
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.metrics.OffersGranted(granted)
	return granted, nil
}

func (uc *admissionUseCaseImpl) ExpireOffers(ctx context.Context) (*ExpirySweepResult, error) {
	var expired []shared.ExpiredOffer
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		var err error
		expired, err = tx.WaitingList().ExpireLapsed(ctx, now.Add(-uc.cfg.ExpiryGrace), now, uc.cfg.SweepBatch)
		if err != nil {
			return err
		}
		for _, e := range expired {
			msg := offerMessage{WaitingListID: e.ID, EventID: e.EventID, UserID: e.UserID}
			if err := enqueue(ctx, tx, shared.JobKindUserNotification, shared.TopicOfferExpired, msg, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &ExpirySweepResult{Expired: len(expired)}
	uc.metrics.OffersExpired(result.Expired)

	// Each event refills in its own transaction so one failure does not undo the sweep.
	seen := make(map[uuid.UUID]struct{}, len(expired))
	for _, e := range expired {
		if _, ok := seen[e.EventID]; ok {
			continue
		}
		seen[e.EventID] = struct{}{}

		granted, err := uc.ProcessQueue(ctx, e.EventID)
		if err != nil {
			if errs.Is(err, ErrEventCancelled) || errs.Is(err, ErrEventNotFound) {
				continue
			}
			uc.logger.Error("failed to refill queue after expiry", "event_id", e.EventID, "error", err)
			continue
		}
		result.Granted += granted
	}

	if result.Expired > 0 {
		uc.logger.Info("expired lapsed offers", "expired", result.Expired, "granted", result.Granted)
	}
	return result, nil
}

func (uc *admissionUseCaseImpl) lockOpenEvent(ctx context.Context, tx shared.Tx, eventID uuid.UUID) (*event.Event, error) {
	ev, err := tx.Events().LockByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if ev.IsCancelled() {
		return nil, ErrEventCancelled
	}
	return ev, nil
}

// reclaimLapsed returns the user's live entry, expiring it first when its offer lapsed
// more than the grace period ago. A nil entry means the user has no live entry.
func (uc *admissionUseCaseImpl) reclaimLapsed(ctx context.Context, tx shared.Tx, eventID, userID uuid.UUID, now time.Time) (*waitinglist.Entry, error) {
	entry, err := tx.Reads().LiveEntry(ctx, eventID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !entry.HasLapsedOffer(now.Add(-uc.cfg.ExpiryGrace)) {
		return entry, nil
	}

	if err := entry.Expire(now); err != nil {
		return nil, errs.Wrap(err, "expire lapsed offer")
	}
	ok, err := tx.WaitingList().Transition(ctx, entry, waitinglist.StatusOffered)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConcurrentUpdate
	}
	if err := enqueue(ctx, tx, shared.JobKindUserNotification, shared.TopicOfferExpired, newOfferMessage(entry), now); err != nil {
		return nil, err
	}
	uc.metrics.OffersExpired(1)
	return nil, nil
}

// available counts offers inside the grace period as held so a late capture cannot oversell.
func (uc *admissionUseCaseImpl) available(ctx context.Context, tx shared.Tx, ev *event.Event, now time.Time) (int, error) {
	valid, err := tx.Reads().CountValidTickets(ctx, ev.ID())
	if err != nil {
		return 0, err
	}
	held, err := tx.Reads().CountHeldOffers(ctx, ev.ID(), now.Add(-uc.cfg.ExpiryGrace))
	if err != nil {
		return 0, err
	}
	return ev.Available(valid, held), nil
}

func (uc *admissionUseCaseImpl) processQueue(ctx context.Context, tx shared.Tx, ev *event.Event, now time.Time) (int, error) {
	available, err := uc.available(ctx, tx, ev, now)
	if err != nil {
		return 0, err
	}
	if available <= 0 {
		return 0, nil
	}

	next, err := tx.WaitingList().NextWaiting(ctx, ev.ID(), available)
	if err != nil {
		return 0, err
	}
	for _, entry := range next {
		if err := uc.offer(ctx, tx, entry, now); err != nil {
			return 0, err
		}
	}
	return len(next), nil
}

func (uc *admissionUseCaseImpl) offer(ctx context.Context, tx shared.Tx, entry *waitinglist.Entry, now time.Time) error {
	from := entry.Status()
	if err := entry.Offer(now, uc.cfg.Window); err != nil {
		return errs.Wrap(err, "offer entry")
	}
	ok, err := tx.WaitingList().Transition(ctx, entry, from)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConcurrentUpdate
	}
	return enqueue(ctx, tx, shared.JobKindUserNotification, shared.TopicOfferGranted, newOfferMessage(entry), now)
}
