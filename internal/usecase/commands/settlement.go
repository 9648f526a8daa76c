package commands

//go:generate mockgen -source=settlement.go -destination=../../../tests/mock/commands/settlement.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"ticket-marketplace/internal/domain/payment"
	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/pkg/signature"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettlementOutcome string

const (
	OutcomeSettled          SettlementOutcome = "settled"
	OutcomeAlreadySettled   SettlementOutcome = "already_settled"
	OutcomeIgnored          SettlementOutcome = "ignored"
	OutcomeDuplicateCapture SettlementOutcome = "duplicate_capture"
	// The capture arrived for a cancelled event. It is acknowledged and left to operators.
	OutcomeEventCancelled   SettlementOutcome = "event_cancelled"
)

type SettlementResult struct {
	Outcome       SettlementOutcome
	EventType     string
	PaymentID     string
	TicketID      uuid.UUID
	WaitingListID uuid.UUID
}

type SettlementCommands interface {
	// HandlePaymentEvent authenticates a provider webhook against the raw body and applies
	// a captured payment exactly once. Redelivery of a settled payment is a success.
	HandlePaymentEvent(ctx context.Context, rawBody []byte, signatureHeader string) (*SettlementResult, error)
}

// errTicketExists rolls back a settlement that lost the race to an identical delivery.
var errTicketExists = errs.New("ticket already exists for entry")

type settlementUseCaseImpl struct {
	uow     shared.UnitOfWork
	cache   shared.OrderCache
	clock   clock.Clock
	metrics shared.Metrics
	cfg     config.RazorpayConfig
	// Matches the window in which admission still counts an offer as holding a seat.
	offerGrace time.Duration
	logger     *slog.Logger
}

func NewSettlementCommands(
	uow shared.UnitOfWork,
	cache shared.OrderCache,
	clk clock.Clock,
	metrics shared.Metrics,
	cfg config.Config,
	logger *slog.Logger,
) SettlementCommands {
	return &settlementUseCaseImpl{
		uow:        uow,
		cache:      cache,
		clock:      clk,
		metrics:    metrics,
		cfg:        cfg.Razorpay,
		offerGrace: cfg.Offer.ExpiryGrace,
		logger:     logger,
	}
}

func (uc *settlementUseCaseImpl) HandlePaymentEvent(ctx context.Context, rawBody []byte, signatureHeader string) (*SettlementResult, error) {
	in, evt, err := uc.authenticate(rawBody, signatureHeader)
	if err != nil {
		return nil, err
	}
	if in == nil {
		uc.metrics.SettlementOutcome(string(OutcomeIgnored))
		return &SettlementResult{Outcome: OutcomeIgnored, EventType: evt.Event}, nil
	}

	var result *SettlementResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		result, err = uc.settle(ctx, tx, *in)
		return err
	})
	if errs.Is(err, errTicketExists) {
		result, err = &SettlementResult{
			Outcome:       OutcomeAlreadySettled,
			PaymentID:     in.PaymentID,
			WaitingListID: in.WaitingListID,
		}, nil
	}
	if err != nil {
		uc.logger.Warn("payment settlement rejected",
			"payment_id", in.PaymentID,
			"entry_id", in.WaitingListID,
			"error", err)
		return nil, err
	}
	result.EventType = evt.Event

	if result.Outcome == OutcomeSettled {
		if err := uc.cache.Delete(ctx, in.WaitingListID); err != nil {
			uc.logger.Warn("failed to evict cached order", "entry_id", in.WaitingListID, "error", err)
		}
	}

	uc.metrics.SettlementOutcome(string(result.Outcome))
	uc.logger.Info("payment event handled",
		"outcome", result.Outcome,
		"payment_id", result.PaymentID,
		"entry_id", result.WaitingListID,
		"ticket_id", result.TicketID)
	return result, nil
}

// authenticate returns a nil input for verified events that carry no settlement.
func (uc *settlementUseCaseImpl) authenticate(rawBody []byte, signatureHeader string) (*payment.SettlementInput, *payment.WebhookEvent, error) {
	if uc.cfg.WebhookSecret == "" {
		return nil, nil, ErrWebhookNotConfigured
	}
	if signatureHeader == "" {
		return nil, nil, ErrMissingSignature
	}
	if !signature.Verify([]byte(uc.cfg.WebhookSecret), rawBody, signatureHeader) {
		return nil, nil, ErrBadSignature
	}

	evt, err := payment.ParseWebhook(rawBody)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrMalformedPayload)
	}
	if !evt.IsPaymentCaptured() {
		return nil, evt, nil
	}

	entity, err := evt.Payment()
	if err != nil {
		return nil, nil, errs.Mark(err, ErrMalformedPayload)
	}
	in, err := payment.NewSettlementInput(entity, uc.cfg.Currency)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrMalformedPayload)
	}
	if in.Ref != "" && !signature.VerifyCorrelationRef([]byte(uc.cfg.KeySecret), in.Ref,
		in.EventID.String(), in.UserID.String(), in.WaitingListID.String()) {
		return nil, nil, errs.Wrap(ErrMalformedPayload, "correlation reference does not match notes")
	}
	return &in, evt, nil
}

func (uc *settlementUseCaseImpl) settle(ctx context.Context, tx shared.Tx, in payment.SettlementInput) (*SettlementResult, error) {
	now := uc.clock.Now()

	// Held until commit so cancellation either sees this ticket or is seen by this capture.
	ev, err := tx.Events().ShareLockByID(ctx, in.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	entry, err := tx.Reads().EntryByID(ctx, in.WaitingListID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	if entry.EventID() != in.EventID {
		return nil, ErrOfferNotFound
	}
	if entry.UserID() != in.UserID {
		return nil, ErrUserMismatch
	}

	if entry.Status() == waitinglist.StatusPurchased {
		return uc.resolveSettled(ctx, tx, entry, in, now)
	}
	if ev.IsCancelled() {
		return uc.rejectCancelled(ctx, tx, entry, in, now)
	}
	if entry.Status() != waitinglist.StatusOffered {
		return nil, ErrOfferExpired
	}
	// Past the grace period the seat may already belong to someone else.
	if entry.HasLapsedOffer(now.Add(-uc.offerGrace)) {
		return nil, ErrOfferExpired
	}

	// A capture stamped in the future is clamped so clock skew cannot stretch the window.
	paidAt := now
	if in.PaidAt != nil && !in.PaidAt.After(now) {
		paidAt = *in.PaidAt
	}
	if err := entry.Purchase(paidAt, now); err != nil {
		if errs.Is(err, waitinglist.ErrOfferLapsed) {
			return nil, ErrOfferExpired
		}
		return nil, errs.Wrap(err, "purchase entry")
	}

	ok, err := tx.WaitingList().Transition(ctx, entry, waitinglist.StatusOffered)
	if err != nil {
		return nil, err
	}
	if !ok {
		current, err := tx.Reads().EntryByID(ctx, entry.ID())
		if err != nil {
			return nil, err
		}
		if current.Status() == waitinglist.StatusPurchased {
			return uc.resolveSettled(ctx, tx, current, in, now)
		}
		return nil, ErrOfferExpired
	}

	t, err := ticket.NewTicket(in.EventID, in.UserID, entry.ID(), in.PaymentID, in.Amount, paidAt)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedPayload)
	}
	if err := tx.Tickets().Create(ctx, t); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errTicketExists
		}
		return nil, err
	}
	if err := enqueue(ctx, tx, shared.JobKindUserNotification, shared.TopicTicketPurchased, newTicketMessage(t), now); err != nil {
		return nil, err
	}

	return &SettlementResult{
		Outcome:       OutcomeSettled,
		PaymentID:     in.PaymentID,
		TicketID:      t.ID(),
		WaitingListID: entry.ID(),
	}, nil
}

// rejectCancelled acknowledges a capture for a cancelled event without issuing a ticket.
// The money is not refunded here; operators are alerted.
func (uc *settlementUseCaseImpl) rejectCancelled(ctx context.Context, tx shared.Tx, entry *waitinglist.Entry, in payment.SettlementInput, now time.Time) (*SettlementResult, error) {
	msg := strayCaptureMessage{
		EventID:       in.EventID,
		WaitingListID: entry.ID(),
		PaymentID:     in.PaymentID,
		OrderID:       in.OrderID,
		AmountMinor:   in.Amount.Minor(),
		Currency:      in.Amount.Currency(),
	}
	if err := enqueue(ctx, tx, shared.JobKindOperatorAlert, shared.TopicPaymentAfterCancellation, msg, now); err != nil {
		return nil, err
	}
	uc.logger.Error("capture for a cancelled event",
		"event_id", in.EventID,
		"entry_id", entry.ID(),
		"payment_id", in.PaymentID)
	return &SettlementResult{
		Outcome:       OutcomeEventCancelled,
		PaymentID:     in.PaymentID,
		WaitingListID: entry.ID(),
	}, nil
}

// resolveSettled separates a redelivery of the settling payment from a second capture
// against the same offer. The second capture is not refunded here; operators are alerted.
func (uc *settlementUseCaseImpl) resolveSettled(ctx context.Context, tx shared.Tx, entry *waitinglist.Entry, in payment.SettlementInput, now time.Time) (*SettlementResult, error) {
	existing, err := tx.Reads().TicketByWaitingListID(ctx, entry.ID())
	if err != nil {
		return nil, err
	}
	result := &SettlementResult{
		Outcome:       OutcomeAlreadySettled,
		PaymentID:     in.PaymentID,
		TicketID:      existing.ID(),
		WaitingListID: entry.ID(),
	}
	if existing.PaymentID() == in.PaymentID {
		return result, nil
	}

	msg := duplicateCaptureMessage{
		EventID:          in.EventID,
		WaitingListID:    entry.ID(),
		PaymentID:        in.PaymentID,
		OrderID:          in.OrderID,
		SettledPaymentID: existing.PaymentID(),
		AmountMinor:      in.Amount.Minor(),
		Currency:         in.Amount.Currency(),
	}
	if err := enqueue(ctx, tx, shared.JobKindOperatorAlert, shared.TopicPaymentDuplicateCapture, msg, now); err != nil {
		return nil, err
	}
	uc.logger.Error("second capture for a settled offer",
		"entry_id", entry.ID(),
		"payment_id", in.PaymentID,
		"settled_payment_id", existing.PaymentID())
	result.Outcome = OutcomeDuplicateCapture
	return result, nil
}
