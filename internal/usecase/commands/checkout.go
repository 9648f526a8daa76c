package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/pkg/signature"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

// CheckoutParams is everything the client needs to open the provider's checkout form.
type CheckoutParams struct {
	OrderID       string
	PublicKey     string
	AmountMinor   int64
	Currency      string
	DisplayName   string
	Description   string
	SuccessURL    string
	CancelURL     string
	WaitingListID uuid.UUID
	ExpiresAt     time.Time
}

type CheckoutCommands interface {
	// StartCheckout creates (or reuses) a provider order for the caller's live offer.
	// No local state changes; the offer stays offered until settlement.
	StartCheckout(ctx context.Context, eventID, userID uuid.UUID) (*CheckoutParams, error)
}

type checkoutUseCaseImpl struct {
	uow      shared.UnitOfWork
	provider shared.PaymentProvider
	cache    shared.OrderCache
	clock    clock.Clock
	cfg      config.Config
	logger   *slog.Logger
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	provider shared.PaymentProvider,
	cache shared.OrderCache,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:      uow,
		provider: provider,
		cache:    cache,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
	}
}

func (uc *checkoutUseCaseImpl) StartCheckout(ctx context.Context, eventID, userID uuid.UUID) (*CheckoutParams, error) {
	reads := uc.uow.CommandReads()
	now := uc.clock.Now()

	ev, err := reads.EventByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if ev.IsCancelled() {
		return nil, ErrEventCancelled
	}

	entry, err := reads.LiveEntry(ctx, eventID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoValidOffer
		}
		return nil, err
	}
	if !entry.HasLiveOffer(now) {
		return nil, ErrNoValidOffer
	}

	seller, err := reads.ProfileByID(ctx, ev.SellerID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSellerNotOnboarded
		}
		return nil, err
	}
	if !seller.IsOnboarded() {
		return nil, ErrSellerNotOnboarded
	}

	order := uc.cachedOrder(ctx, entry.ID())
	if order == nil {
		order, err = uc.provider.CreateOrder(ctx, uc.orderRequest(ev, entry, *seller.AccountID()))
		if err != nil {
			uc.logger.Error("failed to create payment order",
				"event_id", eventID,
				"user_id", userID,
				"entry_id", entry.ID(),
				"error", err)
			return nil, errs.Wrap(err, "create payment order")
		}
		ttl := entry.OfferExpiresAt().Sub(now)
		if err := uc.cache.Put(ctx, entry.ID(), order, ttl); err != nil {
			uc.logger.Warn("failed to cache payment order", "entry_id", entry.ID(), "order_id", order.ID, "error", err)
		}
		uc.logger.Info("payment order created", "event_id", eventID, "entry_id", entry.ID(), "order_id", order.ID)
	}

	return &CheckoutParams{
		OrderID:       order.ID,
		PublicKey:     uc.provider.PublicKey(),
		AmountMinor:   order.AmountMinor,
		Currency:      order.Currency,
		DisplayName:   ev.Name(),
		Description:   ev.Description(),
		SuccessURL:    uc.cfg.Server.BaseURL + "/tickets/purchase-success?order_id=" + url.QueryEscape(order.ID),
		CancelURL:     uc.cfg.Server.BaseURL + "/event/" + eventID.String(),
		WaitingListID: entry.ID(),
		ExpiresAt:     *entry.OfferExpiresAt(),
	}, nil
}

// cachedOrder treats cache failures as a miss; a duplicate order is tolerated, a failed checkout is not.
func (uc *checkoutUseCaseImpl) cachedOrder(ctx context.Context, entryID uuid.UUID) *shared.Order {
	order, err := uc.cache.Get(ctx, entryID)
	if err != nil {
		uc.logger.Warn("order cache lookup failed", "entry_id", entryID, "error", err)
		return nil
	}
	return order
}

func (uc *checkoutUseCaseImpl) orderRequest(ev *event.Event, entry *waitinglist.Entry, accountID string) shared.OrderRequest {
	eventID, userID, entryID := ev.ID().String(), entry.UserID().String(), entry.ID().String()
	return shared.OrderRequest{
		AmountMinor: ev.Price().Minor(),
		Currency:    ev.Price().Currency(),
		Receipt:     "rcpt_" + strings.ReplaceAll(entryID, "-", ""),
		Notes: map[string]string{
			"eventId":       eventID,
			"userId":        userID,
			"waitingListId": entryID,
			"ref":           signature.CorrelationRef([]byte(uc.cfg.Razorpay.KeySecret), eventID, userID, entryID),
		},
		AccountID: accountID,
	}
}
