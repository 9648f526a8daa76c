//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/pkg/signature"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/shared"
	"ticket-marketplace/tests/common/builder"
	"ticket-marketplace/tests/common/memstore"
	"ticket-marketplace/tests/common/testutil"
	sharedmock "ticket-marketplace/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type refundFixture struct {
	store    *memstore.Store
	provider *sharedmock.MockPaymentProvider
	useCase  commands.RefundCommands
	sellerID uuid.UUID
	eventID  uuid.UUID
	tickets  []*ticket.Ticket
}

func newRefundFixture(t *testing.T, n int) *refundFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	ev := builder.NewEventBuilder().WithTickets(n + 1).BuildDomain()
	store := memstore.New()
	store.AddEvent(ev)

	f := &refundFixture{
		store:    store,
		provider: sharedmock.NewMockPaymentProvider(ctrl),
		sellerID: ev.SellerID(),
		eventID:  ev.ID(),
	}
	for i := range n {
		tk := builder.NewTicketBuilder().ForEvent(ev.ID()).
			With(func(b *builder.TicketBuilder) { b.PurchasedAt = b.PurchasedAt.Add(time.Duration(i) * time.Second) }).
			BuildDomain()
		store.AddTicket(tk)
		f.tickets = append(f.tickets, tk)
	}

	metrics := sharedmock.NewMockMetrics(ctrl)
	metrics.EXPECT().RefundResult(gomock.Any()).AnyTimes()

	f.useCase = commands.NewRefundCommands(store, f.provider, clock.NewMockClock(t0), metrics,
		config.NewTestConfig(), testutil.DiscardLogger())
	return f
}

// refundsFailingFor answers refund calls, failing the given payments.
func (f *refundFixture) refundsFailingFor(failing ...string) {
	fail := map[string]bool{}
	for _, p := range failing {
		fail[p] = true
	}
	f.provider.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req shared.RefundRequest) (*shared.Refund, error) {
			if fail[req.PaymentID] {
				return nil, errs.Mark(errs.New("provider returned 502"), shared.ErrProviderUnavailable)
			}
			return &shared.Refund{ID: "rfnd_" + req.PaymentID, PaymentID: req.PaymentID, Status: "processed"}, nil
		}).AnyTimes()
}

func TestCancelEventAndRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("success: all refunds succeed and the event is cancelled", func(t *testing.T) {
		f := newRefundFixture(t, 3)
		f.refundsFailingFor()
		queued := builder.NewEntryBuilder().ForEvent(f.eventID).BuildDomain()
		f.store.AddEntry(queued)

		report, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, f.sellerID, user.RoleSeller)
		require.NoError(t, err)
		assert.True(t, report.Success)
		assert.True(t, report.EventCancelled)
		assert.Len(t, report.Refunded, 3)
		assert.Empty(t, report.Failures)

		for _, tk := range f.store.Tickets(f.eventID) {
			assert.Equal(t, ticket.StatusRefunded, tk.Status())
		}
		assert.True(t, f.store.Event(f.eventID).IsCancelled())
		assert.Equal(t, waitinglist.StatusCancelled, f.store.Entry(queued.ID()).Status())
		assert.Len(t, f.store.Jobs(shared.TopicTicketRefunded), 3)
		assert.Len(t, f.store.Jobs(shared.TopicEventCancelled), 1)
	})

	t.Run("success: partial failure leaves the event active and lists the failures", func(t *testing.T) {
		f := newRefundFixture(t, 4)
		failing := []string{f.tickets[1].PaymentID(), f.tickets[3].PaymentID()}
		f.refundsFailingFor(failing...)

		report, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, f.sellerID, user.RoleSeller)
		require.NoError(t, err)
		assert.False(t, report.Success)
		assert.False(t, report.EventCancelled)
		assert.Len(t, report.Refunded, 2)

		var failedIDs []uuid.UUID
		for _, fl := range report.Failures {
			failedIDs = append(failedIDs, fl.TicketID)
		}
		assert.ElementsMatch(t, []uuid.UUID{f.tickets[1].ID(), f.tickets[3].ID()}, failedIDs)
		assert.False(t, f.store.Event(f.eventID).IsCancelled())

		var failedAttempts int
		for _, a := range f.store.RefundAttempts() {
			if a.Status == shared.RefundAttemptFailed {
				failedAttempts++
			}
		}
		assert.Equal(t, 2, failedAttempts)
	})

	t.Run("success: retry after failures only refunds what is left", func(t *testing.T) {
		f := newRefundFixture(t, 3)
		f.provider.EXPECT().Refund(gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrProviderUnavailable).Times(1)
		f.provider.EXPECT().Refund(gomock.Any(), gomock.Any()).
			Return(&shared.Refund{ID: "rfnd_ok"}, nil).Times(2)

		first, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, f.sellerID, user.RoleSeller)
		require.NoError(t, err)
		require.Len(t, first.Failures, 1)

		f.provider.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req shared.RefundRequest) (*shared.Refund, error) {
				assert.Equal(t, first.Failures[0].TicketID.String(), req.IdempotencyKey)
				return &shared.Refund{ID: "rfnd_retry"}, nil
			}).Times(1)

		second, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, f.sellerID, user.RoleSeller)
		require.NoError(t, err)
		assert.True(t, second.Success)
		assert.Equal(t, []uuid.UUID{first.Failures[0].TicketID}, second.Refunded)
		assert.Len(t, f.store.Jobs(shared.TopicEventCancelled), 1)
	})

	t.Run("success: capture settled during the fan-out keeps the event active", func(t *testing.T) {
		f := newRefundFixture(t, 1)
		live := builder.NewEntryBuilder().ForEvent(f.eventID).Offered(t0, 10*time.Minute).BuildDomain()
		f.store.AddEntry(live)

		ctrl := gomock.NewController(t)
		cache := sharedmock.NewMockOrderCache(ctrl)
		cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		metrics := sharedmock.NewMockMetrics(ctrl)
		metrics.EXPECT().SettlementOutcome(gomock.Any()).AnyTimes()
		cfg := config.NewTestConfig()
		settlement := commands.NewSettlementCommands(f.store, cache, clock.NewMockClock(t0.Add(time.Minute)),
			metrics, cfg, testutil.DiscardLogger())

		late := capture{
			PaymentID: "pay_late",
			EventID:   f.eventID,
			UserID:    live.UserID(),
			EntryID:   live.ID(),
			Amount:    500,
			CreatedAt: t0.Add(time.Minute),
		}
		delivered := false
		f.provider.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req shared.RefundRequest) (*shared.Refund, error) {
				if !delivered {
					delivered = true
					body := late.body(t)
					result, err := settlement.HandlePaymentEvent(context.Background(), body,
						signature.Sign([]byte(cfg.Razorpay.WebhookSecret), body))
					if assert.NoError(t, err) {
						assert.Equal(t, commands.OutcomeSettled, result.Outcome)
					}
				}
				return &shared.Refund{ID: "rfnd_" + req.PaymentID}, nil
			}).AnyTimes()

		report, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, f.sellerID, user.RoleSeller)
		require.NoError(t, err)
		assert.False(t, report.Success)
		assert.False(t, report.EventCancelled)
		assert.Equal(t, []uuid.UUID{f.tickets[0].ID()}, report.Refunded)
		require.Len(t, report.Failures, 1)
		lateTicket := report.Failures[0].TicketID
		assert.False(t, f.store.Event(f.eventID).IsCancelled())
		assert.Empty(t, f.store.Jobs(shared.TopicEventCancelled))

		retry, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, f.sellerID, user.RoleSeller)
		require.NoError(t, err)
		assert.True(t, retry.Success)
		assert.Equal(t, []uuid.UUID{lateTicket}, retry.Refunded)
		for _, tk := range f.store.Tickets(f.eventID) {
			assert.Equal(t, ticket.StatusRefunded, tk.Status())
		}
	})

	t.Run("success: event with no tickets is cancelled", func(t *testing.T) {
		f := newRefundFixture(t, 0)

		report, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, report.Success)
		assert.True(t, f.store.Event(f.eventID).IsCancelled())
	})

	t.Run("error: ticket update failure is reported as a failure", func(t *testing.T) {
		f := newRefundFixture(t, 1)
		f.refundsFailingFor()
		f.store.FailTransaction(1, errs.ErrDatabaseOperationFailed)

		report, err := f.useCase.CancelEventAndRefund(ctx, f.eventID, f.sellerID, user.RoleSeller)
		require.NoError(t, err)
		assert.False(t, report.Success)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, ticket.StatusValid, f.store.Tickets(f.eventID)[0].Status())
	})

	testCases := []struct {
		name    string
		setup   func(f *refundFixture) (eventID, actorID uuid.UUID, role user.Role)
		wantErr error
	}{
		{
			name: "error: caller does not own the event",
			setup: func(f *refundFixture) (uuid.UUID, uuid.UUID, user.Role) {
				return f.eventID, uuid.New(), user.RoleSeller
			},
			wantErr: commands.ErrNotEventOwner,
		},
		{
			name: "error: unknown event",
			setup: func(f *refundFixture) (uuid.UUID, uuid.UUID, user.Role) {
				return uuid.New(), f.sellerID, user.RoleSeller
			},
			wantErr: commands.ErrEventNotFound,
		},
		{
			name: "error: already cancelled",
			setup: func(f *refundFixture) (uuid.UUID, uuid.UUID, user.Role) {
				ev := builder.NewEventBuilder().WithSeller(f.sellerID).AsCancelled(t0).BuildDomain()
				f.store.AddEvent(ev)
				return ev.ID(), f.sellerID, user.RoleSeller
			},
			wantErr: commands.ErrEventCancelled,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRefundFixture(t, 1)
			eventID, actorID, role := tc.setup(f)

			_, err := f.useCase.CancelEventAndRefund(ctx, eventID, actorID, role)
			testutil.AssertErrorIs(t, err, tc.wantErr)
			assert.Equal(t, ticket.StatusValid, f.store.Tickets(f.eventID)[0].Status())
		})
	}
}
