//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/pkg/config"
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

type checkoutFixture struct {
	store    *memstore.Store
	provider *sharedmock.MockPaymentProvider
	cache    *sharedmock.MockOrderCache
	cfg      config.Config
	useCase  commands.CheckoutCommands
	eventID  uuid.UUID
	userID   uuid.UUID
	entryID  uuid.UUID
}

func newCheckoutFixture(t *testing.T, onboarded bool) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	seller := builder.NewProfileBuilder().AsSeller()
	if onboarded {
		seller.Onboarded("acc_SellerABC123")
	}
	ev := builder.NewEventBuilder().WithSeller(seller.ID).BuildDomain()
	entry := builder.NewEntryBuilder().ForEvent(ev.ID()).Offered(t0, 10*time.Minute).BuildDomain()

	store := memstore.New()
	store.AddProfile(seller.BuildDomain())
	store.AddEvent(ev)
	store.AddEntry(entry)

	f := &checkoutFixture{
		store:    store,
		provider: sharedmock.NewMockPaymentProvider(ctrl),
		cache:    sharedmock.NewMockOrderCache(ctrl),
		cfg:      config.NewTestConfig(),
		eventID:  ev.ID(),
		userID:   entry.UserID(),
		entryID:  entry.ID(),
	}
	f.useCase = commands.NewCheckoutCommands(store, f.provider, f.cache,
		clock.NewMockClock(t0.Add(time.Minute)), f.cfg, testutil.DiscardLogger())
	return f
}

func TestStartCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("success: creates an order tagged with correlation notes", func(t *testing.T) {
		f := newCheckoutFixture(t, true)
		order := &shared.Order{ID: "order_abc", AmountMinor: 500, Currency: "INR"}

		f.cache.EXPECT().Get(gomock.Any(), f.entryID).Return(nil, nil)
		f.provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req shared.OrderRequest) (*shared.Order, error) {
				assert.Equal(t, int64(500), req.AmountMinor)
				assert.Equal(t, "INR", req.Currency)
				assert.Equal(t, "acc_SellerABC123", req.AccountID)
				assert.Equal(t, f.eventID.String(), req.Notes["eventId"])
				assert.Equal(t, f.userID.String(), req.Notes["userId"])
				assert.Equal(t, f.entryID.String(), req.Notes["waitingListId"])
				assert.True(t, signature.VerifyCorrelationRef([]byte(f.cfg.Razorpay.KeySecret), req.Notes["ref"],
					f.eventID.String(), f.userID.String(), f.entryID.String()))
				assert.LessOrEqual(t, len(req.Receipt), 40)
				return order, nil
			})
		f.cache.EXPECT().Put(gomock.Any(), f.entryID, order, 9*time.Minute).Return(nil)
		f.provider.EXPECT().PublicKey().Return("rzp_test_key")

		params, err := f.useCase.StartCheckout(ctx, f.eventID, f.userID)
		require.NoError(t, err)
		assert.Equal(t, "order_abc", params.OrderID)
		assert.Equal(t, "rzp_test_key", params.PublicKey)
		assert.Equal(t, "Indie Night", params.DisplayName)
		assert.Equal(t, f.cfg.Server.BaseURL+"/tickets/purchase-success?order_id=order_abc", params.SuccessURL)
		assert.Equal(t, f.cfg.Server.BaseURL+"/event/"+f.eventID.String(), params.CancelURL)
		assert.Equal(t, t0.Add(10*time.Minute), params.ExpiresAt)
	})

	t.Run("success: reuses the cached order for the same offer", func(t *testing.T) {
		f := newCheckoutFixture(t, true)
		cached := &shared.Order{ID: "order_cached", AmountMinor: 500, Currency: "INR"}

		f.cache.EXPECT().Get(gomock.Any(), f.entryID).Return(cached, nil)
		f.provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
		f.provider.EXPECT().PublicKey().Return("rzp_test_key")

		params, err := f.useCase.StartCheckout(ctx, f.eventID, f.userID)
		require.NoError(t, err)
		assert.Equal(t, "order_cached", params.OrderID)
	})

	t.Run("success: cache failures fall through to the provider", func(t *testing.T) {
		f := newCheckoutFixture(t, true)
		order := &shared.Order{ID: "order_new", AmountMinor: 500, Currency: "INR"}

		f.cache.EXPECT().Get(gomock.Any(), f.entryID).Return(nil, errors.New("redis down"))
		f.provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(order, nil)
		f.cache.EXPECT().Put(gomock.Any(), f.entryID, order, gomock.Any()).Return(errors.New("redis down"))
		f.provider.EXPECT().PublicKey().Return("rzp_test_key")

		params, err := f.useCase.StartCheckout(ctx, f.eventID, f.userID)
		require.NoError(t, err)
		assert.Equal(t, "order_new", params.OrderID)
	})

	t.Run("error: provider unavailable", func(t *testing.T) {
		f := newCheckoutFixture(t, true)

		f.cache.EXPECT().Get(gomock.Any(), f.entryID).Return(nil, nil)
		f.provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, shared.ErrProviderUnavailable)

		_, err := f.useCase.StartCheckout(ctx, f.eventID, f.userID)
		testutil.AssertErrorIs(t, err, shared.ErrProviderUnavailable)
	})

	testCases := []struct {
		name      string
		onboarded bool
		userID    func(f *checkoutFixture) uuid.UUID
		eventID   func(f *checkoutFixture) uuid.UUID
		wantErr   error
	}{
		{
			name:      "error: seller not onboarded",
			onboarded: false,
			wantErr:   commands.ErrSellerNotOnboarded,
		},
		{
			name:      "error: caller holds no offer",
			onboarded: true,
			userID:    func(*checkoutFixture) uuid.UUID { return uuid.New() },
			wantErr:   commands.ErrNoValidOffer,
		},
		{
			name:      "error: unknown event",
			onboarded: true,
			eventID:   func(*checkoutFixture) uuid.UUID { return uuid.New() },
			wantErr:   commands.ErrEventNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCheckoutFixture(t, tc.onboarded)
			eventID, userID := f.eventID, f.userID
			if tc.eventID != nil {
				eventID = tc.eventID(f)
			}
			if tc.userID != nil {
				userID = tc.userID(f)
			}

			_, err := f.useCase.StartCheckout(ctx, eventID, userID)
			testutil.AssertErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("error: offer window has closed", func(t *testing.T) {
		f := newCheckoutFixture(t, true)
		late := commands.NewCheckoutCommands(f.store, f.provider, f.cache,
			clock.NewMockClock(t0.Add(10*time.Minute)), f.cfg, testutil.DiscardLogger())

		_, err := late.StartCheckout(ctx, f.eventID, f.userID)
		testutil.AssertErrorIs(t, err, commands.ErrNoValidOffer)
	})
}
