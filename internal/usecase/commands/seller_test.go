//go:build unit

package commands_test

import (
	"context"
	"testing"

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

func newSellerUseCase(t *testing.T) (*memstore.Store, *sharedmock.MockPaymentProvider, commands.SellerCommands) {
	t.Helper()
	store := memstore.New()
	provider := sharedmock.NewMockPaymentProvider(gomock.NewController(t))
	return store, provider, commands.NewSellerCommands(store, provider, testutil.DiscardLogger())
}

func TestEnsureContact(t *testing.T) {
	ctx := context.Background()
	input := commands.ContactInput{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91 98765-43210"}

	t.Run("success: creates a vendor contact for a seller", func(t *testing.T) {
		store, provider, uc := newSellerUseCase(t)
		seller := builder.NewProfileBuilder().AsSeller().BuildDomain()
		store.AddProfile(seller)

		provider.EXPECT().CreateContact(gomock.Any(), shared.ContactRequest{
			Name:        "Asha Rao",
			Email:       "asha@example.com",
			Phone:       "+919876543210",
			Type:        "vendor",
			ReferenceID: seller.ID().String(),
		}).Return(&shared.Contact{ID: "cont_123"}, nil)

		id, err := uc.EnsureContact(ctx, seller.ID(), input)
		require.NoError(t, err)
		assert.Equal(t, "cont_123", id)
		require.NotNil(t, store.Profile(seller.ID()).ContactID())
		assert.Equal(t, "cont_123", *store.Profile(seller.ID()).ContactID())
	})

	t.Run("success: existing contact is returned without calling the provider", func(t *testing.T) {
		store, provider, uc := newSellerUseCase(t)
		buyer := builder.NewProfileBuilder().WithContact("cont_existing").BuildDomain()
		store.AddProfile(buyer)
		provider.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)

		id, err := uc.EnsureContact(ctx, buyer.ID(), input)
		require.NoError(t, err)
		assert.Equal(t, "cont_existing", id)
	})

	testCases := []struct {
		name    string
		input   commands.ContactInput
		userID  *uuid.UUID
		wantErr error
	}{
		{name: "error: invalid email", input: commands.ContactInput{Name: "Asha", Email: "not-an-email"}, wantErr: commands.ErrInvalidProfile},
		{name: "error: invalid phone", input: commands.ContactInput{Name: "Asha", Email: "asha@example.com", Phone: "12"}, wantErr: commands.ErrInvalidProfile},
		{name: "error: blank name", input: commands.ContactInput{Name: "  ", Email: "asha@example.com"}, wantErr: commands.ErrInvalidProfile},
		{name: "error: unknown user", input: input, userID: &uuid.Nil, wantErr: commands.ErrUserNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, provider, uc := newSellerUseCase(t)
			p := builder.NewProfileBuilder().BuildDomain()
			store.AddProfile(p)
			provider.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)

			userID := p.ID()
			if tc.userID != nil {
				userID = *tc.userID
			}
			_, err := uc.EnsureContact(ctx, userID, tc.input)
			testutil.AssertErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("error: provider rejects the contact", func(t *testing.T) {
		store, provider, uc := newSellerUseCase(t)
		p := builder.NewProfileBuilder().BuildDomain()
		store.AddProfile(p)
		provider.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(nil, shared.ErrProviderRejected)

		_, err := uc.EnsureContact(ctx, p.ID(), input)
		testutil.AssertErrorIs(t, err, shared.ErrProviderRejected)
		assert.Nil(t, store.Profile(p.ID()).ContactID())
	})
}

func TestLinkAccount(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		profile   *builder.ProfileBuilder
		accountID string
		wantErr   error
	}{
		{name: "success: seller links an account", profile: builder.NewProfileBuilder().AsSeller(), accountID: "acc_ABCdef123"},
		{name: "success: admin links an account", profile: builder.NewProfileBuilder().AsAdmin(), accountID: "acc_ABCdef123"},
		{name: "error: buyers cannot link accounts", profile: builder.NewProfileBuilder(), accountID: "acc_ABCdef123", wantErr: commands.ErrNotSeller},
		{name: "error: malformed account id", profile: builder.NewProfileBuilder().AsSeller(), accountID: "acct-1", wantErr: commands.ErrInvalidProfile},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, _, uc := newSellerUseCase(t)
			p := tc.profile.BuildDomain()
			store.AddProfile(p)

			err := uc.LinkAccount(ctx, p.ID(), tc.accountID)
			if tc.wantErr != nil {
				testutil.AssertErrorIs(t, err, tc.wantErr)
				assert.False(t, store.Profile(p.ID()).IsOnboarded())
				return
			}
			require.NoError(t, err)
			assert.True(t, store.Profile(p.ID()).IsOnboarded())
		})
	}
}
