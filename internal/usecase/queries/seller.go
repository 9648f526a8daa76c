package queries

//go:generate mockgen -source=seller.go -destination=../../../tests/mock/queries/seller.go -package=queriesmock

import (
	"context"
	"log/slog"
	"strings"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrNotSeller    = errs.New("user is not a seller")
)

type ProfileReadStore interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*user.Profile, error)
}

type SellerQueries interface {
	Account(ctx context.Context, userID uuid.UUID) (*SellerAccountView, error)
}

type sellerQueriesImpl struct {
	readStore    ProfileReadStore
	provider     shared.PaymentProvider
	dashboardURL string
	logger       *slog.Logger
}

func NewSellerQueries(
	readStore ProfileReadStore,
	provider shared.PaymentProvider,
	cfg config.Config,
	logger *slog.Logger,
) SellerQueries {
	return &sellerQueriesImpl{
		readStore:    readStore,
		provider:     provider,
		dashboardURL: strings.TrimRight(cfg.Razorpay.DashboardURL, "/"),
		logger:       logger,
	}
}

// Account reports onboarding progress. The provider has no programmatic onboarding
// links, so the view points the seller at the partner dashboard instead.
// A linked account also carries the provider's live status; when the provider
// cannot be reached the view is returned without it.
func (q *sellerQueriesImpl) Account(ctx context.Context, userID uuid.UUID) (*SellerAccountView, error) {
	profile, err := q.readStore.FindProfileByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if profile.Role() == user.RoleBuyer {
		return nil, ErrNotSeller
	}

	view := &SellerAccountView{
		UserID:        profile.ID(),
		ContactID:     profile.ContactID(),
		AccountID:     profile.AccountID(),
		Onboarded:     profile.IsOnboarded(),
		OnboardingURL: q.dashboardURL + "/app/partners/onboarding",
	}
	if accountID := profile.AccountID(); accountID != nil {
		view.OnboardingURL = q.dashboardURL + "/app/partners/onboarding/" + *accountID
		login := q.dashboardURL + "/merchant/" + *accountID + "/login"
		view.DashboardURL = &login

		status, err := q.provider.AccountStatus(ctx, *accountID)
		if err != nil {
			q.logger.Warn("failed to fetch seller account status",
				"user_id", profile.ID(),
				"account_id", *accountID,
				"error", err.Error())
		} else {
			view.Status = &SellerAccountStatusView{
				Active:              status.Active,
				RequiresInformation: !status.Active,
				KYCStatus:           status.KYCStatus,
				ChargesEnabled:      status.ChargesEnabled,
				PayoutsEnabled:      status.PayoutsEnabled,
				CurrentlyDue:        status.CurrentlyDue,
				EventuallyDue:       status.EventuallyDue,
			}
		}
	}
	return view, nil
}
