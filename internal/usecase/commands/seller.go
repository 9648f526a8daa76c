package commands

//go:generate mockgen -source=seller.go -destination=../../../tests/mock/commands/seller.go -package=commandsmock

import (
	"context"
	"log/slog"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContactInput struct {
	Name  string
	Email string
	Phone string
}

type SellerCommands interface {
	// EnsureContact returns the user's provider contact, creating it on first use.
	EnsureContact(ctx context.Context, userID uuid.UUID, in ContactInput) (string, error)
	// LinkAccount stores the seller's payout sub-account once onboarding completes.
	LinkAccount(ctx context.Context, userID uuid.UUID, accountID string) error
}

type sellerUseCaseImpl struct {
	uow      shared.UnitOfWork
	provider shared.PaymentProvider
	logger   *slog.Logger
}

func NewSellerCommands(uow shared.UnitOfWork, provider shared.PaymentProvider, logger *slog.Logger) SellerCommands {
	return &sellerUseCaseImpl{
		uow:      uow,
		provider: provider,
		logger:   logger,
	}
}

func (uc *sellerUseCaseImpl) EnsureContact(ctx context.Context, userID uuid.UUID, in ContactInput) (string, error) {
	profile, err := uc.profile(ctx, userID)
	if err != nil {
		return "", err
	}
	if id := profile.ContactID(); id != nil {
		return *id, nil
	}

	email, err := user.NewEmail(in.Email)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidProfile)
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidProfile)
	}
	if _, err := user.NewProfile(userID, in.Name, email, phone, profile.Role()); err != nil {
		return "", errs.Mark(err, ErrInvalidProfile)
	}

	contact, err := uc.provider.CreateContact(ctx, shared.ContactRequest{
		Name:        in.Name,
		Email:       email.Value(),
		Phone:       phone.Value(),
		Type:        string(profile.Role().ContactType()),
		ReferenceID: userID.String(),
	})
	if err != nil {
		return "", errs.Wrap(err, "create provider contact")
	}

	var stored string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Users().SaveContact(ctx, userID, contact.ID)
		if err != nil {
			return err
		}
		if ok {
			stored = contact.ID
			return nil
		}
		// Another request attached a contact first; keep theirs.
		current, err := tx.Reads().ProfileByID(ctx, userID)
		if err != nil {
			return err
		}
		if current.ContactID() == nil {
			return errs.New("contact id missing after conflicting save")
		}
		stored = *current.ContactID()
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.logger.Info("provider contact linked", "user_id", userID, "contact_id", stored)
	return stored, nil
}

func (uc *sellerUseCaseImpl) LinkAccount(ctx context.Context, userID uuid.UUID, accountID string) error {
	profile, err := uc.profile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.Role() == user.RoleBuyer {
		return ErrNotSeller
	}
	if err := profile.LinkAccount(accountID); err != nil {
		return errs.Mark(err, ErrInvalidProfile)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SaveAccount(ctx, userID, accountID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	uc.logger.Info("payout account linked", "user_id", userID, "account_id", accountID)
	return nil
}

func (uc *sellerUseCaseImpl) profile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	p, err := uc.uow.CommandReads().ProfileByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return p, nil
}
