package commands

import (
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"
)

var (
	ErrEventNotFound      = errs.New("event not found")
	ErrEventCancelled     = errs.New("event is cancelled")
	ErrNotEventOwner      = errs.New("caller does not own the event")
	ErrAlreadyInQueue     = errs.New("already in the waiting list")
	ErrNotInQueue         = errs.New("not in the waiting list")
	ErrAlreadyOffered     = errs.New("an offer is already held")
	ErrSoldOut            = errs.New("no tickets available")
	ErrQueueAhead         = errs.New("earlier entrants are still waiting")
	ErrConcurrentUpdate   = errs.New("entry changed concurrently")
	ErrNoValidOffer       = errs.New("no valid ticket offer")
	ErrSellerNotOnboarded = errs.New("seller is not onboarded for payments")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidProfile     = errs.New("invalid profile data")
	ErrNotSeller          = errs.New("only sellers can link a payout account")

	// Webhook settlement
	ErrWebhookNotConfigured = errs.New("webhook secret is not configured")
	ErrMissingSignature     = errs.New("missing webhook signature")
	ErrBadSignature         = errs.New("webhook signature mismatch")
	ErrMalformedPayload     = errs.New("malformed webhook payload")
	ErrOfferNotFound        = errs.New("offer not found")
	ErrOfferExpired         = errs.New("offer expired before payment")
	ErrUserMismatch         = errs.New("payment user does not hold the offer")
)

var failureKinds = errs.Classifier{
	{Err: ErrBadSignature, Kind: errs.KindAuthentication},
	{Err: ErrMissingSignature, Kind: errs.KindValidation},
	{Err: ErrMalformedPayload, Kind: errs.KindValidation},
	{Err: ErrOfferNotFound, Kind: errs.KindValidation},
	{Err: ErrOfferExpired, Kind: errs.KindValidation},
	{Err: ErrUserMismatch, Kind: errs.KindValidation},
	{Err: ErrInvalidProfile, Kind: errs.KindValidation},
	{Err: ErrEventNotFound, Kind: errs.KindValidation},
	{Err: ErrUserNotFound, Kind: errs.KindValidation},
	{Err: ErrNotSeller, Kind: errs.KindValidation},
	{Err: ErrNotEventOwner, Kind: errs.KindValidation},
	{Err: ErrNoValidOffer, Kind: errs.KindValidation},
	{Err: ErrSellerNotOnboarded, Kind: errs.KindValidation},
	{Err: ErrEventCancelled, Kind: errs.KindConflict},
	{Err: ErrAlreadyInQueue, Kind: errs.KindConflict},
	{Err: ErrNotInQueue, Kind: errs.KindConflict},
	{Err: ErrAlreadyOffered, Kind: errs.KindConflict},
	{Err: ErrSoldOut, Kind: errs.KindConflict},
	{Err: ErrQueueAhead, Kind: errs.KindConflict},
	{Err: ErrConcurrentUpdate, Kind: errs.KindConflict},
	{Err: shared.ErrProviderUnavailable, Kind: errs.KindUpstream},
	{Err: shared.ErrProviderRejected, Kind: errs.KindUpstream},
}

// FailureKind classifies an error returned by any command. Unknown errors are internal.
func FailureKind(err error) errs.Kind {
	return failureKinds.KindOf(err)
}
