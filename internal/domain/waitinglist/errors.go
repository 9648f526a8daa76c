package waitinglist

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid waiting list status")
	ErrIllegalTransition  = errors.New("illegal waiting list transition")
	ErrOfferWindowInvalid = errors.New("offer window must be positive")
	ErrOfferLapsed        = errors.New("offer has lapsed")
	ErrOfferStillLive     = errors.New("offer has not reached its expiry")
)
