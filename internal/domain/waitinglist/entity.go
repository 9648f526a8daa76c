package waitinglist

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a user's place in an event's waiting list. Entries are never deleted;
// terminal entries remain as an audit trail.
type Entry struct {
	id             uuid.UUID
	eventID        uuid.UUID
	userID         uuid.UUID
	status         Status
	offeredAt      *time.Time
	offerExpiresAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewEntry(eventID, userID uuid.UUID, now time.Time) *Entry {
	return &Entry{
		id:        uuid.New(),
		eventID:   eventID,
		userID:    userID,
		status:    StatusWaiting,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructEntry(
	id, eventID, userID uuid.UUID,
	status Status,
	offeredAt, offerExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Entry {
	return &Entry{
		id:             id,
		eventID:        eventID,
		userID:         userID,
		status:         status,
		offeredAt:      offeredAt,
		offerExpiresAt: offerExpiresAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Offer grants a time-boxed reservation. The expiry is exactly window after now.
func (e *Entry) Offer(now time.Time, window time.Duration) error {
	if window <= 0 {
		return ErrOfferWindowInvalid
	}
	if err := Transition(e.status, StatusOffered); err != nil {
		return err
	}
	expiresAt := now.Add(window)
	e.status = StatusOffered
	e.offeredAt = &now
	e.offerExpiresAt = &expiresAt
	e.updatedAt = now
	return nil
}

// Purchase settles the offer. capturedAt is when the payment was captured and must
// fall strictly before the offer expiry.
func (e *Entry) Purchase(capturedAt, now time.Time) error {
	if err := Transition(e.status, StatusPurchased); err != nil {
		return err
	}
	if !e.isOpenAt(capturedAt) {
		return ErrOfferLapsed
	}
	e.status = StatusPurchased
	e.updatedAt = now
	return nil
}

// Expire reclaims an offer whose window has elapsed. The expiry timestamp is kept.
func (e *Entry) Expire(now time.Time) error {
	if err := Transition(e.status, StatusExpired); err != nil {
		return err
	}
	if e.isOpenAt(now) {
		return ErrOfferStillLive
	}
	e.status = StatusExpired
	e.updatedAt = now
	return nil
}

func (e *Entry) Cancel(now time.Time) error {
	if err := Transition(e.status, StatusCancelled); err != nil {
		return err
	}
	e.status = StatusCancelled
	e.updatedAt = now
	return nil
}

// HasLiveOffer reports whether the entry is offered and the window is still open at now.
func (e *Entry) HasLiveOffer(now time.Time) bool {
	return e.status == StatusOffered && e.isOpenAt(now)
}

// HasLapsedOffer reports an offered entry whose window closed but which the sweep has not reclaimed yet.
func (e *Entry) HasLapsedOffer(now time.Time) bool {
	return e.status == StatusOffered && !e.isOpenAt(now)
}

func (e *Entry) isOpenAt(t time.Time) bool {
	return e.offerExpiresAt != nil && t.Before(*e.offerExpiresAt)
}

func (e *Entry) ID() uuid.UUID              { return e.id }
func (e *Entry) EventID() uuid.UUID         { return e.eventID }
func (e *Entry) UserID() uuid.UUID          { return e.userID }
func (e *Entry) Status() Status             { return e.status }
func (e *Entry) OfferedAt() *time.Time      { return e.offeredAt }
func (e *Entry) OfferExpiresAt() *time.Time { return e.offerExpiresAt }
func (e *Entry) CreatedAt() time.Time       { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time       { return e.updatedAt }
