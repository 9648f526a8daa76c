package response

import (
	"time"

	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EntryResponse struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"event_id"`
	UserID         uuid.UUID  `json:"user_id"`
	Status         string     `json:"status"`
	OfferedAt      *time.Time `json:"offered_at,omitempty"`
	OfferExpiresAt *time.Time `json:"offer_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromEntry(e *waitinglist.Entry) *EntryResponse {
	return &EntryResponse{
		ID:             e.ID(),
		EventID:        e.EventID(),
		UserID:         e.UserID(),
		Status:         e.Status().String(),
		OfferedAt:      e.OfferedAt(),
		OfferExpiresAt: e.OfferExpiresAt(),
		CreatedAt:      e.CreatedAt(),
	}
}

type QueuePositionResponse struct {
	EntryID        uuid.UUID  `json:"entry_id"`
	Status         string     `json:"status"`
	Position       *int       `json:"position,omitempty"`
	WaitingTotal   int        `json:"waiting_total"`
	OfferExpiresAt *time.Time `json:"offer_expires_at,omitempty"`
}

func FromQueuePosition(v *queries.QueuePositionView) (*QueuePositionResponse, error) {
	var res QueuePositionResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
