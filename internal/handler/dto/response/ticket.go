package response

import (
	"time"

	"ticket-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketResponse struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"event_id"`
	EventName      string     `json:"event_name"`
	PaymentID      string     `json:"payment_id"`
	Status         string     `json:"status"`
	AmountMinor    int64      `json:"amount_minor"`
	Amount         string     `json:"amount"`
	Currency       string     `json:"currency"`
	PurchasedAt    time.Time  `json:"purchased_at"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`
	EventCancelled bool       `json:"event_cancelled"`
}

func FromTicketViews(items []*queries.TicketView) ([]TicketResponse, error) {
	res := make([]TicketResponse, len(items))
	for i, v := range items {
		if err := copier.Copy(&res[i], v); err != nil {
			return nil, err
		}
		res[i].Amount = displayAmount(v.AmountMinor, v.Currency)
	}
	return res, nil
}
