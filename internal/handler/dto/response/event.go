package response

import (
	"time"

	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RefundFailureResponse struct {
	TicketID uuid.UUID `json:"ticket_id"`
	Reason   string    `json:"reason"`
}

type RefundReportResponse struct {
	EventID        uuid.UUID               `json:"event_id"`
	Success        bool                    `json:"success"`
	Refunded       []uuid.UUID             `json:"refunded"`
	Failures       []RefundFailureResponse `json:"failures"`
	EventCancelled bool                    `json:"event_cancelled"`
}

func FromRefundReport(r *commands.RefundReport) (*RefundReportResponse, error) {
	res := RefundReportResponse{
		Refunded: []uuid.UUID{},
		Failures: []RefundFailureResponse{},
	}
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}

type RefundAttemptResponse struct {
	ID               uuid.UUID `json:"id"`
	TicketID         uuid.UUID `json:"ticket_id"`
	PaymentID        string    `json:"payment_id"`
	Status           string    `json:"status"`
	ProviderRefundID *string   `json:"provider_refund_id,omitempty"`
	Error            *string   `json:"error,omitempty"`
	AttemptedAt      time.Time `json:"attempted_at"`
}

func FromRefundAttempts(items []*queries.RefundAttemptView) ([]RefundAttemptResponse, error) {
	res := make([]RefundAttemptResponse, 0, len(items))
	if err := copier.Copy(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}
