package response

import (
	"ticket-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type WebhookAckResponse struct {
	Status   string     `json:"status"`
	TicketID *uuid.UUID `json:"ticket_id,omitempty"`
}

func FromSettlementResult(r *commands.SettlementResult) *WebhookAckResponse {
	res := &WebhookAckResponse{Status: string(r.Outcome)}
	if r.TicketID != uuid.Nil {
		id := r.TicketID
		res.TicketID = &id
	}
	return res
}
