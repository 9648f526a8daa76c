package response

import (
	"time"

	"ticket-marketplace/internal/domain/money"
	"ticket-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

// CheckoutResponse carries the options the client passes to the provider's checkout widget.
type CheckoutResponse struct {
	OrderID           string    `json:"order_id"`
	ProviderPublicKey string    `json:"key"`
	Amount            int64     `json:"amount"`
	DisplayAmount     string    `json:"display_amount"`
	Currency          string    `json:"currency"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	SuccessURL        string    `json:"success_url"`
	CancelURL         string    `json:"cancel_url"`
	WaitingListID     uuid.UUID `json:"waiting_list_id"`
	ExpiresAt         time.Time `json:"expires_at"`
}

func FromCheckoutParams(p *commands.CheckoutParams) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:           p.OrderID,
		ProviderPublicKey: p.PublicKey,
		Amount:            p.AmountMinor,
		DisplayAmount:     displayAmount(p.AmountMinor, p.Currency),
		Currency:          p.Currency,
		Name:              p.DisplayName,
		Description:       p.Description,
		SuccessURL:        p.SuccessURL,
		CancelURL:         p.CancelURL,
		WaitingListID:     p.WaitingListID,
		ExpiresAt:         p.ExpiresAt,
	}
}

func displayAmount(minor int64, currency string) string {
	m, err := money.New(minor, currency)
	if err != nil {
		return ""
	}
	return m.Display().StringFixed(2)
}
