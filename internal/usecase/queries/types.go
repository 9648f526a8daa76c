package queries

import (
	"time"

	"github.com/google/uuid"
)

// QueuePositionView is the caller's standing in an event's waiting list.
type QueuePositionView struct {
	EntryID uuid.UUID `json:"entry_id"`
	Status  string    `json:"status"`
	// Position is 1-based and only set while the entry is waiting.
	Position       *int       `json:"position,omitempty"`
	WaitingTotal   int        `json:"waiting_total"`
	OfferExpiresAt *time.Time `json:"offer_expires_at,omitempty"`
}

type TicketView struct {
	ID             uuid.UUID  `json:"id"`
	EventID        uuid.UUID  `json:"event_id"`
	EventName      string     `json:"event_name"`
	WaitingListID  uuid.UUID  `json:"waiting_list_id"`
	PaymentID      string     `json:"payment_id"`
	Status         string     `json:"status"`
	AmountMinor    int64      `json:"amount_minor"`
	Currency       string     `json:"currency"`
	PurchasedAt    time.Time  `json:"purchased_at"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`
	EventCancelled bool       `json:"event_cancelled"`
}

type RefundAttemptView struct {
	ID               uuid.UUID `json:"id"`
	TicketID         uuid.UUID `json:"ticket_id"`
	PaymentID        string    `json:"payment_id"`
	Status           string    `json:"status"`
	ProviderRefundID *string   `json:"provider_refund_id,omitempty"`
	Error            *string   `json:"error,omitempty"`
	AttemptedAt      time.Time `json:"attempted_at"`
}

// SellerAccountView carries the provider status only when an account is linked and the provider answered.
type SellerAccountView struct {
	UserID        uuid.UUID                `json:"user_id"`
	ContactID     *string                  `json:"contact_id,omitempty"`
	AccountID     *string                  `json:"account_id,omitempty"`
	Onboarded     bool                     `json:"onboarded"`
	OnboardingURL string                   `json:"onboarding_url"`
	DashboardURL  *string                  `json:"dashboard_url,omitempty"`
	Status        *SellerAccountStatusView `json:"status,omitempty"`
}

type SellerAccountStatusView struct {
	Active              bool     `json:"active"`
	RequiresInformation bool     `json:"requires_information"`
	KYCStatus           string   `json:"kyc_status"`
	ChargesEnabled      bool     `json:"charges_enabled"`
	PayoutsEnabled      bool     `json:"payouts_enabled"`
	CurrentlyDue        []string `json:"currently_due"`
	EventuallyDue       []string `json:"eventually_due"`
}
