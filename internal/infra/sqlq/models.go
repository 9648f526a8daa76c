package sqlq

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Events struct {
	ID           uuid.UUID
	SellerID     uuid.UUID
	Name         string
	Description  string
	PriceMinor   int64
	Currency     string
	TotalTickets int32
	CancelledAt  pgtype.Timestamptz
}

type Users struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Phone             pgtype.Text
	Role              string
	RazorpayContactID pgtype.Text
	RazorpayAccountID pgtype.Text
}

type WaitingList struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	UserID         uuid.UUID
	Status         string
	OfferedAt      pgtype.Timestamptz
	OfferExpiresAt pgtype.Timestamptz
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Tickets struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	UserID        uuid.UUID
	WaitingListID uuid.UUID
	PaymentID     string
	Status        string
	PriceMinor    int64
	Currency      string
	PurchasedAt   time.Time
	RefundedAt    pgtype.Timestamptz
}

type RefundAttempts struct {
	ID               uuid.UUID
	TicketID         uuid.UUID
	EventID          uuid.UUID
	PaymentID        string
	Status           string
	ProviderRefundID pgtype.Text
	Error            pgtype.Text
	AttemptedAt      time.Time
}

type NotificationJobs struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}
