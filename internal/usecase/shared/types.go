package shared

import (
	"time"

	"github.com/google/uuid"
)

type ExpiredOffer struct {
	ID      uuid.UUID
	EventID uuid.UUID
	UserID  uuid.UUID
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}

type RefundAttemptStatus string

const (
	RefundAttemptSucceeded RefundAttemptStatus = "succeeded"
	RefundAttemptFailed    RefundAttemptStatus = "failed"
)

type RefundAttempt struct {
	ID               uuid.UUID
	TicketID         uuid.UUID
	EventID          uuid.UUID
	PaymentID        string
	Status           RefundAttemptStatus
	ProviderRefundID *string
	Error            *string
	AttemptedAt      time.Time
}

// Outbox topics
const (
	TopicOfferGranted             = "offer.granted"
	TopicOfferExpired             = "offer.expired"
	TopicTicketPurchased          = "ticket.purchased"
	TopicTicketRefunded           = "ticket.refunded"
	TopicEventCancelled           = "event.cancelled"
	TopicPaymentDuplicateCapture  = "payment.duplicate_capture"
	TopicPaymentAfterCancellation = "payment.capture_after_cancel"
)

// Outbox job kinds
const (
	JobKindUserNotification = "user_notification"
	JobKindOperatorAlert    = "operator_alert"
)
