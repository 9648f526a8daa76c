package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrProviderUnavailable covers timeouts, transport failures and 5xx responses.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	// ErrProviderRejected covers 4xx responses; retrying the same request will not help.
	ErrProviderRejected = errors.New("payment provider rejected the request")
)

type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
	// AccountID routes the order to the seller's sub-account.
	AccountID string
}

type Order struct {
	ID          string
	AmountMinor int64
	Currency    string
	Receipt     string
	Status      string
}

type RefundRequest struct {
	PaymentID   string
	AmountMinor int64
	Notes       map[string]string
	// IdempotencyKey makes a retried refund return the original one.
	IdempotencyKey string
}

type Refund struct {
	ID        string
	PaymentID string
	Status    string
}

type ContactRequest struct {
	Name        string
	Email       string
	Phone       string
	Type        string
	ReferenceID string
}

type Contact struct {
	ID string
}

// AccountStatus is the provider's view of a seller sub-account.
type AccountStatus struct {
	Active         bool
	KYCStatus      string
	ChargesEnabled bool
	PayoutsEnabled bool
	CurrentlyDue   []string
	EventuallyDue  []string
}

// PaymentProvider is the outbound REST surface of the payment provider.
type PaymentProvider interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	Refund(ctx context.Context, req RefundRequest) (*Refund, error)
	CreateContact(ctx context.Context, req ContactRequest) (*Contact, error)
	AccountStatus(ctx context.Context, accountID string) (*AccountStatus, error)
	PublicKey() string
}

// OrderCache remembers the provider order created for a live offer.
type OrderCache interface {
	// Get returns nil without error on a miss.
	Get(ctx context.Context, waitingListID uuid.UUID) (*Order, error)
	Put(ctx context.Context, waitingListID uuid.UUID, order *Order, ttl time.Duration) error
	Delete(ctx context.Context, waitingListID uuid.UUID) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type Metrics interface {
	OffersGranted(n int)
	OffersExpired(n int)
	SettlementOutcome(outcome string)
	WebhookResponse(status int)
	RefundResult(result string)
	OutboxPublished(topic string, ok bool)
}
