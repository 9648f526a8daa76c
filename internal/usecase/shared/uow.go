package shared

import (
	"context"
	"time"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/domain/waitinglist"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	WaitingList() WaitingListRepository
	Tickets() TicketRepository
	Events() EventRepository
	Users() UserRepository
	Notifications() NotificationRepository
	RefundAttempts() RefundAttemptRepository
	Reads() CommandReads
}

// CommandReads return infra.KindNotFound errors when the row is absent.
type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	EntryByID(ctx context.Context, id uuid.UUID) (*waitinglist.Entry, error)
	LiveEntry(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error)
	TicketByWaitingListID(ctx context.Context, waitingListID uuid.UUID) (*ticket.Ticket, error)
	ValidTicketsForEvent(ctx context.Context, eventID uuid.UUID) ([]*ticket.Ticket, error)
	CountValidTickets(ctx context.Context, eventID uuid.UUID) (int, error)
	// CountHeldOffers counts offers of the event whose expiry is after cutoff.
	CountHeldOffers(ctx context.Context, eventID uuid.UUID, cutoff time.Time) (int, error)
	ProfileByID(ctx context.Context, userID uuid.UUID) (*user.Profile, error)
}

type WaitingListRepository interface {
	// Create fails with infra.KindDuplicateKey when the user already has a live entry for the event.
	Create(ctx context.Context, e *waitinglist.Entry) error
	// Transition persists e's current state only if the stored status is still from.
	Transition(ctx context.Context, e *waitinglist.Entry, from waitinglist.Status) (bool, error)
	// ExpireLapsed moves offers whose expiry is at or before cutoff to expired.
	ExpireLapsed(ctx context.Context, cutoff, now time.Time, limit int) ([]ExpiredOffer, error)
	NextWaiting(ctx context.Context, eventID uuid.UUID, limit int) ([]*waitinglist.Entry, error)
	CancelLive(ctx context.Context, eventID uuid.UUID, now time.Time) (int64, error)
}

type TicketRepository interface {
	// Create fails with infra.KindDuplicateKey when the entry or payment already produced a ticket.
	Create(ctx context.Context, t *ticket.Ticket) error
	// MarkRefunded persists the refund only if the ticket is still valid.
	MarkRefunded(ctx context.Context, t *ticket.Ticket) (bool, error)
}

type EventRepository interface {
	// LockByID reads the event and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	// ShareLockByID reads the event and blocks LockByID holders until the transaction ends.
	ShareLockByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	MarkCancelled(ctx context.Context, e *event.Event) (bool, error)
}

type UserRepository interface {
	// SaveContact stores the provider contact id unless one is already present.
	SaveContact(ctx context.Context, userID uuid.UUID, contactID string) (bool, error)
	SaveAccount(ctx context.Context, userID uuid.UUID, accountID string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue locks queued jobs for the rest of the transaction, skipping rows other relays hold.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	MarkPublished(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error
}

type RefundAttemptRepository interface {
	Record(ctx context.Context, attempt RefundAttempt) error
}
