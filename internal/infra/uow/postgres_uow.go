package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra/readstore"
	"ticket-marketplace/internal/infra/repository"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlq.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlq.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// ReadCommitted is enough because every contended row is either locked or updated with a status guard.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlq.DBTX
	q    *sqlq.Queries

	// Lazy-initialized repositories
	waitingListRepo   shared.WaitingListRepository
	ticketRepo        shared.TicketRepository
	eventRepo         shared.EventRepository
	userRepo          shared.UserRepository
	notificationRepo  shared.NotificationRepository
	refundAttemptRepo shared.RefundAttemptRepository
	commandReads      shared.CommandReads
}

func (t *pgTx) WaitingList() shared.WaitingListRepository {
	if t.waitingListRepo == nil {
		t.waitingListRepo = repository.NewWaitingListRepository(t.q, t.dbtx)
	}
	return t.waitingListRepo
}

func (t *pgTx) Tickets() shared.TicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewTicketRepository(t.q, t.dbtx)
	}
	return t.ticketRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) RefundAttempts() shared.RefundAttemptRepository {
	if t.refundAttemptRepo == nil {
		t.refundAttemptRepo = repository.NewRefundAttemptRepository(t.q, t.dbtx)
	}
	return t.refundAttemptRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	events      *readstore.EventReadStore
	waitingList *readstore.WaitingListReadStore
	tickets     *readstore.TicketReadStore
	users       *readstore.UserReadStore
}

func newCommandReads(q *sqlq.Queries, db sqlq.DBTX) *commandReads {
	return &commandReads{
		events:      readstore.NewEventReadStore(q, db),
		waitingList: readstore.NewWaitingListReadStore(q, db),
		tickets:     readstore.NewTicketReadStore(q, db),
		users:       readstore.NewUserReadStore(q, db),
	}
}

func (r *commandReads) EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return r.events.FindByID(ctx, id)
}

func (r *commandReads) EntryByID(ctx context.Context, id uuid.UUID) (*waitinglist.Entry, error) {
	return r.waitingList.FindByID(ctx, id)
}

func (r *commandReads) LiveEntry(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error) {
	return r.waitingList.FindLive(ctx, eventID, userID)
}

func (r *commandReads) TicketByWaitingListID(ctx context.Context, waitingListID uuid.UUID) (*ticket.Ticket, error) {
	return r.tickets.FindByWaitingListID(ctx, waitingListID)
}

func (r *commandReads) ValidTicketsForEvent(ctx context.Context, eventID uuid.UUID) ([]*ticket.Ticket, error) {
	return r.tickets.ListValidByEvent(ctx, eventID)
}

func (r *commandReads) CountValidTickets(ctx context.Context, eventID uuid.UUID) (int, error) {
	return r.tickets.CountValid(ctx, eventID)
}

func (r *commandReads) CountHeldOffers(ctx context.Context, eventID uuid.UUID, cutoff time.Time) (int, error) {
	return r.waitingList.CountHeldOffers(ctx, eventID, cutoff)
}

func (r *commandReads) ProfileByID(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	return r.users.FindProfileByID(ctx, userID)
}
