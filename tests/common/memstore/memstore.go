//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork for command tests. Transactions run one at a
// time and roll back on error, and conditional writes behave like their SQL counterparts.
package memstore

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"ticket-marketplace/internal/domain/event"
	"ticket-marketplace/internal/domain/ticket"
	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	shared.NotificationJob
	Status    string
	LastError string
}

type state struct {
	events   map[uuid.UUID]event.Event
	entries  map[uuid.UUID]waitinglist.Entry
	tickets  map[uuid.UUID]ticket.Ticket
	profiles map[uuid.UUID]user.Profile
	jobs     []Job
	attempts []shared.RefundAttempt
}

func (s *state) clone() *state {
	return &state{
		events:   maps.Clone(s.events),
		entries:  maps.Clone(s.entries),
		tickets:  maps.Clone(s.tickets),
		profiles: maps.Clone(s.profiles),
		jobs:     slices.Clone(s.jobs),
		attempts: slices.Clone(s.attempts),
	}
}

type Store struct {
	mu sync.Mutex
	st *state
	// transaction sequence number -> injected failure
	failTx map[int]error
	txSeq  int
	// runs once, just before the next waiting-list compare-and-set
	beforeTransition func(Interleaved)
}

func New() *Store {
	return &Store{
		st: &state{
			events:   map[uuid.UUID]event.Event{},
			entries:  map[uuid.UUID]waitinglist.Entry{},
			tickets:  map[uuid.UUID]ticket.Ticket{},
			profiles: map[uuid.UUID]user.Profile{},
		},
		failTx: map[int]error{},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txSeq++
	if err, ok := s.failTx[s.txSeq]; ok {
		return err
	}

	snapshot := s.st.clone()
	tx := &memTx{st: s.st, store: s}
	if err := fn(ctx, tx); err != nil {
		s.st = snapshot
		// Interleaved writes belong to another transaction and survive this rollback.
		for _, w := range tx.interleaved {
			w(s.st)
		}
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{s: s}
}

// FailTransaction makes the n-th transaction from now fail with err.
func (s *Store) FailTransaction(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failTx[s.txSeq+n] = err
}

// BeforeNextTransition runs fn once, inside the transaction that performs the next
// waiting-list compare-and-set and just before it, as if another transaction committed
// the writes fn makes in between.
func (s *Store) BeforeNextTransition(fn func(Interleaved)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeTransition = fn
}

// Interleaved writes a competing commit into the live state.
type Interleaved struct {
	tx *memTx
}

func (i Interleaved) PutEntry(e *waitinglist.Entry) {
	i.apply(func(st *state) { st.entries[e.ID()] = *e })
}

func (i Interleaved) PutTicket(t *ticket.Ticket) {
	i.apply(func(st *state) { st.tickets[t.ID()] = *t })
}

func (i Interleaved) apply(w func(*state)) {
	w(i.tx.st)
	i.tx.interleaved = append(i.tx.interleaved, w)
}

// Seeding

func (s *Store) AddEvent(e *event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.events[e.ID()] = *e
}

func (s *Store) AddEntry(e *waitinglist.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.entries[e.ID()] = *e
}

func (s *Store) AddTicket(t *ticket.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.tickets[t.ID()] = *t
}

func (s *Store) AddProfile(p *user.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.profiles[p.ID()] = *p
}

// Inspection

func (s *Store) Event(id uuid.UUID) *event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.st.events[id]
	if !ok {
		return nil
	}
	return &e
}

func (s *Store) Entry(id uuid.UUID) *waitinglist.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.st.entries[id]
	if !ok {
		return nil
	}
	return &e
}

// Entries returns the event's entries in queue order.
func (s *Store) Entries(eventID uuid.UUID) []*waitinglist.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.entriesWhere(func(e *waitinglist.Entry) bool { return e.EventID() == eventID })
}

func (s *Store) Tickets(eventID uuid.UUID) []*ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.ticketsWhere(func(t *ticket.Ticket) bool { return t.EventID() == eventID })
}

func (s *Store) Profile(id uuid.UUID) *user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.profiles[id]
	if !ok {
		return nil
	}
	return &p
}

func (s *Store) Jobs(topic string) []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Job
	for _, j := range s.st.jobs {
		if j.Topic == topic {
			out = append(out, j)
		}
	}
	return out
}

func (s *Store) RefundAttempts() []shared.RefundAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.attempts)
}

func (st *state) entriesWhere(keep func(*waitinglist.Entry) bool) []*waitinglist.Entry {
	var out []*waitinglist.Entry
	for _, e := range st.entries {
		if keep(&e) {
			out = append(out, &e)
		}
	}
	slices.SortFunc(out, func(a, b *waitinglist.Entry) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out
}

func (st *state) ticketsWhere(keep func(*ticket.Ticket) bool) []*ticket.Ticket {
	var out []*ticket.Ticket
	for _, t := range st.tickets {
		if keep(&t) {
			out = append(out, &t)
		}
	}
	slices.SortFunc(out, func(a, b *ticket.Ticket) int { return a.PurchasedAt().Compare(b.PurchasedAt()) })
	return out
}

// memTx implements every repository over the live state; Within restores the snapshot on error.
type memTx struct {
	st          *state
	store       *Store
	interleaved []func(*state)
}

func (tx *memTx) WaitingList() shared.WaitingListRepository      { return tx }
func (tx *memTx) Tickets() shared.TicketRepository               { return ticketRepo{tx} }
func (tx *memTx) Events() shared.EventRepository                 { return tx }
func (tx *memTx) Users() shared.UserRepository                   { return tx }
func (tx *memTx) Notifications() shared.NotificationRepository   { return tx }
func (tx *memTx) RefundAttempts() shared.RefundAttemptRepository { return tx }
func (tx *memTx) Reads() shared.CommandReads                     { return reads{tx.st} }

// Waiting list

func (tx *memTx) Create(ctx context.Context, e *waitinglist.Entry) error {
	for _, cur := range tx.st.entries {
		if cur.EventID() == e.EventID() && cur.UserID() == e.UserID() && cur.Status().IsLive() {
			return infra.WrapRepoErr("create waiting list entry", nil, infra.KindDuplicateKey)
		}
	}
	tx.st.entries[e.ID()] = *e
	return nil
}

func (tx *memTx) Transition(ctx context.Context, e *waitinglist.Entry, from waitinglist.Status) (bool, error) {
	if hook := tx.store.beforeTransition; hook != nil {
		tx.store.beforeTransition = nil
		hook(Interleaved{tx: tx})
	}
	cur, ok := tx.st.entries[e.ID()]
	if !ok || cur.Status() != from {
		return false, nil
	}
	tx.st.entries[e.ID()] = *e
	return true, nil
}

func (tx *memTx) ExpireLapsed(ctx context.Context, cutoff, now time.Time, limit int) ([]shared.ExpiredOffer, error) {
	lapsed := tx.st.entriesWhere(func(e *waitinglist.Entry) bool {
		return e.Status() == waitinglist.StatusOffered && !e.OfferExpiresAt().After(cutoff)
	})
	if len(lapsed) > limit {
		lapsed = lapsed[:limit]
	}
	out := make([]shared.ExpiredOffer, 0, len(lapsed))
	for _, e := range lapsed {
		if err := e.Expire(now); err != nil {
			return nil, err
		}
		tx.st.entries[e.ID()] = *e
		out = append(out, shared.ExpiredOffer{ID: e.ID(), EventID: e.EventID(), UserID: e.UserID()})
	}
	return out, nil
}

func (tx *memTx) NextWaiting(ctx context.Context, eventID uuid.UUID, limit int) ([]*waitinglist.Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	waiting := tx.st.entriesWhere(func(e *waitinglist.Entry) bool {
		return e.EventID() == eventID && e.Status() == waitinglist.StatusWaiting
	})
	if len(waiting) > limit {
		waiting = waiting[:limit]
	}
	return waiting, nil
}

func (tx *memTx) CancelLive(ctx context.Context, eventID uuid.UUID, now time.Time) (int64, error) {
	live := tx.st.entriesWhere(func(e *waitinglist.Entry) bool {
		return e.EventID() == eventID && e.Status().IsLive()
	})
	for _, e := range live {
		if err := e.Cancel(now); err != nil {
			return 0, err
		}
		tx.st.entries[e.ID()] = *e
	}
	return int64(len(live)), nil
}

// Events

func (tx *memTx) LockByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return reads{tx.st}.EventByID(ctx, id)
}

func (tx *memTx) ShareLockByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return reads{tx.st}.EventByID(ctx, id)
}

func (tx *memTx) MarkCancelled(ctx context.Context, e *event.Event) (bool, error) {
	cur, ok := tx.st.events[e.ID()]
	if !ok || cur.IsCancelled() {
		return false, nil
	}
	tx.st.events[e.ID()] = *e
	return true, nil
}

// Users

func (tx *memTx) SaveContact(ctx context.Context, userID uuid.UUID, contactID string) (bool, error) {
	p, ok := tx.st.profiles[userID]
	if !ok {
		return false, infra.NotFound("user not found")
	}
	if err := p.AttachContact(contactID); err != nil {
		return false, nil
	}
	tx.st.profiles[userID] = p
	return true, nil
}

func (tx *memTx) SaveAccount(ctx context.Context, userID uuid.UUID, accountID string) error {
	p, ok := tx.st.profiles[userID]
	if !ok {
		return infra.NotFound("user not found")
	}
	if err := p.LinkAccount(accountID); err != nil {
		return err
	}
	tx.st.profiles[userID] = p
	return nil
}

// Notifications

func (tx *memTx) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	tx.st.jobs = append(tx.st.jobs, Job{
		NotificationJob: shared.NotificationJob{ID: uuid.New(), Kind: kind, Topic: topic, Payload: payload, RunAt: runAt},
		Status:          "queued",
	})
	return nil
}

func (tx *memTx) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	var out []shared.NotificationJob
	for _, j := range tx.st.jobs {
		if len(out) == limit {
			break
		}
		if j.Status == "queued" && !j.RunAt.After(now) {
			out = append(out, j.NotificationJob)
		}
	}
	return out, nil
}

func (tx *memTx) MarkPublished(ctx context.Context, id uuid.UUID, now time.Time) error {
	return tx.updateJob(id, func(j *Job) { j.Status = "published" })
}

func (tx *memTx) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error {
	return tx.updateJob(id, func(j *Job) {
		j.Attempts++
		j.LastError = lastError
		j.RunAt = nextRunAt
		if dead {
			j.Status = "dead"
		}
	})
}

func (tx *memTx) updateJob(id uuid.UUID, mutate func(*Job)) error {
	for i := range tx.st.jobs {
		if tx.st.jobs[i].ID == id {
			mutate(&tx.st.jobs[i])
			return nil
		}
	}
	return infra.NotFound("notification job not found")
}

// Refund attempts

func (tx *memTx) Record(ctx context.Context, attempt shared.RefundAttempt) error {
	tx.st.attempts = append(tx.st.attempts, attempt)
	return nil
}

// ticketRepo is split out because Create and the waiting list's Create share a name.
type ticketRepo struct {
	tx *memTx
}

func (r ticketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	for _, cur := range r.tx.st.tickets {
		if cur.WaitingListID() == t.WaitingListID() || cur.PaymentID() == t.PaymentID() {
			return infra.WrapRepoErr("create ticket", nil, infra.KindDuplicateKey)
		}
	}
	r.tx.st.tickets[t.ID()] = *t
	return nil
}

func (r ticketRepo) MarkRefunded(ctx context.Context, t *ticket.Ticket) (bool, error) {
	cur, ok := r.tx.st.tickets[t.ID()]
	if !ok || cur.Status() != ticket.StatusValid {
		return false, nil
	}
	r.tx.st.tickets[t.ID()] = *t
	return true, nil
}

type reads struct {
	st *state
}

func (r reads) EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	e, ok := r.st.events[id]
	if !ok {
		return nil, infra.NotFound("event not found")
	}
	return &e, nil
}

func (r reads) EntryByID(ctx context.Context, id uuid.UUID) (*waitinglist.Entry, error) {
	e, ok := r.st.entries[id]
	if !ok {
		return nil, infra.NotFound("waiting list entry not found")
	}
	return &e, nil
}

func (r reads) LiveEntry(ctx context.Context, eventID, userID uuid.UUID) (*waitinglist.Entry, error) {
	live := r.st.entriesWhere(func(e *waitinglist.Entry) bool {
		return e.EventID() == eventID && e.UserID() == userID && e.Status().IsLive()
	})
	if len(live) == 0 {
		return nil, infra.NotFound("waiting list entry not found")
	}
	return live[0], nil
}

func (r reads) TicketByWaitingListID(ctx context.Context, waitingListID uuid.UUID) (*ticket.Ticket, error) {
	found := r.st.ticketsWhere(func(t *ticket.Ticket) bool { return t.WaitingListID() == waitingListID })
	if len(found) == 0 {
		return nil, infra.NotFound("ticket not found")
	}
	return found[0], nil
}

func (r reads) ValidTicketsForEvent(ctx context.Context, eventID uuid.UUID) ([]*ticket.Ticket, error) {
	return r.st.ticketsWhere(func(t *ticket.Ticket) bool {
		return t.EventID() == eventID && t.Status() == ticket.StatusValid
	}), nil
}

func (r reads) CountValidTickets(ctx context.Context, eventID uuid.UUID) (int, error) {
	valid, _ := r.ValidTicketsForEvent(ctx, eventID)
	return len(valid), nil
}

func (r reads) CountHeldOffers(ctx context.Context, eventID uuid.UUID, cutoff time.Time) (int, error) {
	held := r.st.entriesWhere(func(e *waitinglist.Entry) bool {
		return e.EventID() == eventID && e.Status() == waitinglist.StatusOffered && e.OfferExpiresAt().After(cutoff)
	})
	return len(held), nil
}

func (r reads) ProfileByID(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	p, ok := r.st.profiles[userID]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return &p, nil
}

// lockedReads serves CommandReads outside a transaction.
type lockedReads struct {
	s *Store
}

func (l *lockedReads) do(fn func(r reads)) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	fn(reads{l.s.st})
}

func (l *lockedReads) EventByID(ctx context.Context, id uuid.UUID) (e *event.Event, err error) {
	l.do(func(r reads) { e, err = r.EventByID(ctx, id) })
	return
}

func (l *lockedReads) EntryByID(ctx context.Context, id uuid.UUID) (e *waitinglist.Entry, err error) {
	l.do(func(r reads) { e, err = r.EntryByID(ctx, id) })
	return
}

func (l *lockedReads) LiveEntry(ctx context.Context, eventID, userID uuid.UUID) (e *waitinglist.Entry, err error) {
	l.do(func(r reads) { e, err = r.LiveEntry(ctx, eventID, userID) })
	return
}

func (l *lockedReads) TicketByWaitingListID(ctx context.Context, waitingListID uuid.UUID) (t *ticket.Ticket, err error) {
	l.do(func(r reads) { t, err = r.TicketByWaitingListID(ctx, waitingListID) })
	return
}

func (l *lockedReads) ValidTicketsForEvent(ctx context.Context, eventID uuid.UUID) (ts []*ticket.Ticket, err error) {
	l.do(func(r reads) { ts, err = r.ValidTicketsForEvent(ctx, eventID) })
	return
}

func (l *lockedReads) CountValidTickets(ctx context.Context, eventID uuid.UUID) (n int, err error) {
	l.do(func(r reads) { n, err = r.CountValidTickets(ctx, eventID) })
	return
}

func (l *lockedReads) CountHeldOffers(ctx context.Context, eventID uuid.UUID, cutoff time.Time) (n int, err error) {
	l.do(func(r reads) { n, err = r.CountHeldOffers(ctx, eventID, cutoff) })
	return
}

func (l *lockedReads) ProfileByID(ctx context.Context, userID uuid.UUID) (p *user.Profile, err error) {
	l.do(func(r reads) { p, err = r.ProfileByID(ctx, userID) })
	return
}
