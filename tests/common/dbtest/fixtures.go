//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, strings.Split(email, "@")[0], email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateOnboardedSeller inserts a seller whose payouts are already linked.
func CreateOnboardedSeller(t *testing.T, db DBLike, email, accountID string) uuid.UUID {
	t.Helper()

	sellerID := CreateTestUser(t, db, email, "seller")
	_, err := db.Exec(context.Background(),
		"UPDATE users SET razorpay_contact_id = $2, razorpay_account_id = $3 WHERE id = $1",
		sellerID, "cont_"+sellerID.String()[:8], accountID)
	require.NoError(t, err)

	return sellerID
}

func CreateTestEvent(t *testing.T, db DBLike, sellerID uuid.UUID, name string, priceMinor int64, totalTickets int) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO events (id, seller_id, name, price_minor, currency, total_tickets) VALUES ($1, $2, $3, $4, 'INR', $5)",
		eventID, sellerID, name, priceMinor, totalTickets)
	require.NoError(t, err)

	return eventID
}

// CreatePurchasedTicket inserts a purchased entry and its valid ticket.
func CreatePurchasedTicket(t *testing.T, db DBLike, eventID, userID uuid.UUID, paymentID string, priceMinor int64) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC()
	entryID := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO waiting_list (id, event_id, user_id, status, offered_at, offer_expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, 'purchased', $4, $5, $4, $4)`,
		entryID, eventID, userID, now.Add(-5*time.Minute), now.Add(5*time.Minute))
	require.NoError(t, err)

	ticketID := uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO tickets (id, event_id, user_id, waiting_list_id, payment_id, status, price_minor, currency, purchased_at)
		 VALUES ($1, $2, $3, $4, $5, 'valid', $6, 'INR', $7)`,
		ticketID, eventID, userID, entryID, paymentID, priceMinor, now.Add(-time.Minute))
	require.NoError(t, err)

	return ticketID
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
