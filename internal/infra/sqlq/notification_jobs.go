package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, status, run_at)
VALUES ($1, $2, $3, 'queued', $4)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := db.Exec(ctx, createNotificationJob, kind, topic, payload, runAt)
	return err
}

// Concurrent relays skip each other's claimed rows.
const claimDueNotificationJobs = `
SELECT id, kind, topic, payload, attempts, run_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, now time.Time, limit int32) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(&i.ID, &i.Kind, &i.Topic, &i.Payload, &i.Attempts, &i.RunAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const markNotificationPublished = `
UPDATE notification_jobs
SET status = 'published', published_at = $2, attempts = attempts + 1, last_error = NULL
WHERE id = $1`

func (q *Queries) MarkNotificationPublished(ctx context.Context, db DBTX, id uuid.UUID, now time.Time) error {
	_, err := db.Exec(ctx, markNotificationPublished, id, now)
	return err
}

const markNotificationFailed = `
UPDATE notification_jobs
SET status = $2, attempts = attempts + 1, last_error = $3, run_at = $4
WHERE id = $1`

func (q *Queries) MarkNotificationFailed(ctx context.Context, db DBTX, id uuid.UUID, status, lastError string, nextRunAt time.Time) error {
	_, err := db.Exec(ctx, markNotificationFailed, id, status, lastError, nextRunAt)
	return err
}
