package repository

import (
	"context"
	"time"

	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	jobStatusQueued = "queued"
	jobStatusDead   = "dead"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlq.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlq.DBTX, now time.Time, limit int32) ([]sqlq.NotificationJobs, error)
	MarkNotificationPublished(ctx context.Context, db sqlq.DBTX, id uuid.UUID, now time.Time) error
	MarkNotificationFailed(ctx context.Context, db sqlq.DBTX, id uuid.UUID, status, lastError string, nextRunAt time.Time) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlq.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlq.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if err := r.queries.CreateNotificationJob(ctx, r.db, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, now, int32(limit)) // #nosec G115 -- bounded by config
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
			RunAt:    row.RunAt,
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkPublished(ctx context.Context, id uuid.UUID, now time.Time) error {
	if err := r.queries.MarkNotificationPublished(ctx, r.db, id, now); err != nil {
		return infra.WrapRepoErr("failed to mark notification job published", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error {
	status := jobStatusQueued
	if dead {
		status = jobStatusDead
	}
	if err := r.queries.MarkNotificationFailed(ctx, r.db, id, status, lastError, nextRunAt); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
