package repository

import (
	"context"

	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	SetUserContact(ctx context.Context, db sqlq.DBTX, id uuid.UUID, contactID string) (int64, error)
	SetUserAccount(ctx context.Context, db sqlq.DBTX, id uuid.UUID, accountID string) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlq.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlq.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) SaveContact(ctx context.Context, userID uuid.UUID, contactID string) (bool, error) {
	n, err := r.queries.SetUserContact(ctx, r.db, userID, contactID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to save provider contact", err)
	}
	return n == 1, nil
}

func (r *UserRepository) SaveAccount(ctx context.Context, userID uuid.UUID, accountID string) error {
	n, err := r.queries.SetUserAccount(ctx, r.db, userID, accountID)
	if err != nil {
		return infra.WrapRepoErr("failed to save provider account", err)
	}
	if n == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}
