package readstore

import (
	"context"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/infra"
	"ticket-marketplace/internal/infra/repository/converter"
	"ticket-marketplace/internal/infra/sqlq"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (sqlq.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlq.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlq.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*user.Profile, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	profile, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map user", err, infra.KindDBFailure)
	}
	return profile, nil
}
