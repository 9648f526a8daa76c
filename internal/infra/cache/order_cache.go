package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const orderKeyPrefix = "checkout:order:"

// OrderCache keeps the provider order of a live offer so repeated checkouts reuse it.
type OrderCache struct {
	cli redis.Cmdable
}

func NewOrderCache(cli redis.Cmdable) *OrderCache {
	return &OrderCache{cli: cli}
}

func (c *OrderCache) Get(ctx context.Context, waitingListID uuid.UUID) (*shared.Order, error) {
	data, err := c.cli.Get(ctx, orderKey(waitingListID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "read cached order")
	}

	var order shared.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, errs.Wrap(err, "decode cached order")
	}
	return &order, nil
}

// Put is a no-op for a non-positive ttl; the offer has already lapsed.
func (c *OrderCache) Put(ctx context.Context, waitingListID uuid.UUID, order *shared.Order, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(order)
	if err != nil {
		return errs.Wrap(err, "encode order")
	}
	if err := c.cli.Set(ctx, orderKey(waitingListID), data, ttl).Err(); err != nil {
		return errs.Wrap(err, "cache order")
	}
	return nil
}

func (c *OrderCache) Delete(ctx context.Context, waitingListID uuid.UUID) error {
	if err := c.cli.Del(ctx, orderKey(waitingListID)).Err(); err != nil {
		return errs.Wrap(err, "evict cached order")
	}
	return nil
}

func orderKey(waitingListID uuid.UUID) string {
	return orderKeyPrefix + waitingListID.String()
}
