//go:build unit

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ticket-marketplace/internal/infra/cache"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCache_Get(t *testing.T) {
	entryID := uuid.New()
	key := "checkout:order:" + entryID.String()
	order := shared.Order{ID: "order_1", AmountMinor: 50000, Currency: "INR", Receipt: "rcpt_1", Status: "created"}
	encoded, err := json.Marshal(order)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		setup         func(mock redismock.ClientMock)
		expectedOrder *shared.Order
		expectedError bool
	}{
		{
			name: "success: cached order returned",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(key).SetVal(string(encoded))
			},
			expectedOrder: &order,
		},
		{
			name: "success: miss returns nil",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(key).RedisNil()
			},
			expectedOrder: nil,
		},
		{
			name: "error: redis unavailable",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(key).SetErr(errors.New("connection refused"))
			},
			expectedError: true,
		},
		{
			name: "error: corrupt payload",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(key).SetVal("{not json")
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tc.setup(mock)

			got, err := cache.NewOrderCache(db).Get(context.Background(), entryID)

			if tc.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedOrder, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderCache_Put(t *testing.T) {
	entryID := uuid.New()
	key := "checkout:order:" + entryID.String()
	order := &shared.Order{ID: "order_1", AmountMinor: 50000, Currency: "INR"}
	encoded, err := json.Marshal(order)
	require.NoError(t, err)

	t.Run("success: stored until the offer expires", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSet(key, encoded, 7*time.Minute).SetVal("OK")

		err := cache.NewOrderCache(db).Put(context.Background(), entryID, order, 7*time.Minute)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: lapsed offer is not cached", func(t *testing.T) {
		db, mock := redismock.NewClientMock()

		err := cache.NewOrderCache(db).Put(context.Background(), entryID, order, 0)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: delete evicts the key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectDel(key).SetVal(1)

		err := cache.NewOrderCache(db).Delete(context.Background(), entryID)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
