package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRedisPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	rdb := NewMockRedisClient(ctrl)
	publisher := NewRedisPublisher(rdb)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rdb.EXPECT().Publish(gomock.Any(), Channel, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message any) *redis.IntCmd {
			var got Event
			require.NoError(t, json.Unmarshal(message.([]byte), &got))
			assert.Equal(t, "withdrawal.APPROVED", got.Type)
			assert.Equal(t, int64(7), got.UserID)
			assert.Equal(t, "WD-1-0001", got.EntityID)
			assert.True(t, at.Equal(got.OccurredAt))
			return redis.NewIntResult(1, nil)
		})

	publisher.Publish(context.Background(), Event{
		Type:       WithdrawalPrefix + "APPROVED",
		UserID:     7,
		EntityID:   "WD-1-0001",
		OccurredAt: at,
	})
}

func TestRedisPublisher_PublishErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	rdb := NewMockRedisClient(ctrl)
	publisher := NewRedisPublisher(rdb)

	rdb.EXPECT().Publish(gomock.Any(), Channel, gomock.Any()).
		Return(redis.NewIntResult(0, errors.New("connection refused")))

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), Event{Type: PaymentCompleted})
	})
}

func TestNoopPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopPublisher{}.Publish(context.Background(), Event{Type: PaymentFailed})
	})
}
