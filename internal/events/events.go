package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

const Channel = "eduwallet.events"

const (
	WithdrawalPrefix    = "withdrawal."
	PaymentCompleted    = "payment.completed"
	PaymentFailed       = "payment.failed"
	PaymentCancelled    = "payment.cancelled"
	PremiumActivated    = "premium.activated"
	WalletStatusChanged = "wallet.status_changed"
)

type Event struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	EntityID   string    `json:"entity_id"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is called only after the producing transaction has committed.
// Delivery is best effort and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type RedisClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type RedisPublisher struct {
	rdb     RedisClient
	channel string
}

func NewRedisPublisher(rdb RedisClient) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: Channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	raw, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		zap.L().Warn("failed to publish event", zap.String("type", event.Type), zap.Error(err))
	}
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) {
	zap.L().Debug("event", zap.String("type", event.Type), zap.String("entity_id", event.EntityID))
}
