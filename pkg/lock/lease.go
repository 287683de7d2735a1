package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotHeld = errors.New("lease not held")

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Client interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// Locker hands out expiring single-owner leases. With a nil client every
// acquire succeeds, which is what a single instance deployment wants.
type Locker struct {
	rdb Client
	ttl time.Duration
}

func New(rdb Client, ttl time.Duration) *Locker {
	return &Locker{rdb: rdb, ttl: ttl}
}

type Lease struct {
	locker *Locker
	key    string
	token  string
}

// TryAcquire returns a nil lease and nil error when another owner holds key.
func (l *Locker) TryAcquire(ctx context.Context, key string) (*Lease, error) {
	lease := &Lease{locker: l, key: key, token: uuid.NewString()}
	if l.rdb == nil {
		return lease, nil
	}

	ok, err := l.rdb.SetNX(ctx, key, lease.token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return lease, nil
}

func (le *Lease) Release(ctx context.Context) error {
	if le == nil || le.locker.rdb == nil {
		return nil
	}
	n, err := releaseScript.Run(ctx, le.locker.rdb, []string{le.key}, le.token).Int64()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}
