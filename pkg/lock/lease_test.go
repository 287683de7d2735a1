package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) compareAndDelete(keys []string, args ...any) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values[keys[0]] == args[0].(string) {
		delete(f.values, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.compareAndDelete(keys, args...)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.compareAndDelete(keys, args...)
}

func (f *fakeRedis) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return f.Eval(ctx, script, keys, args...)
}

func (f *fakeRedis) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return f.EvalSha(ctx, sha1, keys, args...)
}

func (f *fakeRedis) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *fakeRedis) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func TestLocker_TryAcquire(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	locker := New(rdb, time.Minute)

	first, err := locker.TryAcquire(ctx, "sweep")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, time.Minute, rdb.ttls["sweep"])

	second, err := locker.TryAcquire(ctx, "sweep")
	require.NoError(t, err)
	assert.Nil(t, second)

	require.NoError(t, first.Release(ctx))

	third, err := locker.TryAcquire(ctx, "sweep")
	require.NoError(t, err)
	assert.NotNil(t, third)
}

func TestLease_ReleaseAfterTakeover(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	locker := New(rdb, time.Minute)

	lease, err := locker.TryAcquire(ctx, "sweep")
	require.NoError(t, err)

	rdb.values["sweep"] = "someone-else"
	assert.ErrorIs(t, lease.Release(ctx), ErrNotHeld)
	assert.Equal(t, "someone-else", rdb.values["sweep"])
}

func TestLocker_RedisError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")

	lease, err := New(rdb, time.Minute).TryAcquire(context.Background(), "sweep")
	assert.Error(t, err)
	assert.Nil(t, lease)
}

func TestLocker_Disabled(t *testing.T) {
	ctx := context.Background()
	locker := New(nil, time.Minute)

	lease, err := locker.TryAcquire(ctx, "sweep")
	require.NoError(t, err)
	require.NotNil(t, lease)
	assert.NoError(t, lease.Release(ctx))
}
