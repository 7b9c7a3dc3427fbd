package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var ErrLockNotReleased = errors.New("lock held by another owner")

// LocalLock serializes holders within this process.
type LocalLock struct {
	sem *semaphore.Weighted
}

func NewLocalLock() *LocalLock {
	return &LocalLock{
		sem: semaphore.NewWeighted(1),
	}
}

func (l *LocalLock) Acquire(ctx context.Context) (func(), error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire local lock: %w", err)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.sem.Release(1) })
	}, nil
}

// releaseScript deletes the key only if it still holds our token, so an
// expired lock taken over by another instance is left alone.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// RedisLock serializes holders across every instance sharing the redis key.
// The key expires after ttl so a crashed holder cannot block the others.
type RedisLock struct {
	logs       *zap.SugaredLogger
	client     RedisClient
	key        string
	ttl        time.Duration
	retryDelay time.Duration
}

func NewRedisLock(logger *zap.SugaredLogger, client RedisClient, key string, ttl time.Duration) *RedisLock {
	return &RedisLock{
		logs:       logger,
		client:     client,
		key:        key,
		ttl:        ttl,
		retryDelay: 50 * time.Millisecond,
	}
}

func (l *RedisLock) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire redis lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire redis lock: %w", ctx.Err())
		case <-time.After(l.retryDelay):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if err := l.release(token); err != nil {
				l.logs.Errorw("failed to release redis lock", "error", err, "key", l.key)
			}
		})
	}, nil
}

func (l *RedisLock) release(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := l.client.Eval(ctx, releaseScript, []string{l.key}, token).Int64()
	if err != nil {
		return fmt.Errorf("release redis lock: %w", err)
	}
	if deleted == 0 {
		return ErrLockNotReleased
	}
	return nil
}
