package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lojinha/ledgercore/internal/pkg/database"
)

// ErrNotAcquired is returned when the lock is held by another instance
var ErrNotAcquired = errors.New("tenant lock held by another writer")

// TenantLocker serializes ledger writers for a tenant across service
// instances. Single-instance deployments can run without it; the database
// row lock still protects the balance chain within one instance.
type TenantLocker interface {
	Acquire(ctx context.Context, tenantID string) (release func(), err error)
}

// RedisLocker implements TenantLocker with a Redis lease (SET NX + TTL)
type RedisLocker struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisLocker creates a new Redis-backed tenant locker
func NewRedisLocker(redisClient *database.RedisClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func lockKey(tenantID string) string {
	return fmt.Sprintf("ledger:lock:%s", tenantID)
}

// Acquire takes the tenant lease, retrying until the context expires. The
// returned release func only deletes the key if this instance still owns it.
func (l *RedisLocker) Acquire(ctx context.Context, tenantID string) (func(), error) {
	key := lockKey(tenantID)
	token := uuid.New().String()
	client := l.redisClient.GetClient()

	for {
		ok, err := client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire tenant lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrNotAcquired, tenantID)
		case <-time.After(25 * time.Millisecond):
		}
	}

	release := func() {
		// Compare-and-delete so an expired lease taken over by another
		// writer is never removed from under it.
		const script = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
		client.Eval(context.Background(), script, []string{key}, token)
	}

	return release, nil
}
