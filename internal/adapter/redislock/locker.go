package redislock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes KEYS[1] only while it still holds ARGV[1], so an
// expired lock taken over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker implements port.Locker with SETNX keys. Each Locker has its own
// owner token, so only the instance that took a lock can release it.
type Locker struct {
	client *redis.Client
	owner  string
}

// NewLocker returns a locker with a fresh owner token.
func NewLocker(client *redis.Client) *Locker {
	return &Locker{client: client, owner: uuid.NewString()}
}

func lockKey(key string) string { return "lock:" + key }
func doneKey(key string) string { return "done:" + key }

// Acquire sets the lock key if it is free. It returns false when another
// owner holds it.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKey(key), l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", lockKey(key), err)
	}
	return ok, nil
}

// Release deletes the lock key only while this locker owns it.
func (l *Locker) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, l.client, []string{lockKey(key)}, l.owner).Err(); err != nil {
		return fmt.Errorf("redis release %s: %w", lockKey(key), err)
	}
	return nil
}

// MarkDone stores the completion marker of key for ttl.
func (l *Locker) MarkDone(ctx context.Context, key string, ttl time.Duration) error {
	if err := l.client.Set(ctx, doneKey(key), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", doneKey(key), err)
	}
	return nil
}

// IsDone reports whether the completion marker of key exists.
func (l *Locker) IsDone(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Exists(ctx, doneKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", doneKey(key), err)
	}
	return n > 0, nil
}
