package port

import (
	"context"
	"time"
)

// Locker provides the distributed run lock used by the scheduler so that
// one job runs at most once per date key across replicas.
type Locker interface {
	// Acquire tries to take the lock for key. It returns false when the
	// lock is held by someone else.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release drops the lock if it is still owned by the caller.
	Release(ctx context.Context, key string) error
	// MarkDone records that the job for key completed.
	MarkDone(ctx context.Context, key string, ttl time.Duration) error
	// IsDone reports whether MarkDone was called for key.
	IsDone(ctx context.Context, key string) (bool, error)
}
