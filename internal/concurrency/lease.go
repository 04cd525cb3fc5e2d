package concurrency

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLeaseHeld is returned when another owner holds the lease
var ErrLeaseHeld = errors.New("lease is held by another owner")

// Lease is a held mutual-exclusion token
type Lease interface {
	Key() string
	Release(ctx context.Context) error
}

// Leaser hands out leases. TryAcquire never blocks waiting for the holder;
// it returns ErrLeaseHeld instead. The TTL bounds how long a crashed holder
// can keep the lease.
type Leaser interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (Lease, error)
}

// LocalLeaser leases named locks from a LockManager. Only protects against
// overlap inside one process.
type LocalLeaser struct {
	locks *LockManager
}

// NewLocalLeaser creates a LocalLeaser backed by the given LockManager
func NewLocalLeaser(locks *LockManager) *LocalLeaser {
	return &LocalLeaser{locks: locks}
}

// TryAcquire takes the named lock if it is free. The TTL is ignored since
// a process-local holder cannot outlive the process.
func (l *LocalLeaser) TryAcquire(ctx context.Context, key string, ttl time.Duration) (Lease, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lock := l.locks.GetLock(leaseLockPrefix + key)
	if !lock.TryLock() {
		return nil, ErrLeaseHeld
	}
	return &localLease{key: key, lock: lock}, nil
}

type localLease struct {
	key  string
	lock *sync.Mutex
	once sync.Once
}

func (l *localLease) Key() string {
	return l.key
}

func (l *localLease) Release(ctx context.Context) error {
	l.once.Do(l.lock.Unlock)
	return nil
}

const leaseLockPrefix = "lease:"
