package repository

import (
	"context"
	"sync"

	"github.com/allisson/custody/internal/account/domain"
	apperrors "github.com/allisson/custody/internal/errors"
)

type lockStatus int

// The zero status is never issued, so a LockedAccount built outside Lock is stale from the start.
const (
	lockUnissued lockStatus = iota
	lockLive
	lockConsumed
	lockMoved
)

// LockedAccount is proof of exclusive access to one account.
//
// Only AccountRepository.Lock mints one; a zero LockedAccount is rejected as stale. It is consumed
// exactly once, by AccountRepository.Save or by Close. Move hands ownership to a fresh handle and
// invalidates the old one. Every method is safe for concurrent use.
type LockedAccount struct {
	mu     sync.Mutex
	id     string
	lease  Lease
	status lockStatus
	sink   LockEventSink
}

func newLockedAccount(id string, lease Lease, sink LockEventSink) *LockedAccount {
	return &LockedAccount{
		id:     id,
		lease:  lease,
		status: lockLive,
		sink:   sink,
	}
}

// ID returns the locked account id. It stays readable after invalidation.
func (l *LockedAccount) ID() string {
	return l.id
}

// With lends the locked account to fn and returns fn's error. The account is retired once the
// handle is saved or closed, so a pointer kept past fn cannot be debited. fn must not call other
// methods of l.
func (l *LockedAccount) With(fn func(account *domain.Account) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.live() {
		return domain.ErrStaleCapability
	}
	return fn(l.lease.Account())
}

// live reports whether the handle still owns its lease. Callers hold mu.
func (l *LockedAccount) live() bool {
	return l.status == lockLive && l.lease != nil
}

// Move transfers the lock to a new handle. The receiver becomes stale and Close on it is a no-op.
func (l *LockedAccount) Move() (*LockedAccount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.live() {
		return nil, domain.ErrStaleCapability
	}

	lease := l.lease
	l.lease = nil
	l.status = lockMoved
	return newLockedAccount(l.id, lease, l.sink), nil
}

// Close releases the lock if it is still live and reports the forgotten release.
// On an already consumed or moved handle it does nothing.
func (l *LockedAccount) Close(ctx context.Context) error {
	lease, err := l.take()
	if err != nil {
		return nil
	}

	lease.Account().Retire()
	relErr := lease.Release(ctx)
	l.sink.Record(ctx, domain.NewLockEvent(domain.LockEventForgottenRelease, l.id, relErr))
	if relErr != nil {
		return apperrors.Wrap(relErr, "failed to release forgotten account lock")
	}
	return nil
}

// take consumes the handle and returns its lease.
func (l *LockedAccount) take() (Lease, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.live() {
		return nil, domain.ErrStaleCapability
	}

	lease := l.lease
	l.lease = nil
	l.status = lockConsumed
	return lease, nil
}
