package domain

import "time"

// LockEventKind names a lock protocol condition that must reach the observability boundary.
type LockEventKind string

const (
	// LockEventForgottenRelease is emitted when a live lock is released by scope-exit cleanup
	// instead of an explicit save.
	LockEventForgottenRelease LockEventKind = "forgotten_release"

	// LockEventStaleCapability is emitted when a consumed lock is handed back for persistence.
	LockEventStaleCapability LockEventKind = "stale_capability"

	// LockEventContention is emitted when acquisition fails because the lock is held.
	LockEventContention LockEventKind = "contention"
)

// LockEvent describes one lock protocol condition for one account.
type LockEvent struct {
	Kind       LockEventKind
	AccountID  string
	Err        error
	OccurredAt time.Time
}

// NewLockEvent builds an event stamped with the current UTC time.
func NewLockEvent(kind LockEventKind, accountID string, err error) LockEvent {
	return LockEvent{
		Kind:       kind,
		AccountID:  accountID,
		Err:        err,
		OccurredAt: time.Now().UTC(),
	}
}
