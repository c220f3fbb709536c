package repository

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/allisson/custody/internal/account/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))
}

// recordingSink keeps every event it receives.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.LockEvent
}

func (s *recordingSink) Record(ctx context.Context, event domain.LockEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) Events() []domain.LockEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LockEvent, len(s.events))
	copy(out, s.events)
	return out
}

func (s *recordingSink) Count(kind domain.LockEventKind) int {
	n := 0
	for _, event := range s.Events() {
		if event.Kind == kind {
			n++
		}
	}
	return n
}
