package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancedesk/billable/internal/core/domain"
)

type memorySink struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (s *memorySink) Record(_ context.Context, e domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func (s *memorySink) byUser(username string) []domain.AuditAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AuditAction
	for _, e := range s.events {
		if e.Username == username {
			out = append(out, e.Action)
		}
	}
	return out
}

func TestAuditDispatcher_DeliversInOrderPerUser(t *testing.T) {
	sink := &memorySink{}
	d := NewAuditDispatcher(4, sink, zerolog.Nop())
	d.Start(context.Background())

	for _, user := range []string{"admin", "freelancer", "client"} {
		require.NoError(t, d.Record(context.Background(), domain.AuditEvent{Action: domain.AuditLoginSucceeded, Username: user}))
		require.NoError(t, d.Record(context.Background(), domain.AuditEvent{Action: domain.AuditTimeEntryCreated, Username: user}))
		require.NoError(t, d.Record(context.Background(), domain.AuditEvent{Action: domain.AuditLogout, Username: user}))
	}
	d.Close()

	want := []domain.AuditAction{domain.AuditLoginSucceeded, domain.AuditTimeEntryCreated, domain.AuditLogout}
	for _, user := range []string{"admin", "freelancer", "client"} {
		assert.Equal(t, want, sink.byUser(user), user)
	}
}

func TestAuditDispatcher_SinkErrorsDoNotStopWorkers(t *testing.T) {
	sink := &memorySink{err: errors.New("mongo down")}
	d := NewAuditDispatcher(1, sink, zerolog.Nop())
	d.Start(context.Background())

	require.NoError(t, d.Record(context.Background(), domain.AuditEvent{Action: domain.AuditLoginFailed, Username: "a"}))
	require.NoError(t, d.Record(context.Background(), domain.AuditEvent{Action: domain.AuditLoginFailed, Username: "a"}))
	d.Close()

	assert.Len(t, sink.byUser("a"), 2)
}

func TestAuditDispatcher_RecordAfterCloseIsDropped(t *testing.T) {
	sink := &memorySink{}
	d := NewAuditDispatcher(1, sink, zerolog.Nop())
	d.Start(context.Background())
	d.Close()
	d.Close()

	require.NoError(t, d.Record(context.Background(), domain.AuditEvent{Action: domain.AuditLogout, Username: "a"}))
	assert.Empty(t, sink.byUser("a"))
}

func TestAuditDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewAuditDispatcher(8, &memorySink{}, zerolog.Nop())
	first := d.shardIndex("freelancer")
	for range 10 {
		assert.Equal(t, first, d.shardIndex("freelancer"))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 8)
}
