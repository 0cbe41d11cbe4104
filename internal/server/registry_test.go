package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/termfolio/termfolio/internal/terminal"
)

func newTestSessions(t *testing.T) (*Sessions, *Broker) {
	t.Helper()
	logger := discardLogger()
	broker := NewBroker()
	sessions := NewSessions(func(ctx context.Context, _ string) (*terminal.Interpreter, error) {
		return terminal.New(ctx, terminal.Options{Logger: logger})
	}, broker, logger)
	t.Cleanup(func() { sessions.Close() })
	return sessions, broker
}

func TestSessionsSweep(t *testing.T) {
	sessions, _ := newTestSessions(t)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return start }

	idle, err := sessions.Create(context.Background(), "a")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	active, err := sessions.Create(context.Background(), "b")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	active.Submit("pwd", start.Add(20*time.Minute))
	sessions.now = func() time.Time { return start.Add(35 * time.Minute) }

	if n := sessions.Sweep(30 * time.Minute); n != 1 {
		t.Fatalf("swept %d, want 1", n)
	}
	if _, err := sessions.Get(idle.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("idle session still present: %v", err)
	}
	if _, err := sessions.Get(active.ID); err != nil {
		t.Errorf("active session swept: %v", err)
	}
	if sessions.Len() != 1 {
		t.Errorf("Len = %d, want 1", sessions.Len())
	}
}

func TestSessionsDeleteClosesSubscribers(t *testing.T) {
	sessions, broker := newTestSessions(t)
	sess, err := sessions.Create(context.Background(), "a")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ch := broker.Subscribe(sess.ID)
	if err := sessions.Delete(sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber not closed")
	}
	broker.Unsubscribe(sess.ID, ch)

	if err := sessions.Delete(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second delete = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionsClose(t *testing.T) {
	sessions, _ := newTestSessions(t)
	if _, err := sessions.Create(context.Background(), "a"); err != nil {
		t.Fatalf("create: %v", err)
	}

	sessions.Close()

	if sessions.Len() != 0 {
		t.Errorf("Len = %d after close", sessions.Len())
	}
	if err := sessions.Check(context.Background()); err == nil {
		t.Error("Check should fail after close")
	}
	if _, err := sessions.Create(context.Background(), "b"); err == nil {
		t.Error("Create should fail after close")
	}
}

func TestBrokerDropsForSlowSubscribers(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("s")
	defer b.Unsubscribe("s", ch)

	for range cap(ch) + 5 {
		b.Publish("s", Event{Type: eventOutput})
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered %d, want %d", len(ch), cap(ch))
	}

	// Other sessions see nothing.
	other := b.Subscribe("t")
	defer b.Unsubscribe("t", other)
	b.Publish("s", Event{Type: eventOutput})
	if len(other) != 0 {
		t.Error("event leaked to another session")
	}
}
