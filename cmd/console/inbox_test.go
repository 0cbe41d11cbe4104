package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/termfolio/termfolio/internal/database"
	"github.com/termfolio/termfolio/internal/migrations"
	"github.com/termfolio/termfolio/internal/portfolio"
	"github.com/termfolio/termfolio/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return store.New(db)
}

func TestPrintInbox(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	var empty bytes.Buffer
	if err := printInbox(ctx, &empty, st); err != nil {
		t.Fatalf("printInbox: %v", err)
	}
	if got := empty.String(); got != "No messages yet.\n" {
		t.Errorf("empty inbox = %q", got)
	}

	sent, err := st.Record(ctx, portfolio.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi there"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := st.MarkDelivered(ctx, sent); err != nil {
		t.Fatalf("MarkDelivered: %v", err)
	}
	if _, err := st.Record(ctx, portfolio.ContactMessage{Name: "Bob", Email: "bob@example.com", Message: "Hire me?"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	var out bytes.Buffer
	if err := printInbox(ctx, &out, st); err != nil {
		t.Fatalf("printInbox: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"sent     Ada <ada@example.com>",
		"pending  Bob <bob@example.com>",
		"    Hire me?",
		"2 messages, 1 pending",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("inbox missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Bob") > strings.Index(got, "Ada") {
		t.Errorf("newest message not first:\n%s", got)
	}
}
