package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/termfolio/termfolio/internal/store"
)

// printInbox lists archived contact messages, newest first. Messages that
// never reached the contact endpoint are marked pending.
func printInbox(ctx context.Context, w io.Writer, st *store.Store) error {
	msgs, err := st.Messages(ctx)
	if err != nil {
		return fmt.Errorf("reading inbox: %w", err)
	}
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages yet.")
		return nil
	}

	pending := 0
	for _, m := range msgs {
		status := "sent"
		if m.DeliveredAt == nil {
			status = "pending"
			pending++
		}
		fmt.Fprintf(w, "%s  %-7s  %s <%s>\n", m.CreatedAt.UTC().Format(time.DateTime), status, m.Name, m.Email)
		fmt.Fprintf(w, "    %s\n", m.Message)
	}
	fmt.Fprintf(w, "%d messages, %d pending\n", len(msgs), pending)
	return nil
}
