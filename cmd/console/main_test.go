package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/chzyer/readline"

	"github.com/termfolio/termfolio/internal/terminal"
)

func newTestConsole(t *testing.T) *console {
	t.Helper()
	in, err := terminal.New(context.Background(), terminal.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("terminal.New: %v", err)
	}
	return &console{in: in, render: newRenderer(false)}
}

func TestHistoryListenerWalksInterpreterHistory(t *testing.T) {
	c := newTestConsole(t)
	l := historyListener{c}

	if _, _, ok := l.OnChange(nil, 0, readline.CharPrev); ok {
		t.Fatal("recall with empty history changed the line")
	}

	c.in.Submit("about")
	c.in.Submit("skills")

	// Down outside recall leaves the typed text alone.
	if _, _, ok := l.OnChange([]rune("ab"), 2, readline.CharNext); ok {
		t.Error("down before up changed the line")
	}

	steps := []struct {
		key  rune
		want string
	}{
		{readline.CharPrev, "skills"},
		{readline.CharPrev, "about"},
		{readline.CharPrev, "about"},
		{readline.CharNext, "skills"},
		{readline.CharNext, ""},
	}
	for i, s := range steps {
		line, pos, ok := l.OnChange(nil, 0, s.key)
		if !ok {
			t.Fatalf("step %d: line not replaced", i)
		}
		if string(line) != s.want || pos != len(line) {
			t.Errorf("step %d: got %q at %d, want %q at end", i, string(line), pos, s.want)
		}
	}

	if _, _, ok := l.OnChange([]rune("x"), 1, 'x'); ok {
		t.Error("ordinary key changed the line")
	}
}

func TestRunPlainStopsAtExit(t *testing.T) {
	c := newTestConsole(t)
	var out bytes.Buffer
	c.out = &out

	err := c.runPlain(context.Background(), strings.NewReader("pwd\nexit\nwhoami\n"))
	if err != nil {
		t.Fatalf("runPlain: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Goodbye!") {
		t.Errorf("output missing goodbye:\n%s", got)
	}
	if strings.Contains(got, "$ whoami") {
		t.Errorf("input after exit was processed:\n%s", got)
	}
	if h := c.in.History().Entries(); len(h) != 2 || h[0] != "exit" {
		t.Errorf("history = %v, want [exit pwd]", h)
	}
}
