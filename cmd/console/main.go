// Command console runs the portfolio terminal locally, with line editing and
// colors when attached to a TTY. "console inbox" prints the archived contact
// messages instead.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/termfolio/termfolio/internal/config"
	"github.com/termfolio/termfolio/internal/contact"
	"github.com/termfolio/termfolio/internal/database"
	"github.com/termfolio/termfolio/internal/migrations"
	"github.com/termfolio/termfolio/internal/spotify"
	"github.com/termfolio/termfolio/internal/store"
	"github.com/termfolio/termfolio/internal/terminal"
)

// consoleClient scopes the console's saved settings apart from browser
// clients sharing the database.
const consoleClient = "console"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin *os.File, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()
	if _, err := migrations.Run(ctx, db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	st := store.New(db)
	if len(args) > 0 {
		if args[0] != "inbox" {
			return fmt.Errorf("unknown command %q", args[0])
		}
		return printInbox(ctx, stdout, st)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	opts := terminal.Options{
		Settings: st.For(consoleClient),
		Logger:   logger,
	}
	var next contact.Sender
	if cfg.ContactEndpoint != "" {
		next = contact.NewClient(cfg.ContactEndpoint, httpClient)
	}
	opts.Contact = contact.NewArchiving(st, next, logger)
	if cfg.SpotifyEndpoint != "" {
		opts.Tracks = spotify.NewClient(cfg.SpotifyEndpoint, httpClient)
	}

	in, err := terminal.New(ctx, opts)
	if err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}

	c := &console{in: in}
	if !term.IsTerminal(int(stdin.Fd())) {
		c.out = stdout
		c.render = newRenderer(false)
		return c.runPlain(ctx, stdin)
	}
	return c.runInteractive(ctx)
}

type console struct {
	mu     sync.Mutex
	in     *terminal.Interpreter
	out    io.Writer
	render *renderer
}

func (c *console) print(lines []terminal.Line) {
	theme := c.in.Appearance().Theme
	for _, l := range lines {
		if s, ok := c.render.line(l, theme); ok {
			fmt.Fprintln(c.out, s)
		}
	}
}

// runInteractive drives the interpreter from a readline prompt. Effect
// output is printed as soon as it arrives, above the prompt.
func (c *console) runInteractive(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 c.in.Prompt() + " ",
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		DisableAutoSaveHistory: true,
		Listener:               historyListener{c},
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	c.out = rl.Stdout()
	c.render = newRenderer(true)

	c.mu.Lock()
	c.print(c.in.Log())
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.pump(ctx)

	for {
		line, err := rl.Readline()
		c.mu.Lock()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			c.print(c.in.Interrupt().Lines)
		case errors.Is(err, io.EOF):
			c.mu.Unlock()
			return nil
		case err != nil:
			c.mu.Unlock()
			return fmt.Errorf("reading input: %w", err)
		default:
			reply := c.in.Submit(line)
			if reply.Cleared {
				fmt.Fprint(c.out, clearScreen)
			}
			c.print(reply.Lines)
			if reply.Exit {
				c.mu.Unlock()
				return nil
			}
		}
		rl.SetPrompt(c.in.Prompt() + " ")
		c.mu.Unlock()

		if ctx.Err() != nil {
			return nil
		}
	}
}

// historyListener replaces readline's own history with the interpreter's.
type historyListener struct{ c *console }

func (h historyListener) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	entry, ok := h.c.recall(key)
	if !ok {
		return nil, 0, false
	}
	r := []rune(entry)
	return r, len(r), true
}

// recall moves the history cursor for an arrow key. Stepping down past the
// newest entry yields an empty line.
func (c *console) recall(key rune) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.in.History()
	switch key {
	case readline.CharPrev:
		return h.Prev()
	case readline.CharNext:
		if !h.Recalling() {
			return "", false
		}
		entry, _ := h.Next()
		return entry, true
	}
	return "", false
}

func (c *console) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.in.Ready():
			c.mu.Lock()
			c.print(c.in.Drain())
			c.mu.Unlock()
		}
	}
}

// runPlain reads lines from a pipe or file. Effects are awaited after each
// line so output stays in submission order.
func (c *console) runPlain(ctx context.Context, r io.Reader) error {
	c.print(c.in.Log())

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		reply := c.in.Submit(sc.Text())
		c.print(reply.Lines)
		c.in.Wait()
		c.print(c.in.Drain())
		if reply.Exit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
