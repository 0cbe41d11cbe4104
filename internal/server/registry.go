package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/termfolio/termfolio/internal/terminal"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	errRegistryClosed  = errors.New("session registry closed")
)

// NewInterpreter builds the interpreter for a new session of clientID.
type NewInterpreter func(ctx context.Context, clientID string) (*terminal.Interpreter, error)

// Session wraps one interpreter. The interpreter is single-threaded, so every
// call into it goes through mu.
type Session struct {
	ID       string
	ClientID string

	mu       sync.Mutex
	in       *terminal.Interpreter
	lastSeen time.Time
	stop     context.CancelFunc
	done     chan struct{}
}

// Sessions owns all live terminal sessions and forwards their asynchronous
// output to the broker.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	closed   bool

	newInterpreter NewInterpreter
	broker         *Broker
	logger         *slog.Logger
	now            func() time.Time
}

func NewSessions(newInterpreter NewInterpreter, broker *Broker, logger *slog.Logger) *Sessions {
	return &Sessions{
		sessions:       make(map[string]*Session),
		newInterpreter: newInterpreter,
		broker:         broker,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *Sessions) Create(ctx context.Context, clientID string) (*Session, error) {
	in, err := s.newInterpreter(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("creating interpreter: %w", err)
	}

	pumpCtx, stop := context.WithCancel(context.Background())
	sess := &Session{
		ID:       uuid.NewString(),
		ClientID: clientID,
		in:       in,
		lastSeen: s.now(),
		stop:     stop,
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		stop()
		return nil, errRegistryClosed
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	go s.pump(pumpCtx, sess)
	s.logger.Info("session created", "session", sess.ID, "client", clientID)
	return sess, nil
}

// pump publishes effect output as soon as the interpreter queues it.
func (s *Sessions) pump(ctx context.Context, sess *Session) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.in.Ready():
			sess.mu.Lock()
			lines := sess.in.Drain()
			sess.mu.Unlock()
			if len(lines) > 0 {
				s.broker.Publish(sess.ID, Event{Type: eventOutput, Lines: lines})
			}
		}
	}
}

func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.end(sess)
	return nil
}

// end runs once per session, after it has been removed from the map.
func (s *Sessions) end(sess *Session) {
	sess.stop()
	close(sess.done)
	s.broker.Close(sess.ID)
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep ends sessions that have been idle for longer than ttl and reports how
// many were removed.
func (s *Sessions) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	var idle []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		s.end(sess)
		s.logger.Info("session expired", "session", sess.ID)
	}
	return len(idle)
}

// RunSweeper calls Sweep periodically until ctx is done.
func (s *Sessions) RunSweeper(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		<-ctx.Done()
		return nil
	}
	tick := time.NewTicker(min(ttl, time.Minute))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if n := s.Sweep(ttl); n > 0 {
				s.logger.Debug("swept idle sessions", "count", n)
			}
		}
	}
}

// Check reports whether the registry still accepts sessions.
func (s *Sessions) Check(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errRegistryClosed
	}
	return nil
}

func (s *Sessions) Describe() string {
	return fmt.Sprintf("%d active", s.Len())
}

func (s *Sessions) Close() error {
	s.mu.Lock()
	s.closed = true
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		s.end(sess)
	}
	return nil
}

// Done is closed when the session is deleted, swept or the registry shuts
// down. Streams that subscribed after the broker closed its channels still
// see it.
func (sess *Session) Done() <-chan struct{} { return sess.done }

func (sess *Session) idleSince() time.Time {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.lastSeen
}

// TerminalState is what a renderer needs besides the lines themselves.
type TerminalState struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Mode   string `json:"mode"`
	terminal.Appearance
}

// InputResponse is returned for every submitted line or interrupt.
type InputResponse struct {
	TerminalState
	Lines      []terminal.Line `json:"lines"`
	Cleared    bool            `json:"cleared,omitempty"`
	ClearInput bool            `json:"clearInput,omitempty"`
	// Exit is set after "exit"; the session stays alive until deleted.
	Exit bool `json:"exit,omitempty"`
}

func (sess *Session) Submit(line string, now time.Time) InputResponse {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = now
	return sess.respond(sess.in.Submit(line))
}

func (sess *Session) Interrupt(now time.Time) InputResponse {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = now
	return sess.respond(sess.in.Interrupt())
}

func (sess *Session) respond(r terminal.Reply) InputResponse {
	lines := r.Lines
	if lines == nil {
		lines = []terminal.Line{}
	}
	return InputResponse{
		TerminalState: sess.state(),
		Lines:         lines,
		Cleared:       r.Cleared,
		ClearInput:    r.ClearInput,
		Exit:          r.Exit,
	}
}

func (sess *Session) state() TerminalState {
	return TerminalState{
		ID:         sess.ID,
		Prompt:     sess.in.Prompt(),
		Mode:       terminal.ModeName(sess.in.Mode()),
		Appearance: sess.in.Appearance(),
	}
}

func (sess *Session) State() TerminalState {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state()
}

func (sess *Session) Log() []terminal.Line {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.in.Log()
}

// History returns submitted lines, most recent first.
func (sess *Session) History() []string {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.in.History().Entries()
}
