// Package terminal implements the portfolio's line-oriented command
// interpreter: an alias-keyed command table, a single interactive mode that
// takes over input while a multi-step flow runs, the output log, command
// history and a queue for output produced by asynchronous side effects.
//
// An Interpreter is not safe for concurrent use. Callers submit one line at a
// time and drain the effect queue from the same goroutine, or guard all calls
// with a mutex.
package terminal

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/termfolio/termfolio/internal/portfolio"
)

// ContactSink delivers a completed contact form.
type ContactSink interface {
	Submit(ctx context.Context, msg portfolio.ContactMessage) error
}

// TrackFetcher returns recently played tracks.
type TrackFetcher interface {
	RecentTracks(ctx context.Context) ([]portfolio.Track, error)
}

const (
	shellPrompt          = "guest@portfolio:~$"
	defaultEffectTimeout = 15 * time.Second
	settingsTimeout      = 3 * time.Second
)

type Options struct {
	Settings Settings
	Contact  ContactSink
	Tracks   TrackFetcher
	Logger   *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// Rand defaults to a randomly seeded generator.
	Rand *rand.Rand
	// EffectTimeout bounds each asynchronous effect.
	EffectTimeout time.Duration
}

type Interpreter struct {
	reg      *registry
	mode     Mode
	log      []Line
	history  *History
	queue    *Queue
	settings Settings
	contact  ContactSink
	tracks   TrackFetcher
	logger   *slog.Logger
	now      func() time.Time
	rng      *rand.Rand
	started  time.Time

	theme     string
	wallpaper string
	sound     bool

	effects       sync.WaitGroup
	effectTimeout time.Duration
	clearPending  bool
	exitPending   bool
}

// Reply is the outcome of one submission.
type Reply struct {
	Lines []Line
	// Cleared means the whole log was replaced by an empty one.
	Cleared bool
	// ClearInput asks the renderer to drop any partially typed input.
	ClearInput bool
	// Exit reports that the user asked to leave. Frontends that can close
	// do so after rendering Lines.
	Exit bool
}

// New builds an interpreter, loads persisted settings and writes the welcome
// banner to the log.
func New(ctx context.Context, opts Options) (*Interpreter, error) {
	in := &Interpreter{
		history:       NewHistory(),
		queue:         NewQueue(),
		settings:      opts.Settings,
		contact:       opts.Contact,
		tracks:        opts.Tracks,
		logger:        opts.Logger,
		now:           opts.Now,
		rng:           opts.Rand,
		effectTimeout: opts.EffectTimeout,
		theme:         DefaultTheme,
		wallpaper:     DefaultWallpaper,
	}
	if in.settings == nil {
		in.settings = NewMemorySettings()
	}
	if in.logger == nil {
		in.logger = slog.Default()
	}
	if in.now == nil {
		in.now = time.Now
	}
	if in.rng == nil {
		in.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if in.effectTimeout <= 0 {
		in.effectTimeout = defaultEffectTimeout
	}
	in.started = in.now()

	reg := newRegistry()
	for _, cmds := range [][]Command{
		infoCommands(),
		terminalCommands(),
		unixCommands(),
		funCommands(),
		in.sessionCommands(reg),
	} {
		if err := reg.registerAll(cmds); err != nil {
			return nil, err
		}
	}
	in.reg = reg

	in.loadSettings(ctx)

	in.log = append(in.log, welcome()...)
	return in, nil
}

// loadSettings falls back to defaults for anything missing, invalid or
// unreadable.
func (in *Interpreter) loadSettings(ctx context.Context) {
	get := func(key string) (string, bool) {
		v, ok, err := in.settings.Get(ctx, key)
		if err != nil {
			in.logger.Warn("loading setting failed", "key", key, "error", err)
			return "", false
		}
		return v, ok
	}
	if v, ok := get(KeyTheme); ok && slices.Contains(Themes, v) {
		in.theme = v
	}
	if v, ok := get(KeyWallpaper); ok && slices.Contains(Wallpapers, v) {
		in.wallpaper = v
	}
	if v, ok := get(KeySound); ok {
		in.sound = v == "on"
	}
}

func (in *Interpreter) persist(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), settingsTimeout)
	defer cancel()
	if err := in.settings.Set(ctx, key, value); err != nil {
		in.logger.Warn("saving setting failed", "key", key, "error", err)
	}
}

// Submit processes one line of input to completion.
func (in *Interpreter) Submit(raw string) Reply {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Reply{}
	}
	in.history.Add(line)

	out := []Line{input(in.Prompt(), line)}
	if in.mode != nil {
		out = append(out, in.handleMode(line)...)
	} else {
		out = append(out, in.dispatch(line)...)
	}

	if in.clearPending {
		in.clearPending = false
		in.log = nil
		return Reply{Cleared: true}
	}

	exit := in.exitPending
	in.exitPending = false

	in.log = append(in.log, out...)
	return Reply{Lines: out, Exit: exit}
}

// Interrupt behaves like Ctrl-C: any active mode is cancelled and the
// renderer is told to discard the partially typed line.
func (in *Interpreter) Interrupt() Reply {
	out := []Line{input(in.Prompt(), "^C")}
	if in.mode != nil {
		out = append(out, in.cancelMode()...)
	}
	in.log = append(in.log, out...)
	return Reply{Lines: out, ClearInput: true}
}

func (in *Interpreter) dispatch(line string) []Line {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	cmd, ok := in.reg.resolve(name)
	if !ok {
		in.logger.Debug("unknown command", "command", name)
		return []Line{
			Errorf("Command not found: %s", name),
			Muted("Type 'help' to see available commands."),
		}
	}

	res := cmd.Handler.Execute(args, in.context())
	if res.Mode != nil {
		in.mode = res.Mode
		in.logger.Debug("mode entered", "mode", ModeName(res.Mode))
	}
	if res.Effect != nil {
		in.run(res.Effect)
	}
	in.exitPending = res.Exit
	return res.Lines
}

func (in *Interpreter) context() Context {
	return Context{
		Theme:     in.theme,
		Wallpaper: in.wallpaper,
		Sound:     in.sound,
		Started:   in.started,
		Now:       in.now(),
	}
}

// run starts e in the background. There is no way to cancel it once started;
// only the effect timeout bounds it.
func (in *Interpreter) run(e Effect) {
	in.effects.Add(1)
	go func() {
		defer in.effects.Done()
		ctx, cancel := context.WithTimeout(context.Background(), in.effectTimeout)
		defer cancel()
		in.queue.Push(e(ctx)...)
	}()
}

// Wait blocks until every started effect has queued its output.
func (in *Interpreter) Wait() {
	in.effects.Wait()
}

// Ready fires when effect output is waiting to be drained.
func (in *Interpreter) Ready() <-chan struct{} {
	return in.queue.Ready()
}

// Drain moves queued effect output into the log and returns it.
func (in *Interpreter) Drain() []Line {
	lines := in.queue.Drain()
	in.log = append(in.log, lines...)
	return lines
}

// Log returns a copy of the output log.
func (in *Interpreter) Log() []Line {
	out := make([]Line, len(in.log))
	copy(out, in.log)
	return out
}

func (in *Interpreter) History() *History { return in.history }

func (in *Interpreter) Mode() Mode { return in.mode }

func (in *Interpreter) Prompt() string {
	if in.mode != nil {
		return in.mode.Prompt()
	}
	return shellPrompt
}

// Appearance is the persisted look of the terminal.
type Appearance struct {
	Theme     string `json:"theme"`
	Wallpaper string `json:"wallpaper"`
	Sound     bool   `json:"sound"`
}

func (in *Interpreter) Appearance() Appearance {
	return Appearance{Theme: in.theme, Wallpaper: in.wallpaper, Sound: in.sound}
}
