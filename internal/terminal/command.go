package terminal

import (
	"context"
	"time"
)

// Context is the read-only view of the session a command handler sees.
type Context struct {
	Theme     string
	Wallpaper string
	Sound     bool
	Started   time.Time
	Now       time.Time
}

// Effect runs after the submitting call has returned. Its lines are queued
// and reach the log whenever the renderer drains them.
type Effect func(ctx context.Context) []Line

// Result is what a command hands back to the dispatcher.
type Result struct {
	Lines  []Line
	Mode   Mode
	Effect Effect
	// Exit asks the frontend to end the session.
	Exit bool
}

type CommandHandler interface {
	Execute(args []string, ctx Context) Result
}

// HandlerFunc adapts a plain function to CommandHandler.
type HandlerFunc func(args []string, ctx Context) Result

func (f HandlerFunc) Execute(args []string, ctx Context) Result {
	return f(args, ctx)
}

// lines wraps static output in a handler.
func lines(fn func(args []string, ctx Context) []Line) HandlerFunc {
	return func(args []string, ctx Context) Result {
		return Result{Lines: fn(args, ctx)}
	}
}

type Category uint8

const (
	CategoryInfo Category = iota
	CategoryTerminal
	CategoryGames
	CategoryUnix
	CategoryHidden
)

func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "About me"
	case CategoryTerminal:
		return "Terminal"
	case CategoryGames:
		return "Games & fun"
	case CategoryUnix:
		return "Unix-ish"
	case CategoryHidden:
		return "Easter eggs"
	}
	return "Other"
}

type Command struct {
	Name     string
	Aliases  []string
	Usage    string
	Desc     string
	Category Category
	// Hidden commands only show up in "help --all".
	Hidden  bool
	Handler CommandHandler
}
