package terminal

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/termfolio/termfolio/internal/tetris"
)

// Mode is an interactive flow that consumes every submitted line until it
// finishes or is cancelled. The set of modes is closed: only the types in
// this file implement it.
type Mode interface {
	// Title names the flow in cancellation notices.
	Title() string
	// Prompt is shown in front of the input while the mode is active.
	Prompt() string
	isMode()
}

// ContactStep is the field the contact wizard is waiting for.
type ContactStep uint8

const (
	StepName ContactStep = iota
	StepEmail
	StepMessage
)

type ContactMode struct {
	Step  ContactStep
	Name  string
	Email string
}

func (*ContactMode) Title() string { return "Contact form" }
func (m *ContactMode) Prompt() string {
	switch m.Step {
	case StepEmail:
		return "email>"
	case StepMessage:
		return "message>"
	}
	return "name>"
}
func (*ContactMode) isMode() {}

// GamesMode is the one-shot game chooser.
type GamesMode struct{}

func (*GamesMode) Title() string  { return "Game menu" }
func (*GamesMode) Prompt() string { return "select>" }
func (*GamesMode) isMode()        {}

type GuessMode struct {
	Target   int
	Attempts int
}

func (*GuessMode) Title() string  { return "Guess the number" }
func (*GuessMode) Prompt() string { return "guess>" }
func (*GuessMode) isMode()        {}

type TriviaMode struct {
	Current int
	Score   int
	Total   int

	asked *intmap.Map[int, struct{}]
}

func newTriviaMode(total int) *TriviaMode {
	return &TriviaMode{
		Total: total,
		asked: intmap.New[int, struct{}](total),
	}
}

// Asked returns how many questions have been drawn so far, including the
// one currently on screen.
func (m *TriviaMode) Asked() int { return m.asked.Len() }

func (*TriviaMode) Title() string  { return "Trivia" }
func (*TriviaMode) Prompt() string { return "answer>" }
func (*TriviaMode) isMode()        {}

type TetrisMode struct {
	Game *tetris.Game
}

func (*TetrisMode) Title() string  { return "Tetris" }
func (*TetrisMode) Prompt() string { return "tetris>" }
func (*TetrisMode) isMode()        {}

type TypingMode struct {
	Sentence string
	Started  time.Time
}

func (*TypingMode) Title() string  { return "Typing test" }
func (*TypingMode) Prompt() string { return "type>" }
func (*TypingMode) isMode()        {}

// ModeName is a stable identifier for m, "none" when no mode is active.
func ModeName(m Mode) string {
	switch m.(type) {
	case nil:
		return "none"
	case *ContactMode:
		return "contact"
	case *GamesMode:
		return "games"
	case *GuessMode:
		return "guess"
	case *TriviaMode:
		return "trivia"
	case *TetrisMode:
		return "tetris"
	case *TypingMode:
		return "typingtest"
	}
	return "unknown"
}
