package tetris

import (
	"math/rand/v2"
	"strings"
)

// Action is one discrete player move.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotate
	ActionDrop
	ActionQuit
)

// ParseAction maps a submitted token to an Action. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "left", "l":
		return ActionLeft, true
	case "d", "right":
		return ActionRight, true
	case "w", "r", "rotate", "up":
		return ActionRotate, true
	case "s", "drop", "down":
		return ActionDrop, true
	case "q", "quit":
		return ActionQuit, true
	}
	return ActionNone, false
}

var lineRewards = [...]int{0, 100, 300, 500, 800}

// Reward returns the score for clearing n rows with a single lock.
func Reward(n int) int {
	if n < 0 || n >= len(lineRewards) {
		return 0
	}
	return lineRewards[n]
}

// Game is one Tetris session. While Over is false, Piece always sits in a
// position accepted by CanPlace.
type Game struct {
	Board Board
	Piece Piece
	Score int
	Lines int
	Over  bool

	rng *rand.Rand
}

// Step describes what happened during one Apply call.
type Step struct {
	Locked  bool
	Cleared int
}

// NewGame starts a session on an empty board. The first spawn is checked
// like any other, so Over is reported if it cannot be placed.
func NewGame(rng *rand.Rand) *Game {
	g := &Game{Board: NewBoard(), rng: rng}
	g.spawn()
	return g
}

// Apply performs a and then advances gravity by one row. When the piece
// cannot fall it locks, full rows clear, the score updates and the next
// piece spawns. ActionQuit and ActionNone leave the game untouched; ending
// the session is up to the caller.
func (g *Game) Apply(a Action) Step {
	if g.Over {
		return Step{}
	}
	switch a {
	case ActionLeft:
		g.shift(-1)
	case ActionRight:
		g.shift(1)
	case ActionRotate:
		g.rotate()
	case ActionDrop:
		for CanPlace(g.Board, g.Piece, 0, 1) {
			g.Piece.Y++
		}
	default:
		return Step{}
	}
	return g.gravity()
}

func (g *Game) shift(dx int) {
	if CanPlace(g.Board, g.Piece, dx, 0) {
		g.Piece.X += dx
	}
}

// rotate turns the piece clockwise in place, or leaves it alone when the
// rotated shape collides. There are no wall kicks.
func (g *Game) rotate() {
	next := g.Piece
	next.Shape = Rotate(g.Piece.Shape)
	if CanPlace(g.Board, next, 0, 0) {
		g.Piece = next
	}
}

func (g *Game) gravity() Step {
	if CanPlace(g.Board, g.Piece, 0, 1) {
		g.Piece.Y++
		return Step{}
	}

	board, cleared := ClearFullRows(Lock(g.Board, g.Piece))
	g.Board = board
	g.Score += Reward(cleared)
	g.Lines += cleared
	g.spawn()
	return Step{Locked: true, Cleared: cleared}
}

func (g *Game) spawn() {
	g.Piece = Spawn(RandomKind(g.rng))
	if !CanPlace(g.Board, g.Piece, 0, 0) {
		g.Over = true
	}
}

// Render draws the current board with the falling piece.
func (g *Game) Render() []string {
	if g.Over {
		return Render(g.Board, nil)
	}
	return Render(g.Board, &g.Piece)
}
