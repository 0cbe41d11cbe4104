package terminal

import (
	"fmt"
	"strconv"

	"github.com/termfolio/termfolio/internal/tetris"
)

func startGames(_ []string, _ Context) Result {
	return Result{
		Lines: []Line{
			Accent("🎮 Pick a game:"),
			Plain("  1. Guess the Number"),
			Plain("  2. Trivia Quiz"),
			Plain("  3. Tetris"),
			Muted("Enter 1, 2 or 3 (or 'cancel')."),
		},
		Mode: &GamesMode{},
	}
}

func (in *Interpreter) chooseGame(line string) []Line {
	switch line {
	case "1":
		return in.startGuess()
	case "2":
		return in.startTrivia()
	case "3":
		return in.startTetris()
	}
	return []Line{Error("Please choose 1, 2 or 3.")}
}

func (in *Interpreter) startGuess() []Line {
	in.mode = &GuessMode{Target: in.rng.IntN(100) + 1}
	return []Line{
		Accent("🎯 Guess the Number"),
		Plain("I'm thinking of a number between 1 and 100."),
		Muted("Type your guess, or 'cancel' to give up."),
	}
}

func (in *Interpreter) guess(m *GuessMode, line string) []Line {
	n, err := strconv.Atoi(line)
	if err != nil {
		return []Line{Error("Please enter a number.")}
	}
	m.Attempts++

	switch {
	case n < m.Target:
		return []Line{Plain("Higher!")}
	case n > m.Target:
		return []Line{Plain("Lower!")}
	}

	in.exitMode()
	tries := "attempts"
	if m.Attempts == 1 {
		tries = "attempt"
	}
	return []Line{Success(fmt.Sprintf("🎉 Correct! The number was %d. You got it in %d %s.", m.Target, m.Attempts, tries))}
}

func (in *Interpreter) startTetris() []Line {
	g := tetris.NewGame(in.rng)
	in.mode = &TetrisMode{Game: g}

	out := []Line{
		Accent("🧱 Tetris"),
		Muted("a = left, d = right, w = rotate, s = drop, q = quit"),
	}
	out = append(out, asciiRows(g.Render())...)
	return append(out, Plain(tetrisStatus(g)))
}

func (in *Interpreter) playTetris(m *TetrisMode, line string) []Line {
	g := m.Game
	action, ok := tetris.ParseAction(line)
	if !ok {
		return []Line{Error("Unknown move. Use a (left), d (right), w (rotate), s (drop) or q (quit).")}
	}
	if action == tetris.ActionQuit {
		in.exitMode()
		return []Line{Muted(fmt.Sprintf("Thanks for playing! Final %s", tetrisStatus(g)))}
	}

	step := g.Apply(action)
	out := asciiRows(g.Render())
	if step.Cleared > 0 {
		out = append(out, Success(fmt.Sprintf("Cleared %d line(s)! +%d", step.Cleared, tetris.Reward(step.Cleared))))
	}
	if g.Over {
		in.exitMode()
		return append(out,
			Error("GAME OVER"),
			Accent(tetrisStatus(g)),
			Muted("Type 'games' to play again."),
		)
	}
	return append(out, Plain(tetrisStatus(g)))
}

func tetrisStatus(g *tetris.Game) string {
	return fmt.Sprintf("Score: %d  Lines: %d", g.Score, g.Lines)
}
