package terminal

import "strings"

// handleMode feeds line to the active mode. "cancel" and "quit" always win
// over the mode's own interpretation.
func (in *Interpreter) handleMode(line string) []Line {
	switch strings.ToLower(line) {
	case "cancel", "quit":
		return in.cancelMode()
	}

	switch m := in.mode.(type) {
	case *ContactMode:
		return in.contactStep(m, line)
	case *GamesMode:
		return in.chooseGame(line)
	case *GuessMode:
		return in.guess(m, line)
	case *TriviaMode:
		return in.answerTrivia(m, line)
	case *TetrisMode:
		return in.playTetris(m, line)
	case *TypingMode:
		return in.finishTyping(m, line)
	}

	in.logger.Error("unhandled mode", "mode", ModeName(in.mode))
	in.mode = nil
	return nil
}

func (in *Interpreter) cancelMode() []Line {
	title := in.mode.Title()
	in.logger.Debug("mode cancelled", "mode", ModeName(in.mode))
	in.mode = nil
	return []Line{Muted(title + " cancelled.")}
}

func (in *Interpreter) exitMode() {
	in.logger.Debug("mode finished", "mode", ModeName(in.mode))
	in.mode = nil
}
