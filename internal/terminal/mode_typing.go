package terminal

import (
	"fmt"
	"math"
	"time"
)

var typingSentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Reliable systems are built one small, boring decision at a time.",
	"Ship early, measure everything, and keep the pager quiet.",
	"A good log line is worth a thousand breakpoints.",
	"Fast code is nice, but correct code pays the bills.",
}

func (in *Interpreter) startTyping(_ []string, _ Context) Result {
	m := &TypingMode{
		Sentence: typingSentences[in.rng.IntN(len(typingSentences))],
		Started:  in.now(),
	}
	return Result{
		Lines: []Line{
			Accent("⌨️  Typing test"),
			Plain("Type the sentence below and press Enter. The clock is running!"),
			Highlight(m.Sentence),
		},
		Mode: m,
	}
}

func (in *Interpreter) finishTyping(m *TypingMode, line string) []Line {
	in.exitMode()
	r := scoreTyping(m.Sentence, line, in.now().Sub(m.Started))
	return []Line{
		Accent("Results"),
		Plain(fmt.Sprintf("  Time:     %.1fs", r.Elapsed.Seconds())),
		Plain(fmt.Sprintf("  Speed:    %d WPM", r.WPM)),
		Plain(fmt.Sprintf("  Accuracy: %d%%", r.Accuracy)),
		Success(r.Rating),
	}
}

type typingResult struct {
	Elapsed  time.Duration
	WPM      int
	Accuracy int
	Rating   string
}

// scoreTyping compares typed against target position by position over their
// common length. Accuracy is the share of matching positions relative to the
// target length; WPM counts five typed characters as one word.
func scoreTyping(target, typed string, elapsed time.Duration) typingResult {
	want, got := []rune(target), []rune(typed)

	correct := 0
	for i := range min(len(want), len(got)) {
		if want[i] == got[i] {
			correct++
		}
	}
	accuracy := 0
	if len(want) > 0 {
		accuracy = int(math.Round(float64(correct) / float64(len(want)) * 100))
	}

	minutes := max(elapsed.Minutes(), time.Millisecond.Minutes())
	wpm := int(math.Round(float64(len(got)) / 5 / minutes))

	return typingResult{
		Elapsed:  elapsed,
		WPM:      wpm,
		Accuracy: accuracy,
		Rating:   typingRating(wpm),
	}
}

func typingRating(wpm int) string {
	switch {
	case wpm >= 80:
		return "🚀 Blazing fast!"
	case wpm >= 60:
		return "⚡ Excellent!"
	case wpm >= 40:
		return "👍 Good job!"
	case wpm >= 20:
		return "🙂 Not bad."
	}
	return "🐢 Keep practicing!"
}
