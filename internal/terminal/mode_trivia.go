package terminal

import (
	"fmt"
	"strings"
)

const triviaRounds = 5

type triviaQuestion struct {
	Question string
	Answer   string
}

var triviaBank = []triviaQuestion{
	{"Which language has a gopher as its mascot?", "go"},
	{"What does the 'S' in HTTPS stand for?", "secure"},
	{"Which company created Java?", "sun"},
	{"What is the default port for HTTP?", "80"},
	{"Which data structure works first-in, first-out?", "queue"},
	{"What does SQL's 'S' stand for?", "structured"},
	{"Which Git command uploads local commits to a remote?", "push"},
	{"How many bits are in a byte?", "8"},
	{"Which F1 team races in red and is based in Maranello?", "ferrari"},
	{"What is the binary representation of the decimal number 5?", "101"},
	{"Which HTTP status code means 'Not Found'?", "404"},
	{"What does CSS stand for? (Cascading ___ Sheets)", "style"},
}

func (in *Interpreter) startTrivia() []Line {
	m := newTriviaMode(min(triviaRounds, len(triviaBank)))
	in.mode = m
	in.drawQuestion(m)
	return []Line{
		Accent("🧠 Trivia Quiz"),
		Muted(fmt.Sprintf("%d questions. Type 'cancel' to stop.", m.Total)),
		questionLine(m),
	}
}

// drawQuestion picks uniformly among questions not yet asked.
func (in *Interpreter) drawQuestion(m *TriviaMode) {
	var open []int
	for i := range triviaBank {
		if !m.asked.Has(i) {
			open = append(open, i)
		}
	}
	m.Current = open[in.rng.IntN(len(open))]
	m.asked.Put(m.Current, struct{}{})
}

func questionLine(m *TriviaMode) Line {
	return Highlight(fmt.Sprintf("Q%d/%d: %s", m.Asked(), m.Total, triviaBank[m.Current].Question))
}

func (in *Interpreter) answerTrivia(m *TriviaMode, line string) []Line {
	q := triviaBank[m.Current]

	var out []Line
	if strings.EqualFold(strings.TrimSpace(line), strings.TrimSpace(q.Answer)) {
		m.Score++
		out = append(out, Success("✓ Correct!"))
	} else {
		out = append(out, Errorf("✗ Wrong! The answer was: %s", q.Answer))
	}

	if m.Asked() >= m.Total {
		in.exitMode()
		return append(out, Accent(fmt.Sprintf("Quiz complete! You scored %d/%d.", m.Score, m.Total)))
	}

	in.drawQuestion(m)
	return append(out, questionLine(m))
}
