package terminal

import (
	"fmt"
	"strings"
)

// Kind tags an output line so renderers can style it.
type Kind uint8

const (
	KindPlain Kind = iota
	KindInput
	KindError
	KindSuccess
	KindAccent
	KindASCII
	KindLink
	KindMuted
	KindHighlight
)

var kindNames = [...]string{
	KindPlain:     "plain",
	KindInput:     "input",
	KindError:     "error",
	KindSuccess:   "success",
	KindAccent:    "accent",
	KindASCII:     "ascii",
	KindLink:      "link",
	KindMuted:     "muted",
	KindHighlight: "highlight",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown line kind %q", b)
}

// Line is one immutable row of terminal output.
type Line struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

func Plain(text string) Line     { return Line{Kind: KindPlain, Text: text} }
func Success(text string) Line   { return Line{Kind: KindSuccess, Text: text} }
func Accent(text string) Line    { return Line{Kind: KindAccent, Text: text} }
func Muted(text string) Line     { return Line{Kind: KindMuted, Text: text} }
func Highlight(text string) Line { return Line{Kind: KindHighlight, Text: text} }
func Error(text string) Line     { return Line{Kind: KindError, Text: text} }

func Errorf(format string, args ...any) Line {
	return Error(fmt.Sprintf(format, args...))
}

func Link(text, href string) Line {
	return Line{Kind: KindLink, Text: text, Href: href}
}

func input(prompt, text string) Line {
	return Line{Kind: KindInput, Text: prompt + " " + text}
}

// ASCII splits art on newlines into one line per row.
func ASCII(art string) []Line {
	rows := strings.Split(strings.Trim(art, "\n"), "\n")
	out := make([]Line, len(rows))
	for i, r := range rows {
		out[i] = Line{Kind: KindASCII, Text: r}
	}
	return out
}

func asciiRows(rows []string) []Line {
	out := make([]Line, len(rows))
	for i, r := range rows {
		out[i] = Line{Kind: KindASCII, Text: r}
	}
	return out
}
