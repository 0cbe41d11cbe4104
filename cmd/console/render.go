package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/termfolio/termfolio/internal/terminal"
)

const clearScreen = "\033[H\033[2J"

type palette struct {
	Text      lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Link      lipgloss.Color
	Highlight lipgloss.Color
	Art       lipgloss.Color
}

// palettes follow the terminal's theme names.
var palettes = map[string]palette{
	"dark": {
		Text: "#d4d4d4", Accent: "#7fb3ff", Muted: "#6f7a70", Success: "#8aa788",
		Error: "#ff4d4d", Link: "#4fc1ff", Highlight: "#FFA132", Art: "#7fb3ff",
	},
	"light": {
		Text: "#1f2328", Accent: "#0550ae", Muted: "#6e7781", Success: "#116329",
		Error: "#cf222e", Link: "#0969da", Highlight: "#953800", Art: "#0550ae",
	},
	"matrix": {
		Text: "#00ff41", Accent: "#39ff14", Muted: "#008f11", Success: "#00ff41",
		Error: "#ff3131", Link: "#7dff7d", Highlight: "#d4ff00", Art: "#00ff41",
	},
	"dracula": {
		Text: "#f8f8f2", Accent: "#bd93f9", Muted: "#6272a4", Success: "#50fa7b",
		Error: "#ff5555", Link: "#8be9fd", Highlight: "#f1fa8c", Art: "#ff79c6",
	},
	"nord": {
		Text: "#d8dee9", Accent: "#88c0d0", Muted: "#4c566a", Success: "#a3be8c",
		Error: "#bf616a", Link: "#81a1c1", Highlight: "#ebcb8b", Art: "#8fbcbb",
	},
	"retro": {
		Text: "#ffb000", Accent: "#ffcc00", Muted: "#a06b00", Success: "#ffd866",
		Error: "#ff5f00", Link: "#ffe08a", Highlight: "#fff2b3", Art: "#ffb000",
	},
}

type renderer struct {
	// interactive hides input echoes, which readline already shows.
	interactive bool
	styles      map[string]map[terminal.Kind]lipgloss.Style
}

func newRenderer(interactive bool) *renderer {
	r := &renderer{
		interactive: interactive,
		styles:      make(map[string]map[terminal.Kind]lipgloss.Style, len(palettes)),
	}
	for name, p := range palettes {
		r.styles[name] = map[terminal.Kind]lipgloss.Style{
			terminal.KindPlain:     lipgloss.NewStyle().Foreground(p.Text),
			terminal.KindInput:     lipgloss.NewStyle().Foreground(p.Muted),
			terminal.KindError:     lipgloss.NewStyle().Foreground(p.Error),
			terminal.KindSuccess:   lipgloss.NewStyle().Foreground(p.Success),
			terminal.KindAccent:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
			terminal.KindASCII:     lipgloss.NewStyle().Foreground(p.Art),
			terminal.KindLink:      lipgloss.NewStyle().Foreground(p.Link),
			terminal.KindMuted:     lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
			terminal.KindHighlight: lipgloss.NewStyle().Foreground(p.Highlight),
		}
	}
	return r
}

// line renders l for theme. ok is false when the line should not be shown.
func (r *renderer) line(l terminal.Line, theme string) (s string, ok bool) {
	if l.Kind == terminal.KindInput && r.interactive {
		return "", false
	}

	styles, found := r.styles[theme]
	if !found {
		styles = r.styles[terminal.DefaultTheme]
	}

	text := l.Text
	if l.Kind == terminal.KindLink && l.Href != "" {
		text += " (" + l.Href + ")"
	}
	return styles[l.Kind].Render(text), true
}
