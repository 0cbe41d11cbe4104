package terminal

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// sessionCommands need state outside the read-only handler context, so they
// are bound to the interpreter that registers them.
func (in *Interpreter) sessionCommands(reg *registry) []Command {
	return []Command{
		{Name: "help", Usage: "help [--all]", Desc: "List commands.", Category: CategoryTerminal, Handler: helpHandler(reg)},
		{Name: "theme", Usage: "theme [name]", Desc: "Show or change the color theme.", Category: CategoryTerminal, Handler: lines(in.cmdTheme)},
		{Name: "wallpaper", Usage: "wallpaper [name]", Desc: "Show or change the desktop wallpaper.", Category: CategoryTerminal, Handler: lines(in.cmdWallpaper)},
		{Name: "sound", Usage: "sound [on|off]", Desc: "Toggle sound effects.", Category: CategoryTerminal, Handler: lines(in.cmdSound)},
		{Name: "clear", Aliases: []string{"cls"}, Usage: "clear", Desc: "Clear the screen.", Category: CategoryTerminal, Handler: lines(in.cmdClear)},
		{Name: "history", Usage: "history", Desc: "Show previously entered commands.", Category: CategoryTerminal, Handler: lines(in.cmdHistory)},
		{Name: "spotify", Aliases: []string{"music"}, Usage: "spotify", Desc: "What I've been listening to.", Category: CategoryInfo, Handler: HandlerFunc(in.cmdSpotify)},
		{Name: "games", Aliases: []string{"game", "play"}, Usage: "games", Desc: "Play a game: guess, trivia or Tetris.", Category: CategoryGames, Handler: HandlerFunc(startGames)},
		{Name: "typingtest", Aliases: []string{"typing", "wpm"}, Usage: "typingtest", Desc: "How fast can you type?", Category: CategoryGames, Handler: HandlerFunc(in.startTyping)},
	}
}

func helpHandler(reg *registry) HandlerFunc {
	return lines(func(args []string, _ Context) []Line {
		all := false
		for _, a := range args {
			if a == "--all" || a == "-a" {
				all = true
				continue
			}
			cmd, ok := reg.resolve(a)
			if !ok {
				return []Line{Errorf("help: no such command: %s", a)}
			}
			return commandHelp(cmd)
		}

		var out []Line
		for _, g := range reg.groups(all) {
			out = append(out, Accent(g.Category.String()))
			for _, cmd := range g.Commands {
				out = append(out, Plain(fmt.Sprintf("  %-20s %s", cmd.Usage, cmd.Desc)))
			}
			out = append(out, Plain(""))
		}
		if !all {
			out = append(out, Muted("Psst: 'help --all' shows a few hidden extras."))
		}
		return append(out, Muted("Use ↑/↓ to browse history and Ctrl+C to cancel."))
	})
}

func commandHelp(cmd Command) []Line {
	out := []Line{
		Accent(cmd.Name),
		Plain("usage: " + cmd.Usage),
		Plain(cmd.Desc),
	}
	if len(cmd.Aliases) > 0 {
		out = append(out, Muted("aliases: "+strings.Join(cmd.Aliases, ", ")))
	}
	return out
}

func (in *Interpreter) cmdTheme(args []string, _ Context) []Line {
	return in.choose(args, "theme", KeyTheme, Themes, &in.theme)
}

func (in *Interpreter) cmdWallpaper(args []string, _ Context) []Line {
	return in.choose(args, "wallpaper", KeyWallpaper, Wallpapers, &in.wallpaper)
}

// choose updates *current to args[0] when it is one of options and persists
// it under key. Anything else leaves *current untouched.
func (in *Interpreter) choose(args []string, label, key string, options []string, current *string) []Line {
	available := Muted("Available: " + strings.Join(options, ", "))
	if len(args) == 0 {
		return []Line{
			Plain(fmt.Sprintf("Current %s: %s", label, *current)),
			available,
			Muted(fmt.Sprintf("Usage: %s <name>", label)),
		}
	}

	name := strings.ToLower(args[0])
	if !slices.Contains(options, name) {
		return []Line{
			Errorf("Unknown %s: %s", label, args[0]),
			Plain(fmt.Sprintf("Current %s: %s", label, *current)),
			available,
		}
	}

	*current = name
	in.persist(key, name)
	return []Line{Success(fmt.Sprintf("%s set to %s.", capitalize(label), name))}
}

func (in *Interpreter) cmdSound(args []string, _ Context) []Line {
	if len(args) == 0 {
		return []Line{Plain("Sound effects are " + onOff(in.sound) + ".")}
	}
	switch strings.ToLower(args[0]) {
	case "on":
		in.sound = true
	case "off":
		in.sound = false
	default:
		return []Line{Error("usage: sound [on|off]")}
	}
	in.persist(KeySound, onOff(in.sound))
	return []Line{Success("Sound effects " + onOff(in.sound) + ".")}
}

func (in *Interpreter) cmdClear(_ []string, _ Context) []Line {
	in.clearPending = true
	return nil
}

func (in *Interpreter) cmdHistory(_ []string, _ Context) []Line {
	entries := in.history.Chronological()
	out := make([]Line, 0, len(entries))
	for i, e := range entries {
		out = append(out, Plain(fmt.Sprintf("%5d  %s", i+1, e)))
	}
	return out
}

func (in *Interpreter) cmdSpotify(_ []string, _ Context) Result {
	if in.tracks == nil {
		return Result{Lines: []Line{Error("Spotify is not connected right now.")}}
	}
	return Result{
		Lines:  []Line{Muted("🎧 Fetching recently played tracks...")},
		Effect: in.fetchTracks(),
	}
}

const maxTracks = 5

func (in *Interpreter) fetchTracks() Effect {
	fetcher := in.tracks
	logger := in.logger
	return func(ctx context.Context) []Line {
		tracks, err := fetcher.RecentTracks(ctx)
		if err != nil {
			logger.Warn("fetching tracks failed", "error", err)
			return []Line{Error("Couldn't reach Spotify right now. Try again later.")}
		}
		if len(tracks) == 0 {
			return []Line{Muted("Nothing played recently. Silence is golden.")}
		}

		out := []Line{Accent("🎵 Recently played")}
		for i, t := range tracks[:min(len(tracks), maxTracks)] {
			out = append(out, Plain(fmt.Sprintf("%d. %s — %s", i+1, t.Name, t.Artist)))
			if t.Album != "" {
				out = append(out, Muted("   "+t.Album))
			}
			if t.URL != "" {
				out = append(out, Link("   Listen on Spotify ↗", t.URL))
			}
		}
		return out
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
