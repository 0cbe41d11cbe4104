package terminal

import "strings"

func funCommands() []Command {
	return []Command{
		{Name: "matrix", Usage: "matrix", Desc: "Follow the white rabbit.", Category: CategoryHidden, Hidden: true, Handler: lines(cmdMatrix)},
		{Name: "rocket", Usage: "rocket", Desc: "3, 2, 1...", Category: CategoryHidden, Hidden: true, Handler: lines(cmdRocket)},
		{Name: "coffee", Usage: "coffee", Desc: "Fuel.", Category: CategoryHidden, Hidden: true, Handler: lines(cmdCoffee)},
		{Name: "whoami", Usage: "whoami", Desc: "Existential questions.", Category: CategoryHidden, Hidden: true, Handler: lines(cmdWhoami)},
	}
}

// cmdMatrix is deterministic for a given instant.
func cmdMatrix(_ []string, ctx Context) []Line {
	const glyphs = "01ｱｲｳｴｵｶｷｸｹｺ$#@&"
	g := []rune(glyphs)
	seed := int(ctx.Now.UnixNano() / int64(1e6))

	out := make([]Line, 0, 9)
	for row := range 8 {
		var sb strings.Builder
		for col := range 40 {
			sb.WriteRune(g[(seed+row*7+col*13+row*col)%len(g)])
		}
		out = append(out, Line{Kind: KindASCII, Text: sb.String()})
	}
	return append(out, Success("Wake up, Neo... 🐇"))
}

const rocketArt = `
       /\
      /  \
     |    |
     | () |
     |    |
    /|    |\
   / |    | \
  |__|____|__|
     /_\/_\
    /\/\/\/\
`

func cmdRocket(_ []string, _ Context) []Line {
	out := ASCII(rocketArt)
	return append(out, Accent("🚀 Liftoff! To infinity and beyond."))
}

const coffeeArt = `
    ( (
     ) )
  ........
  |      |]
  \      /
   '----'
`

func cmdCoffee(_ []string, _ Context) []Line {
	out := ASCII(coffeeArt)
	return append(out, Plain("☕ Here's a coffee. Code quality +10%."))
}

func cmdWhoami(_ []string, _ Context) []Line {
	return []Line{
		Plain("guest"),
		Muted("...a curious visitor with excellent taste in portfolios."),
	}
}
